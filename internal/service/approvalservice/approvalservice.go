package approvalservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskvio/timetrack/internal/domain"
)

type TrackingRepo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.OrderTimeTracking, error)
}

type EntryRepo interface {
	FindByIDs(ctx context.Context, entryIDs []string) ([]domain.TimeEntry, error)
	FindByOrderID(ctx context.Context, orderID string) ([]domain.TimeEntry, error)
}

type ApprovalRepo interface {
	FindByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error)
	FindPendingByOrderID(ctx context.Context, orderID string) ([]domain.ApprovalRequest, error)
	CreateRequest(ctx context.Context, req *domain.ApprovalRequest, version int64) error
	CommitDecision(ctx context.Context, req *domain.ApprovalRequest, approvedIDs, rejectedIDs []string, trackingStatus string, version int64) error
	CommitBulkApproval(ctx context.Context, orderID string, requestIDs, entryIDs []string, feedback string, version int64) error
}

type Service struct {
	trackingRepo TrackingRepo
	entryRepo    EntryRepo
	approvalRepo ApprovalRepo
}

func New(trackingRepo TrackingRepo, entryRepo EntryRepo, approvalRepo ApprovalRepo) *Service {
	return &Service{
		trackingRepo: trackingRepo,
		entryRepo:    entryRepo,
		approvalRepo: approvalRepo,
	}
}

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotAllowed      = errors.New("not authorized for this order")
	ErrNoValidEntries  = errors.New("no valid entries to submit")
	ErrNothingToSubmit = errors.New("no eligible entries to submit")
	// ErrAlreadyResolved guards against re-processing a decided request.
	ErrAlreadyResolved = errors.New("approval request already resolved")
)

// SubmitForApproval batches logged entries into a pending customer approval
// request. Every referenced entry must currently be logged and belong to
// the order; the submission is all-or-nothing.
func (s *Service) SubmitForApproval(ctx context.Context, orderID, providerID string, entryIDs []string, providerMessage string) (string, error) {
	if len(entryIDs) == 0 {
		return "", fmt.Errorf("%w: empty entry id set", ErrInvalidInput)
	}

	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if tracking == nil {
		return "", domain.ErrNotFound
	}
	if tracking.ProviderID != providerID {
		return "", ErrNotAllowed
	}

	entries, err := s.entryRepo.FindByIDs(ctx, entryIDs)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrNoValidEntries
	}
	for _, entry := range entries {
		if entry.OrderID != orderID {
			return "", fmt.Errorf("%w: entry %s does not belong to order %s", ErrInvalidInput, entry.ID, orderID)
		}
		if entry.Status != domain.EntryStatusLogged {
			return "", fmt.Errorf("%w: entry %s is not in logged state", ErrInvalidInput, entry.ID)
		}
	}
	if len(entries) != len(entryIDs) {
		return "", ErrNoValidEntries
	}

	req := buildRequest(tracking, entries, providerMessage, false)
	if err := s.approvalRepo.CreateRequest(ctx, req, tracking.Version); err != nil {
		zap.L().Error("can't create approval request", zap.Error(err))
		return "", err
	}

	zap.L().Info("submitted entries for customer approval",
		zap.String("orderID", orderID), zap.String("requestID", req.ID), zap.Int("entries", len(entries)))
	return req.ID, nil
}

// CustomerInitiateApproval lets the customer pull the provider's
// still-logged additional entries into a request on the provider's behalf.
// The resulting request is flagged customer-initiated for audit.
func (s *Service) CustomerInitiateApproval(ctx context.Context, orderID, customerID, message string) (string, error) {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if tracking == nil {
		return "", domain.ErrNotFound
	}
	if tracking.CustomerID != customerID {
		return "", ErrNotAllowed
	}

	all, err := s.entryRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return "", err
	}
	var eligible []domain.TimeEntry
	for _, entry := range all {
		if entry.Status == domain.EntryStatusLogged && entry.Category == domain.CategoryAdditional {
			eligible = append(eligible, entry)
		}
	}
	if len(eligible) == 0 {
		return "", ErrNothingToSubmit
	}

	req := buildRequest(tracking, eligible, message, true)
	if err := s.approvalRepo.CreateRequest(ctx, req, tracking.Version); err != nil {
		zap.L().Error("can't create customer-initiated request", zap.Error(err))
		return "", err
	}

	zap.L().Info("customer initiated approval request",
		zap.String("orderID", orderID), zap.String("requestID", req.ID), zap.Int("entries", len(eligible)))
	return req.ID, nil
}

// ProcessCustomerApproval applies the customer's decision to a pending
// request. For partial approval the approved ids must be a non-empty subset
// of the request; the remainder is rejected.
func (s *Service) ProcessCustomerApproval(ctx context.Context, orderID, requestID, customerID, decision string, approvedEntryIDs []string, feedback string) error {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if tracking == nil {
		return domain.ErrNotFound
	}
	if tracking.CustomerID != customerID {
		return ErrNotAllowed
	}

	req, err := s.approvalRepo.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil || req.OrderID != orderID {
		return domain.ErrNotFound
	}
	if req.Status != domain.ApprovalStatusPending {
		return ErrAlreadyResolved
	}

	var approvedIDs, rejectedIDs []string
	switch decision {
	case domain.ApprovalStatusApproved:
		approvedIDs = req.EntryIDs
	case domain.ApprovalStatusRejected:
		rejectedIDs = req.EntryIDs
	case domain.ApprovalStatusPartiallyApproved:
		if len(approvedEntryIDs) == 0 {
			return fmt.Errorf("%w: partial approval requires a non-empty subset", ErrInvalidInput)
		}
		inRequest := make(map[string]bool, len(req.EntryIDs))
		for _, id := range req.EntryIDs {
			inRequest[id] = true
		}
		approved := make(map[string]bool, len(approvedEntryIDs))
		for _, id := range approvedEntryIDs {
			if !inRequest[id] {
				return fmt.Errorf("%w: entry %s is not part of request %s", ErrInvalidInput, id, requestID)
			}
			approved[id] = true
		}
		for _, id := range req.EntryIDs {
			if approved[id] {
				approvedIDs = append(approvedIDs, id)
			} else {
				rejectedIDs = append(rejectedIDs, id)
			}
		}
	default:
		return fmt.Errorf("%w: unknown decision %q", ErrInvalidInput, decision)
	}

	req.Status = decision
	req.CustomerFeedback = feedback
	if decision == domain.ApprovalStatusPartiallyApproved {
		req.ApprovedEntryIDs = approvedIDs
	}
	now := time.Now()
	req.RespondedAt = &now

	trackingStatus := trackingStatusFor(decision)
	if err := s.approvalRepo.CommitDecision(ctx, req, approvedIDs, rejectedIDs, trackingStatus, tracking.Version); err != nil {
		zap.L().Error("can't commit approval decision", zap.Error(err))
		return err
	}

	zap.L().Info("processed customer approval",
		zap.String("requestID", requestID), zap.String("decision", decision),
		zap.Int("approved", len(approvedIDs)), zap.Int("rejected", len(rejectedIDs)))
	return nil
}

// ApproveCompleteOrder bulk-approves every submitted entry and pending
// request and closes the order. Entries the customer already rejected are
// left untouched.
func (s *Service) ApproveCompleteOrder(ctx context.Context, orderID, customerID, feedback string) error {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if tracking == nil {
		return domain.ErrNotFound
	}
	if tracking.CustomerID != customerID {
		return ErrNotAllowed
	}

	pending, err := s.approvalRepo.FindPendingByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	entries, err := s.entryRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	var requestIDs, entryIDs []string
	for _, req := range pending {
		requestIDs = append(requestIDs, req.ID)
	}
	for _, entry := range entries {
		if entry.Status == domain.EntryStatusSubmitted {
			entryIDs = append(entryIDs, entry.ID)
		}
	}

	if err := s.approvalRepo.CommitBulkApproval(ctx, orderID, requestIDs, entryIDs, feedback, tracking.Version); err != nil {
		zap.L().Error("can't bulk-approve order", zap.Error(err))
		return err
	}

	zap.L().Info("approved complete order",
		zap.String("orderID", orderID), zap.Int("requests", len(requestIDs)), zap.Int("entries", len(entryIDs)))
	return nil
}

func buildRequest(tracking *domain.OrderTimeTracking, entries []domain.TimeEntry, message string, customerInitiated bool) *domain.ApprovalRequest {
	req := &domain.ApprovalRequest{
		ID:                uuid.NewString(),
		OrderID:           tracking.OrderID,
		ProviderID:        tracking.ProviderID,
		CustomerID:        tracking.CustomerID,
		Status:            domain.ApprovalStatusPending,
		ProviderMessage:   message,
		CustomerInitiated: customerInitiated,
		SubmittedAt:       time.Now(),
	}
	for _, entry := range entries {
		req.EntryIDs = append(req.EntryIDs, entry.ID)
		req.TotalHours += entry.Hours
		if entry.Category == domain.CategoryAdditional {
			req.TotalAmount += entry.BillableAmount
		}
	}
	return req
}

func trackingStatusFor(decision string) string {
	switch decision {
	case domain.ApprovalStatusApproved:
		return domain.TrackingStatusFullyApproved
	case domain.ApprovalStatusPartiallyApproved:
		return domain.TrackingStatusPartiallyApproved
	default:
		// Rejection returns the order to active so the provider can rework.
		return domain.TrackingStatusActive
	}
}

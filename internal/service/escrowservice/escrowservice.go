package escrowservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/metrics"
)

type TrackingRepo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.OrderTimeTracking, error)
}

type EntryRepo interface {
	FindByOrderID(ctx context.Context, orderID string) ([]domain.TimeEntry, error)
}

type EscrowRepo interface {
	FindByID(ctx context.Context, escrowID string) (*domain.Escrow, error)
	FindActiveByOrderID(ctx context.Context, orderID string) (*domain.Escrow, error)
	Create(ctx context.Context, escrow *domain.Escrow, version int64) error
	MarkPaid(ctx context.Context, escrow *domain.Escrow, trackingStatus string, version int64) error
	MarkReleased(ctx context.Context, escrow *domain.Escrow, version int64) error
}

type AuthorizeParams struct {
	OrderID        string
	CustomerID     string
	ProviderID     string
	Amount         int64
	Currency       string
	IdempotencyKey string
}

// PaymentAPI is the external escrow provider. Both calls must be passed an
// idempotency key so that a retried authorize or release never double-charges.
type PaymentAPI interface {
	Authorize(ctx context.Context, p AuthorizeParams) (string, error)
	Release(ctx context.Context, escrowID, idempotencyKey string) error
}

type Service struct {
	trackingRepo TrackingRepo
	entryRepo    EntryRepo
	escrowRepo   EscrowRepo
	payments     PaymentAPI
	feeBps       int64
	currency     string
}

// New wires the settlement engine. feeBps is the platform fee in basis
// points, applied uniformly to every escrow.
func New(trackingRepo TrackingRepo, entryRepo EntryRepo, escrowRepo EscrowRepo, payments PaymentAPI, feeBps int64, currency string) *Service {
	return &Service{
		trackingRepo: trackingRepo,
		entryRepo:    entryRepo,
		escrowRepo:   escrowRepo,
		payments:     payments,
		feeBps:       feeBps,
		currency:     currency,
	}
}

var (
	ErrNotAllowed = errors.New("not authorized for this order")
	// ErrNothingApproved means no approved additional entries are awaiting
	// settlement; a repeat createEscrow call lands here.
	ErrNothingApproved = errors.New("no approved billable entries")
	ErrStatusConflict  = errors.New("escrow is not in the required state")
	// ErrAlreadyReleased reports the no-op second release of an escrow.
	ErrAlreadyReleased = errors.New("escrow already released")
	// ErrExternalService wraps payment API failures. Local state is never
	// mutated when it is returned.
	ErrExternalService = errors.New("payment service failure")
)

// CreateEscrow gathers the customer-approved additional entries not yet
// under an escrow, authorizes a hold for their total with the payment
// provider, and only then records the escrow locally.
func (s *Service) CreateEscrow(ctx context.Context, orderID, providerID string) (*domain.Escrow, error) {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tracking == nil {
		return nil, domain.ErrNotFound
	}
	if tracking.ProviderID != providerID {
		return nil, ErrNotAllowed
	}

	entries, err := s.entryRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var entryIDs []string
	var total int64
	for _, entry := range entries {
		if entry.Category != domain.CategoryAdditional || entry.Status != domain.EntryStatusCustomerApproved {
			continue
		}
		if entry.EscrowID != "" {
			continue
		}
		entryIDs = append(entryIDs, entry.ID)
		total += entry.BillableAmount
	}
	if total <= 0 {
		return nil, ErrNothingApproved
	}

	escrowID, err := s.payments.Authorize(ctx, AuthorizeParams{
		OrderID:        orderID,
		CustomerID:     tracking.CustomerID,
		ProviderID:     tracking.ProviderID,
		Amount:         total,
		Currency:       s.currency,
		IdempotencyKey: authorizeKey(orderID, entryIDs),
	})
	if err != nil {
		metrics.PaymentErrorsTotal.WithLabelValues("authorize").Inc()
		zap.L().Error("escrow authorization failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrExternalService, err)
	}

	fee := platformFee(total, s.feeBps)
	escrow := &domain.Escrow{
		ID:                escrowID,
		OrderID:           orderID,
		ProviderID:        tracking.ProviderID,
		CustomerID:        tracking.CustomerID,
		Amount:            total,
		Currency:          s.currency,
		PlatformFeeAmount: fee,
		ProviderAmount:    total - fee,
		Status:            domain.EscrowStatusAuthorized,
		EntryIDs:          entryIDs,
	}
	if err := s.escrowRepo.Create(ctx, escrow, tracking.Version); err != nil {
		zap.L().Error("can't record escrow", zap.Error(err))
		return nil, err
	}

	metrics.EscrowAuthorizedTotal.Inc()
	zap.L().Info("escrow authorized",
		zap.String("orderID", orderID), zap.String("escrowID", escrowID),
		zap.Int64("amount", total), zap.Int64("fee", fee))
	return escrow, nil
}

// MarkEscrowPaid transitions the hold to held and the covered entries to
// billed. The payment system is the source of truth for "paid", so this is
// purely a local state transition. If both parties already confirmed
// completion the release is triggered right away.
func (s *Service) MarkEscrowPaid(ctx context.Context, orderID, escrowID string) error {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if tracking == nil {
		return domain.ErrNotFound
	}

	escrow, err := s.escrowRepo.FindByID(ctx, escrowID)
	if err != nil {
		return err
	}
	if escrow == nil || escrow.OrderID != orderID {
		return domain.ErrNotFound
	}
	if escrow.Status != domain.EscrowStatusAuthorized {
		return ErrStatusConflict
	}

	if err := s.escrowRepo.MarkPaid(ctx, escrow, tracking.Status, tracking.Version); err != nil {
		zap.L().Error("can't mark escrow paid", zap.Error(err))
		return err
	}
	zap.L().Info("escrow marked paid", zap.String("escrowID", escrowID))

	if tracking.BothPartiesComplete() {
		if err := s.ReleaseEscrow(ctx, orderID); err != nil && !errors.Is(err, ErrAlreadyReleased) {
			return err
		}
	}
	return nil
}

// ReleaseEscrow pays the held amount out to the provider minus the platform
// fee. A second call on a released escrow is a reported no-op; the release
// API is invoked at most once per escrow.
func (s *Service) ReleaseEscrow(ctx context.Context, orderID string) error {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if tracking == nil {
		return domain.ErrNotFound
	}
	if tracking.EscrowID == "" {
		return domain.ErrNotFound
	}

	escrow, err := s.escrowRepo.FindByID(ctx, tracking.EscrowID)
	if err != nil {
		return err
	}
	if escrow == nil {
		return domain.ErrNotFound
	}
	if escrow.Status == domain.EscrowStatusReleased {
		return ErrAlreadyReleased
	}
	if escrow.Status != domain.EscrowStatusHeld {
		return ErrStatusConflict
	}

	if err := s.payments.Release(ctx, escrow.ID, releaseKey(escrow.ID)); err != nil {
		metrics.PaymentErrorsTotal.WithLabelValues("release").Inc()
		zap.L().Error("escrow release failed", zap.Error(err))
		return fmt.Errorf("%w: %s", ErrExternalService, err)
	}

	if err := s.escrowRepo.MarkReleased(ctx, escrow, tracking.Version); err != nil {
		zap.L().Error("can't record escrow release", zap.Error(err))
		return err
	}

	metrics.EscrowReleasedTotal.Inc()
	zap.L().Info("escrow released",
		zap.String("orderID", orderID), zap.String("escrowID", escrow.ID),
		zap.Int64("providerAmount", escrow.ProviderAmount))
	return nil
}

func (s *Service) GetEscrow(ctx context.Context, orderID string) (*domain.Escrow, error) {
	escrow, err := s.escrowRepo.FindActiveByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get escrow", zap.Error(err))
		return nil, err
	}
	return escrow, nil
}

func platformFee(total, feeBps int64) int64 {
	return int64(math.Round(float64(total) * float64(feeBps) / 10000))
}

// authorizeKey derives a stable idempotency key from the order and the
// covered entry set, so a retried authorize maps to the same hold.
func authorizeKey(orderID string, entryIDs []string) string {
	ids := make([]string, len(entryIDs))
	copy(ids, entryIDs)
	sort.Strings(ids)
	sum := sha256.Sum256([]byte(orderID + ":" + strings.Join(ids, ",")))
	return "authorize:" + hex.EncodeToString(sum[:16])
}

func releaseKey(escrowID string) string {
	return "release:" + escrowID
}

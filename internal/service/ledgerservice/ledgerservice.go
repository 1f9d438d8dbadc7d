package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskvio/timetrack/internal/domain"
)

type TrackingRepo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.OrderTimeTracking, error)
	Create(ctx context.Context, tracking *domain.OrderTimeTracking) error
}

type EntryRepo interface {
	FindByID(ctx context.Context, entryID string) (*domain.TimeEntry, error)
	FindByOrderID(ctx context.Context, orderID string) ([]domain.TimeEntry, error)
	Save(ctx context.Context, entry *domain.TimeEntry, version int64) error
	Update(ctx context.Context, entry *domain.TimeEntry, version int64) error
	Delete(ctx context.Context, entryID, orderID string, version int64) error
}

// RateResolver looks up a provider's current hourly rate in minor units.
// Implementations report an unknown provider with domain.ErrNotFound.
type RateResolver interface {
	Resolve(ctx context.Context, providerID string) (int64, error)
}

type Service struct {
	trackingRepo TrackingRepo
	entryRepo    EntryRepo
	rates        RateResolver
}

func New(trackingRepo TrackingRepo, entryRepo EntryRepo, rates RateResolver) *Service {
	return &Service{
		trackingRepo: trackingRepo,
		entryRepo:    entryRepo,
		rates:        rates,
	}
}

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotAllowed     = errors.New("not authorized for this order")
	ErrStatusConflict = errors.New("entry is not in an editable state")
	// ErrRateUnresolved means no hourly rate could be determined and no
	// override was supplied. The engine never guesses a rate.
	ErrRateUnresolved = errors.New("hourly rate unresolved")
)

type InitializeParams struct {
	OrderID              string
	ProviderID           string
	CustomerID           string
	OriginalPlannedHours float64
	HourlyRate           int64 // minor units
}

// InitializeTracking creates the per-order tracking record with an explicit
// rate snapshot. Logging an entry on an untracked order initializes lazily
// instead.
func (s *Service) InitializeTracking(ctx context.Context, p InitializeParams) error {
	if p.OrderID == "" || p.ProviderID == "" || p.CustomerID == "" || p.HourlyRate <= 0 {
		return ErrInvalidInput
	}

	existing, err := s.trackingRepo.FindByOrderID(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrStatusConflict
	}

	tracking := &domain.OrderTimeTracking{
		OrderID:              p.OrderID,
		ProviderID:           p.ProviderID,
		CustomerID:           p.CustomerID,
		OriginalPlannedHours: p.OriginalPlannedHours,
		HourlyRate:           p.HourlyRate,
		Status:               domain.TrackingStatusActive,
		Version:              1,
	}
	if err := s.trackingRepo.Create(ctx, tracking); err != nil {
		zap.L().Error("can't initialize time tracking", zap.Error(err))
		return err
	}
	return nil
}

type LogEntryParams struct {
	OrderID       string
	ProviderID    string
	CustomerID    string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	EndTime       string // HH:MM
	Hours         float64
	Description   string
	Category      string
	IsBreakTime   bool
	BreakMinutes  int
	TravelMinutes int
	TravelCost    int64  // minor units
	RateOverride  *int64 // minor units, used only when no rate is resolvable
}

// LogTimeEntry appends a logged work interval. The effective hourly rate is
// resolved in order: the order's snapshotted rate, the provider's profile
// rate, an explicit override. With none of the three the call fails closed.
func (s *Service) LogTimeEntry(ctx context.Context, p LogEntryParams) (string, error) {
	if p.Hours <= 0 {
		return "", fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
	}
	if p.Category != domain.CategoryOriginal && p.Category != domain.CategoryAdditional {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, p.Category)
	}
	if p.TravelCost < 0 {
		return "", fmt.Errorf("%w: travel cost must not be negative", ErrInvalidInput)
	}

	tracking, err := s.trackingRepo.FindByOrderID(ctx, p.OrderID)
	if err != nil {
		return "", err
	}
	if tracking == nil {
		tracking, err = s.initLazy(ctx, p)
		if err != nil {
			return "", err
		}
	} else if tracking.ProviderID != p.ProviderID {
		return "", ErrNotAllowed
	}

	entry := &domain.TimeEntry{
		ID:            uuid.NewString(),
		OrderID:       p.OrderID,
		ProviderID:    tracking.ProviderID,
		CustomerID:    tracking.CustomerID,
		Date:          p.Date,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Hours:         p.Hours,
		Description:   p.Description,
		Category:      p.Category,
		IsBreakTime:   p.IsBreakTime,
		BreakMinutes:  p.BreakMinutes,
		TravelMinutes: p.TravelMinutes,
		TravelCost:    p.TravelCost,
		Status:        domain.EntryStatusLogged,
		CreatedAt:     time.Now(),
	}
	if p.Category == domain.CategoryAdditional {
		entry.BillableAmount = billableAmount(p.Hours, tracking.HourlyRate, p.TravelCost)
	}

	if err := s.entryRepo.Save(ctx, entry, tracking.Version); err != nil {
		zap.L().Error("can't save time entry", zap.Error(err))
		return "", err
	}
	return entry.ID, nil
}

func (s *Service) initLazy(ctx context.Context, p LogEntryParams) (*domain.OrderTimeTracking, error) {
	if p.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id required to initialize tracking", ErrInvalidInput)
	}

	rate, err := s.rates.Resolve(ctx, p.ProviderID)
	if errors.Is(err, domain.ErrNotFound) {
		if p.RateOverride == nil || *p.RateOverride <= 0 {
			return nil, ErrRateUnresolved
		}
		rate = *p.RateOverride
	} else if err != nil {
		zap.L().Error("rate resolution failed", zap.Error(err))
		return nil, err
	}

	tracking := &domain.OrderTimeTracking{
		OrderID:    p.OrderID,
		ProviderID: p.ProviderID,
		CustomerID: p.CustomerID,
		HourlyRate: rate,
		Status:     domain.TrackingStatusActive,
		Version:    1,
	}
	if err := s.trackingRepo.Create(ctx, tracking); err != nil {
		zap.L().Error("can't lazily initialize time tracking", zap.Error(err))
		return nil, err
	}
	return tracking, nil
}

type EntryUpdate struct {
	Date          *string
	StartTime     *string
	EndTime       *string
	Hours         *float64
	Description   *string
	BreakMinutes  *int
	TravelMinutes *int
	TravelCost    *int64
}

// UpdateTimeEntry edits a logged entry. Changing hours or travel cost on an
// additional entry recomputes the billable amount from the snapshotted rate.
func (s *Service) UpdateTimeEntry(ctx context.Context, orderID, entryID, providerID string, upd EntryUpdate) error {
	entry, tracking, err := s.loadEditable(ctx, orderID, entryID, providerID)
	if err != nil {
		return err
	}

	if upd.Date != nil {
		entry.Date = *upd.Date
	}
	if upd.StartTime != nil {
		entry.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		entry.EndTime = *upd.EndTime
	}
	if upd.Hours != nil {
		if *upd.Hours <= 0 {
			return fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
		}
		entry.Hours = *upd.Hours
	}
	if upd.Description != nil {
		entry.Description = *upd.Description
	}
	if upd.BreakMinutes != nil {
		entry.BreakMinutes = *upd.BreakMinutes
	}
	if upd.TravelMinutes != nil {
		entry.TravelMinutes = *upd.TravelMinutes
	}
	if upd.TravelCost != nil {
		if *upd.TravelCost < 0 {
			return fmt.Errorf("%w: travel cost must not be negative", ErrInvalidInput)
		}
		entry.TravelCost = *upd.TravelCost
	}
	if entry.Category == domain.CategoryAdditional {
		entry.BillableAmount = billableAmount(entry.Hours, tracking.HourlyRate, entry.TravelCost)
	}

	if err := s.entryRepo.Update(ctx, entry, tracking.Version); err != nil {
		zap.L().Error("can't update time entry", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) DeleteTimeEntry(ctx context.Context, orderID, entryID, providerID string) error {
	entry, tracking, err := s.loadEditable(ctx, orderID, entryID, providerID)
	if err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, entry.ID, orderID, tracking.Version); err != nil {
		zap.L().Error("can't delete time entry", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) loadEditable(ctx context.Context, orderID, entryID, providerID string) (*domain.TimeEntry, *domain.OrderTimeTracking, error) {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if tracking == nil {
		return nil, nil, domain.ErrNotFound
	}
	if tracking.ProviderID != providerID {
		return nil, nil, ErrNotAllowed
	}

	entry, err := s.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	if entry == nil || entry.OrderID != orderID {
		return nil, nil, domain.ErrNotFound
	}
	if entry.Status != domain.EntryStatusLogged {
		return nil, nil, ErrStatusConflict
	}
	return entry, tracking, nil
}

// GetEntriesForOrder returns the order's ledger, newest work first.
func (s *Service) GetEntriesForOrder(ctx context.Context, orderID string) ([]domain.TimeEntry, error) {
	entries, err := s.entryRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get time entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetTracking(ctx context.Context, orderID string) (*domain.OrderTimeTracking, error) {
	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get time tracking", zap.Error(err))
		return nil, err
	}
	return tracking, nil
}

func billableAmount(hours float64, rate, travelCost int64) int64 {
	return int64(math.Round(hours*float64(rate))) + travelCost
}

package completionservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/service/escrowservice"
)

type TrackingRepo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.OrderTimeTracking, error)
	SetCompletion(ctx context.Context, orderID, party string, at time.Time, version int64) error
	MarkCompleted(ctx context.Context, orderID string, version int64) error
}

// Releaser pays out a held escrow. Implemented by the escrow service.
type Releaser interface {
	ReleaseEscrow(ctx context.Context, orderID string) error
}

type Service struct {
	trackingRepo TrackingRepo
	releaser     Releaser
}

func New(trackingRepo TrackingRepo, releaser Releaser) *Service {
	return &Service{
		trackingRepo: trackingRepo,
		releaser:     releaser,
	}
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotAllowed   = errors.New("not authorized for this order")
)

// MarkComplete records one party's "work is done" acknowledgement. The
// acknowledgement is once-effective; repeating it only refreshes the
// timestamp. The escrow release fires exactly when the second party
// confirms: the held->released transition of the escrow itself keeps the
// trigger idempotent.
func (s *Service) MarkComplete(ctx context.Context, orderID, party, actorID string) (*domain.OrderTimeTracking, error) {
	if party != domain.PartyCustomer && party != domain.PartyProvider {
		return nil, ErrInvalidInput
	}

	tracking, err := s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tracking == nil {
		return nil, domain.ErrNotFound
	}
	if party == domain.PartyCustomer && tracking.CustomerID != actorID {
		return nil, ErrNotAllowed
	}
	if party == domain.PartyProvider && tracking.ProviderID != actorID {
		return nil, ErrNotAllowed
	}

	if err := s.trackingRepo.SetCompletion(ctx, orderID, party, time.Now(), tracking.Version); err != nil {
		zap.L().Error("can't set completion", zap.Error(err))
		return nil, err
	}

	tracking, err = s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tracking == nil {
		return nil, domain.ErrNotFound
	}
	if !tracking.BothPartiesComplete() {
		return tracking, nil
	}

	if err := s.settle(ctx, tracking); err != nil {
		return nil, err
	}

	tracking, err = s.trackingRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return tracking, nil
}

func (s *Service) settle(ctx context.Context, tracking *domain.OrderTimeTracking) error {
	// No escrow to release (no billable additional hours): close the order.
	if tracking.EscrowID == "" {
		if tracking.Status == domain.TrackingStatusCompleted {
			return nil
		}
		if err := s.trackingRepo.MarkCompleted(ctx, tracking.OrderID, tracking.Version); err != nil {
			zap.L().Error("can't complete order", zap.Error(err))
			return err
		}
		return nil
	}

	err := s.releaser.ReleaseEscrow(ctx, tracking.OrderID)
	switch {
	case err == nil:
		zap.L().Info("both parties complete, escrow release triggered",
			zap.String("orderID", tracking.OrderID))
		return nil
	case errors.Is(err, escrowservice.ErrAlreadyReleased):
		return nil
	case errors.Is(err, escrowservice.ErrStatusConflict):
		// Escrow authorized but not yet funded; MarkEscrowPaid will pick
		// the release up once the payment lands.
		zap.L().Info("completion confirmed before escrow funded",
			zap.String("orderID", tracking.OrderID))
		return nil
	default:
		return err
	}
}

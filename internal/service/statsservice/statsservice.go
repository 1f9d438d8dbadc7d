package statsservice

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taskvio/timetrack/internal/domain"
)

type StatsRepo interface {
	CountActiveOrdersByProvider(ctx context.Context, providerID string) (int, error)
	HoursByProvider(ctx context.Context, providerID string) (float64, float64, error)
	PendingPayoutByProvider(ctx context.Context, providerID string) (int64, error)
	CountActiveOrdersByCustomer(ctx context.Context, customerID string) (int, error)
	HoursByCustomer(ctx context.Context, customerID string) (float64, error)
	PendingApprovalsByCustomer(ctx context.Context, customerID string) (int, error)
	HeldAmountByCustomer(ctx context.Context, customerID string) (int64, error)
}

// Service computes read-only dashboard rollups. Orders without a tracking
// record simply contribute zero; nothing here mutates state.
type Service struct {
	repo StatsRepo
}

func New(repo StatsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrInvalidInput = errors.New("invalid input")

func (s *Service) ProviderStats(ctx context.Context, providerID string) (*domain.ProviderStats, error) {
	if providerID == "" {
		return nil, ErrInvalidInput
	}

	var stats domain.ProviderStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.repo.CountActiveOrdersByProvider(gctx, providerID)
		if err != nil {
			return err
		}
		stats.ActiveOrders = count
		return nil
	})
	g.Go(func() error {
		logged, approved, err := s.repo.HoursByProvider(gctx, providerID)
		if err != nil {
			return err
		}
		stats.TotalLoggedHours = logged
		stats.TotalApprovedHours = approved
		return nil
	})
	g.Go(func() error {
		payout, err := s.repo.PendingPayoutByProvider(gctx, providerID)
		if err != nil {
			return err
		}
		stats.PendingPayout = payout
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute provider stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (s *Service) CustomerStats(ctx context.Context, customerID string) (*domain.CustomerStats, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}

	var stats domain.CustomerStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.repo.CountActiveOrdersByCustomer(gctx, customerID)
		if err != nil {
			return err
		}
		stats.ActiveOrders = count
		return nil
	})
	g.Go(func() error {
		logged, err := s.repo.HoursByCustomer(gctx, customerID)
		if err != nil {
			return err
		}
		stats.TotalLoggedHours = logged
		return nil
	})
	g.Go(func() error {
		count, err := s.repo.PendingApprovalsByCustomer(gctx, customerID)
		if err != nil {
			return err
		}
		stats.PendingApprovals = count
		return nil
	})
	g.Go(func() error {
		held, err := s.repo.HeldAmountByCustomer(gctx, customerID)
		if err != nil {
			return err
		}
		stats.HeldAmount = held
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute customer stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

package trackingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const trackingColumns = `
        order_id, provider_id, customer_id, original_planned_hours,
        total_logged_hours, total_approved_hours, total_billed_hours,
        hourly_rate, status, customer_feedback, escrow_id, escrow_status,
        customer_marked_complete, provider_marked_complete, escrow_release_initiated,
        customer_completed_at, provider_completed_at, version, created_at, last_updated`

func scanTracking(row pgx.Row) (*domain.OrderTimeTracking, error) {
	var t domain.OrderTimeTracking
	err := row.Scan(
		&t.OrderID, &t.ProviderID, &t.CustomerID, &t.OriginalPlannedHours,
		&t.TotalLoggedHours, &t.TotalApprovedHours, &t.TotalBilledHours,
		&t.HourlyRate, &t.Status, &t.CustomerFeedback, &t.EscrowID, &t.EscrowStatus,
		&t.CustomerComplete, &t.ProviderComplete, &t.EscrowReleaseInitiated,
		&t.CustomerCompletedAt, &t.ProviderCompletedAt, &t.Version, &t.CreatedAt, &t.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.OrderTimeTracking, error) {
	query := `
        SELECT` + trackingColumns + `
        FROM order_time_tracking
        WHERE order_id = $1
    `
	tracking, err := scanTracking(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find time tracking", zap.Error(err))
		return nil, err
	}
	return tracking, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.OrderTimeTracking) error {
	query := `
        INSERT INTO order_time_tracking
            (order_id, provider_id, customer_id, original_planned_hours, hourly_rate, status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			t.OrderID, t.ProviderID, t.CustomerID, t.OriginalPlannedHours, t.HourlyRate, t.Status)
		if err != nil {
			zap.L().Error("can't create time tracking", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// SetCompletion records one party's completion acknowledgement. Repeated
// calls refresh the timestamp only.
func (r *Repository) SetCompletion(ctx context.Context, orderID, party string, at time.Time, version int64) error {
	query := `
        UPDATE order_time_tracking
        SET customer_marked_complete = customer_marked_complete OR $2,
            provider_marked_complete = provider_marked_complete OR $3,
            customer_completed_at = CASE WHEN $2 THEN $4 ELSE customer_completed_at END,
            provider_completed_at = CASE WHEN $3 THEN $4 ELSE provider_completed_at END,
            last_updated = now(),
            version = version + 1
        WHERE order_id = $1 AND version = $5
    `
	isCustomer := party == domain.PartyCustomer
	tag, err := r.db.Exec(ctx, query, orderID, isCustomer, !isCustomer, at, version)
	if err != nil {
		zap.L().Error("can't set completion", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// MarkCompleted closes an order that has no escrow to release.
func (r *Repository) MarkCompleted(ctx context.Context, orderID string, version int64) error {
	query := `
        UPDATE order_time_tracking
        SET status = $2, last_updated = now(), version = version + 1
        WHERE order_id = $1 AND version = $3
    `
	tag, err := r.db.Exec(ctx, query, orderID, domain.TrackingStatusCompleted, version)
	if err != nil {
		zap.L().Error("can't mark tracking completed", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *Repository) CountActiveOrdersByProvider(ctx context.Context, providerID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM order_time_tracking
        WHERE provider_id = $1 AND status <> 'completed'
    `
	var count int
	if err := r.db.QueryRow(ctx, query, providerID).Scan(&count); err != nil {
		zap.L().Error("can't count active orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) HoursByProvider(ctx context.Context, providerID string) (float64, float64, error) {
	query := `
        SELECT COALESCE(SUM(total_logged_hours), 0), COALESCE(SUM(total_approved_hours), 0)
        FROM order_time_tracking
        WHERE provider_id = $1
    `
	var logged, approved float64
	if err := r.db.QueryRow(ctx, query, providerID).Scan(&logged, &approved); err != nil {
		zap.L().Error("can't sum provider hours", zap.Error(err))
		return 0, 0, err
	}
	return logged, approved, nil
}

// PendingPayoutByProvider sums the provider share of escrows not yet released.
func (r *Repository) PendingPayoutByProvider(ctx context.Context, providerID string) (int64, error) {
	query := `
        SELECT COALESCE(SUM(provider_amount), 0)
        FROM escrows
        WHERE provider_id = $1 AND status IN ('authorized', 'held')
    `
	var payout int64
	if err := r.db.QueryRow(ctx, query, providerID).Scan(&payout); err != nil {
		zap.L().Error("can't sum pending payout", zap.Error(err))
		return 0, err
	}
	return payout, nil
}

func (r *Repository) CountActiveOrdersByCustomer(ctx context.Context, customerID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM order_time_tracking
        WHERE customer_id = $1 AND status <> 'completed'
    `
	var count int
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&count); err != nil {
		zap.L().Error("can't count customer orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) HoursByCustomer(ctx context.Context, customerID string) (float64, error) {
	query := `
        SELECT COALESCE(SUM(total_logged_hours), 0)
        FROM order_time_tracking
        WHERE customer_id = $1
    `
	var logged float64
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&logged); err != nil {
		zap.L().Error("can't sum customer hours", zap.Error(err))
		return 0, err
	}
	return logged, nil
}

func (r *Repository) PendingApprovalsByCustomer(ctx context.Context, customerID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM approval_requests
        WHERE customer_id = $1 AND status = 'pending'
    `
	var count int
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&count); err != nil {
		zap.L().Error("can't count pending approvals", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) HeldAmountByCustomer(ctx context.Context, customerID string) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM escrows
        WHERE customer_id = $1 AND status IN ('authorized', 'held')
    `
	var held int64
	if err := r.db.QueryRow(ctx, query, customerID).Scan(&held); err != nil {
		zap.L().Error("can't sum held amount", zap.Error(err))
		return 0, err
	}
	return held, nil
}

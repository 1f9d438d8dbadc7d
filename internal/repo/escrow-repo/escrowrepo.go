package escrowrepo

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

const escrowColumns = `
        id, order_id, provider_id, customer_id, amount, currency,
        platform_fee_amount, provider_amount, status, entry_ids, created_at, released_at`

const recalcTotalsQuery = `
        UPDATE order_time_tracking
        SET total_logged_hours = (
                SELECT COALESCE(SUM(hours), 0) FROM time_entries WHERE order_id = $1),
            total_approved_hours = (
                SELECT COALESCE(SUM(hours), 0) FROM time_entries
                WHERE order_id = $1 AND status IN ('customer_approved', 'escrow_authorized', 'billed', 'released')),
            total_billed_hours = (
                SELECT COALESCE(SUM(hours), 0) FROM time_entries
                WHERE order_id = $1 AND status IN ('billed', 'released')),
            escrow_id = $2,
            escrow_status = $3,
            status = $4,
            escrow_release_initiated = $5,
            last_updated = now(),
            version = version + 1
        WHERE order_id = $1 AND version = $6
    `

func scanEscrow(row pgx.Row) (*domain.Escrow, error) {
	var e domain.Escrow
	err := row.Scan(
		&e.ID, &e.OrderID, &e.ProviderID, &e.CustomerID, &e.Amount, &e.Currency,
		&e.PlatformFeeAmount, &e.ProviderAmount, &e.Status, &e.EntryIDs,
		&e.CreatedAt, &e.ReleasedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) FindByID(ctx context.Context, escrowID string) (*domain.Escrow, error) {
	query := `
        SELECT` + escrowColumns + `
        FROM escrows
        WHERE id = $1
    `
	escrow, err := scanEscrow(r.db.QueryRow(ctx, query, escrowID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find escrow", zap.Error(err))
		return nil, err
	}
	return escrow, nil
}

// FindActiveByOrderID returns the order's escrow that has not been released
// yet, if any. Entries may belong to at most one such escrow.
func (r *Repository) FindActiveByOrderID(ctx context.Context, orderID string) (*domain.Escrow, error) {
	query := `
        SELECT` + escrowColumns + `
        FROM escrows
        WHERE order_id = $1 AND status IN ('authorized', 'held')
        ORDER BY created_at DESC
        LIMIT 1
    `
	escrow, err := scanEscrow(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active escrow", zap.Error(err))
		return nil, err
	}
	return escrow, nil
}

// Create persists an authorized escrow and attaches the covered entries.
// Called only after the payment provider confirmed the authorization.
func (r *Repository) Create(ctx context.Context, escrow *domain.Escrow, version int64) error {
	insertQuery := `
        INSERT INTO escrows
            (id, order_id, provider_id, customer_id, amount, currency,
             platform_fee_amount, provider_amount, status, entry_ids)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	entriesQuery := `
        UPDATE time_entries
        SET status = 'escrow_authorized', escrow_id = $2
        WHERE id = ANY($1)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, insertQuery,
			escrow.ID, escrow.OrderID, escrow.ProviderID, escrow.CustomerID,
			escrow.Amount, escrow.Currency, escrow.PlatformFeeAmount,
			escrow.ProviderAmount, escrow.Status, escrow.EntryIDs)
		if err != nil {
			zap.L().Error("can't create escrow", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, entriesQuery, escrow.EntryIDs, escrow.ID); err != nil {
			zap.L().Error("can't attach entries to escrow", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, recalcTotalsQuery, escrow.OrderID,
			escrow.ID, domain.EscrowStatusAuthorized, domain.TrackingStatusFullyApproved, false, version)
		if err != nil {
			zap.L().Error("can't update tracking escrow state", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConflict
		}
		return nil
	})
}

// MarkPaid records the provider-side confirmation that the hold was funded:
// escrow goes held, covered entries go billed. No external call is made
// here; the payment system is the source of truth for "paid".
func (r *Repository) MarkPaid(ctx context.Context, escrow *domain.Escrow, trackingStatus string, version int64) error {
	escrowQuery := `
        UPDATE escrows
        SET status = 'held'
        WHERE id = $1
    `
	entriesQuery := `
        UPDATE time_entries
        SET status = 'billed', billed_at = $2
        WHERE escrow_id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, escrowQuery, escrow.ID); err != nil {
			zap.L().Error("can't mark escrow held", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, entriesQuery, escrow.ID, time.Now()); err != nil {
			zap.L().Error("can't mark entries billed", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, recalcTotalsQuery, escrow.OrderID,
			escrow.ID, domain.EscrowStatusHeld, trackingStatus, false, version)
		if err != nil {
			zap.L().Error("can't update tracking escrow state", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConflict
		}
		return nil
	})
}

// MarkReleased finalizes the settlement after a successful release call:
// escrow released, entries released, order completed.
func (r *Repository) MarkReleased(ctx context.Context, escrow *domain.Escrow, version int64) error {
	escrowQuery := `
        UPDATE escrows
        SET status = 'released', released_at = $2
        WHERE id = $1
    `
	entriesQuery := `
        UPDATE time_entries
        SET status = 'released'
        WHERE escrow_id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, escrowQuery, escrow.ID, time.Now()); err != nil {
			zap.L().Error("can't mark escrow released", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, entriesQuery, escrow.ID); err != nil {
			zap.L().Error("can't mark entries released", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, recalcTotalsQuery, escrow.OrderID,
			escrow.ID, domain.EscrowStatusReleased, domain.TrackingStatusCompleted, true, version)
		if err != nil {
			zap.L().Error("can't update tracking escrow state", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConflict
		}
		return nil
	})
}

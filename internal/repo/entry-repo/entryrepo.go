package entryrepo

import (
	"context"
	"errors"

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

const entryColumns = `
        id, order_id, provider_id, customer_id, entry_date, start_time, end_time,
        hours, description, category, is_break_time, break_minutes, travel_minutes,
        travel_cost, billable_amount, status, escrow_id, approval_request_id,
        created_at, submitted_at, customer_response_at, billed_at`

// recalcTotalsQuery recomputes the per-order aggregates from the entry table
// and bumps the optimistic-concurrency version in the same statement. Zero
// rows affected means the tracking record changed under us.
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
            last_updated = now(),
            version = version + 1
        WHERE order_id = $1 AND version = $2
    `

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	err := row.Scan(
		&e.ID, &e.OrderID, &e.ProviderID, &e.CustomerID, &e.Date, &e.StartTime, &e.EndTime,
		&e.Hours, &e.Description, &e.Category, &e.IsBreakTime, &e.BreakMinutes, &e.TravelMinutes,
		&e.TravelCost, &e.BillableAmount, &e.Status, &e.EscrowID, &e.ApprovalRequestID,
		&e.CreatedAt, &e.SubmittedAt, &e.CustomerResponse, &e.BilledAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) FindByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	query := `
        SELECT` + entryColumns + `
        FROM time_entries
        WHERE id = $1
    `
	entry, err := scanEntry(r.db.QueryRow(ctx, query, entryID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find time entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) ([]domain.TimeEntry, error) {
	query := `
        SELECT` + entryColumns + `
        FROM time_entries
        WHERE order_id = $1
        ORDER BY entry_date DESC, start_time DESC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get time entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan time entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (r *Repository) FindByIDs(ctx context.Context, entryIDs []string) ([]domain.TimeEntry, error) {
	query := `
        SELECT` + entryColumns + `
        FROM time_entries
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, entryIDs)
	if err != nil {
		zap.L().Error("can't get time entries by ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan time entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// Save appends an entry and recomputes the order totals in one transaction.
func (r *Repository) Save(ctx context.Context, entry *domain.TimeEntry, version int64) error {
	query := `
        INSERT INTO time_entries
            (id, order_id, provider_id, customer_id, entry_date, start_time, end_time,
             hours, description, category, is_break_time, break_minutes, travel_minutes,
             travel_cost, billable_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			entry.ID, entry.OrderID, entry.ProviderID, entry.CustomerID,
			entry.Date, entry.StartTime, entry.EndTime, entry.Hours,
			entry.Description, entry.Category, entry.IsBreakTime, entry.BreakMinutes,
			entry.TravelMinutes, entry.TravelCost, entry.BillableAmount, entry.Status)
		if err != nil {
			zap.L().Error("can't save time entry", zap.Error(err))
			return err
		}
		return r.recalcTotals(ctx, entry.OrderID, version)
	})
}

// Update rewrites the editable fields of a logged entry and recomputes totals.
func (r *Repository) Update(ctx context.Context, entry *domain.TimeEntry, version int64) error {
	query := `
        UPDATE time_entries
        SET entry_date = $2, start_time = $3, end_time = $4, hours = $5,
            description = $6, break_minutes = $7, travel_minutes = $8,
            travel_cost = $9, billable_amount = $10
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			entry.ID, entry.Date, entry.StartTime, entry.EndTime, entry.Hours,
			entry.Description, entry.BreakMinutes, entry.TravelMinutes,
			entry.TravelCost, entry.BillableAmount)
		if err != nil {
			zap.L().Error("can't update time entry", zap.Error(err))
			return err
		}
		return r.recalcTotals(ctx, entry.OrderID, version)
	})
}

func (r *Repository) Delete(ctx context.Context, entryID, orderID string, version int64) error {
	query := `
        DELETE FROM time_entries
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, entryID)
		if err != nil {
			zap.L().Error("can't delete time entry", zap.Error(err))
			return err
		}
		return r.recalcTotals(ctx, orderID, version)
	})
}

func (r *Repository) recalcTotals(ctx context.Context, orderID string, version int64) error {
	tag, err := r.db.Exec(ctx, recalcTotalsQuery, orderID, version)
	if err != nil {
		zap.L().Error("can't recalc order totals", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

package approvalrepo

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

const requestColumns = `
        id, order_id, provider_id, customer_id, entry_ids, total_hours, total_amount,
        status, provider_message, customer_feedback, approved_entry_ids,
        customer_initiated, submitted_at, responded_at`

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
            status = $2,
            customer_feedback = $3,
            last_updated = now(),
            version = version + 1
        WHERE order_id = $1 AND version = $4
    `

func scanRequest(row pgx.Row) (*domain.ApprovalRequest, error) {
	var req domain.ApprovalRequest
	err := row.Scan(
		&req.ID, &req.OrderID, &req.ProviderID, &req.CustomerID, &req.EntryIDs,
		&req.TotalHours, &req.TotalAmount, &req.Status, &req.ProviderMessage,
		&req.CustomerFeedback, &req.ApprovedEntryIDs, &req.CustomerInitiated,
		&req.SubmittedAt, &req.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) FindByID(ctx context.Context, requestID string) (*domain.ApprovalRequest, error) {
	query := `
        SELECT` + requestColumns + `
        FROM approval_requests
        WHERE id = $1
    `
	req, err := scanRequest(r.db.QueryRow(ctx, query, requestID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find approval request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindPendingByOrderID(ctx context.Context, orderID string) ([]domain.ApprovalRequest, error) {
	query := `
        SELECT` + requestColumns + `
        FROM approval_requests
        WHERE order_id = $1 AND status = 'pending'
        ORDER BY submitted_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get pending approval requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ApprovalRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan approval request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

// CreateRequest inserts the batch, flips the referenced entries to
// submitted, and moves the order into submitted_for_approval, all in one
// guarded transaction.
func (r *Repository) CreateRequest(ctx context.Context, req *domain.ApprovalRequest, version int64) error {
	insertQuery := `
        INSERT INTO approval_requests
            (id, order_id, provider_id, customer_id, entry_ids, total_hours,
             total_amount, status, provider_message, customer_initiated, submitted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	entriesQuery := `
        UPDATE time_entries
        SET status = 'submitted', submitted_at = $2, approval_request_id = $3
        WHERE id = ANY($1)
    `
	trackingQuery := `
        UPDATE order_time_tracking
        SET status = $2, last_updated = now(), version = version + 1
        WHERE order_id = $1 AND version = $3
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, insertQuery,
			req.ID, req.OrderID, req.ProviderID, req.CustomerID, req.EntryIDs,
			req.TotalHours, req.TotalAmount, req.Status, req.ProviderMessage,
			req.CustomerInitiated, req.SubmittedAt)
		if err != nil {
			zap.L().Error("can't create approval request", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, entriesQuery, req.EntryIDs, req.SubmittedAt, req.ID); err != nil {
			zap.L().Error("can't submit time entries", zap.Error(err))
			return err
		}
		tag, err := r.db.Exec(ctx, trackingQuery, req.OrderID, domain.TrackingStatusSubmitted, version)
		if err != nil {
			zap.L().Error("can't update tracking status", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConflict
		}
		return nil
	})
}

// CommitDecision applies a resolved customer decision: request status,
// per-entry statuses, and the recomputed order aggregates.
func (r *Repository) CommitDecision(ctx context.Context, req *domain.ApprovalRequest, approvedIDs, rejectedIDs []string, trackingStatus string, version int64) error {
	requestQuery := `
        UPDATE approval_requests
        SET status = $2, customer_feedback = $3, approved_entry_ids = $4, responded_at = $5
        WHERE id = $1
    `
	entriesQuery := `
        UPDATE time_entries
        SET status = $2, customer_response_at = $3
        WHERE id = ANY($1)
    `
	now := time.Now()
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, requestQuery,
			req.ID, req.Status, req.CustomerFeedback, req.ApprovedEntryIDs, now)
		if err != nil {
			zap.L().Error("can't update approval request", zap.Error(err))
			return err
		}
		if len(approvedIDs) > 0 {
			if _, err := r.db.Exec(ctx, entriesQuery, approvedIDs, domain.EntryStatusCustomerApproved, now); err != nil {
				zap.L().Error("can't approve time entries", zap.Error(err))
				return err
			}
		}
		if len(rejectedIDs) > 0 {
			if _, err := r.db.Exec(ctx, entriesQuery, rejectedIDs, domain.EntryStatusCustomerRejected, now); err != nil {
				zap.L().Error("can't reject time entries", zap.Error(err))
				return err
			}
		}
		tag, err := r.db.Exec(ctx, recalcTotalsQuery, req.OrderID, trackingStatus, req.CustomerFeedback, version)
		if err != nil {
			zap.L().Error("can't recalc order totals", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConflict
		}
		return nil
	})
}

// CommitBulkApproval approves every listed entry and resolves every listed
// pending request in one shot, closing out the order.
func (r *Repository) CommitBulkApproval(ctx context.Context, orderID string, requestIDs, entryIDs []string, feedback string, version int64) error {
	requestsQuery := `
        UPDATE approval_requests
        SET status = 'approved', customer_feedback = $2, responded_at = $3
        WHERE id = ANY($1)
    `
	entriesQuery := `
        UPDATE time_entries
        SET status = 'customer_approved', customer_response_at = $2
        WHERE id = ANY($1)
    `
	now := time.Now()
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if len(requestIDs) > 0 {
			if _, err := r.db.Exec(ctx, requestsQuery, requestIDs, feedback, now); err != nil {
				zap.L().Error("can't bulk-approve requests", zap.Error(err))
				return err
			}
		}
		if len(entryIDs) > 0 {
			if _, err := r.db.Exec(ctx, entriesQuery, entryIDs, now); err != nil {
				zap.L().Error("can't bulk-approve entries", zap.Error(err))
				return err
			}
		}
		tag, err := r.db.Exec(ctx, recalcTotalsQuery, orderID, domain.TrackingStatusCompleted, feedback, version)
		if err != nil {
			zap.L().Error("can't recalc order totals", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConflict
		}
		return nil
	})
}

package approvalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func requestColumnNames() []string {
	return []string{
		"id", "order_id", "provider_id", "customer_id", "entry_ids", "total_hours", "total_amount",
		"status", "provider_message", "customer_feedback", "approved_entry_ids",
		"customer_initiated", "submitted_at", "responded_at",
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		requestID string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:      "Request exists",
			requestID: "req-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(requestColumnNames()).AddRow(
					"req-1", "ord-1", "prov-1", "cust-1", []string{"e-1", "e-2"}, 3.5, int64(9000),
					"pending", "please review", "", []string(nil),
					false, now, nil,
				)
				mock.ExpectQuery(regexp.QuoteMeta("FROM approval_requests")).
					WithArgs("req-1").
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name:      "Request does not exist",
			requestID: "req-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM approval_requests")).
					WithArgs("req-404").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:      "Database error",
			requestID: "req-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM approval_requests")).
					WithArgs("req-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.requestID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, "req-1", result.ID)
				assert.Equal(t, []string{"e-1", "e-2"}, result.EntryIDs)
			} else {
				assert.Nil(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindPendingByOrderID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(requestColumnNames()).
		AddRow("req-1", "ord-1", "prov-1", "cust-1", []string{"e-1"}, 2.0, int64(9000),
			"pending", "", "", []string(nil), false, now, nil).
		AddRow("req-2", "ord-1", "prov-1", "cust-1", []string{"e-2"}, 1.5, int64(0),
			"pending", "", "", []string(nil), true, now, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM approval_requests")).
		WithArgs("ord-1").
		WillReturnRows(rows)

	requests, err := repo.FindPendingByOrderID(context.Background(), "ord-1")
	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, "req-1", requests[0].ID)
	assert.True(t, requests[1].CustomerInitiated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateRequest(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	req := &domain.ApprovalRequest{
		ID:          "req-1",
		OrderID:     "ord-1",
		ProviderID:  "prov-1",
		CustomerID:  "cust-1",
		EntryIDs:    []string{"e-1", "e-2"},
		TotalHours:  3.5,
		TotalAmount: 9000,
		Status:      domain.ApprovalStatusPending,
		SubmittedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expected  error
	}{
		{
			name: "Request created and entries submitted",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO approval_requests")).
						WithArgs("req-1", "ord-1", "prov-1", "cust-1", []string{"e-1", "e-2"},
							3.5, int64(9000), "pending", "", false, now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
						WithArgs([]string{"e-1", "e-2"}, now, "req-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 2))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", domain.TrackingStatusSubmitted, int64(4)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Version conflict",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO approval_requests")).
						WithArgs("req-1", "ord-1", "prov-1", "cust-1", []string{"e-1", "e-2"},
							3.5, int64(9000), "pending", "", false, now).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
						WithArgs([]string{"e-1", "e-2"}, now, "req-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 2))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", domain.TrackingStatusSubmitted, int64(4)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			expected: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateRequest(context.Background(), req, 4)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CommitDecision(t *testing.T) {
	repo, mock, tx := NewMock(t)

	req := &domain.ApprovalRequest{
		ID:               "req-1",
		OrderID:          "ord-1",
		Status:           domain.ApprovalStatusPartiallyApproved,
		CustomerFeedback: "only the cabling",
		ApprovedEntryIDs: []string{"e-1"},
	}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE approval_requests")).
			WithArgs("req-1", "partially_approved", "only the cabling", []string{"e-1"}, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
			WithArgs([]string{"e-1"}, domain.EntryStatusCustomerApproved, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
			WithArgs([]string{"e-2"}, domain.EntryStatusCustomerRejected, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
			WithArgs("ord-1", domain.TrackingStatusPartiallyApproved, "only the cabling", int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return fn(ctx)
	})

	err := repo.CommitDecision(context.Background(), req,
		[]string{"e-1"}, []string{"e-2"}, domain.TrackingStatusPartiallyApproved, 4)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CommitBulkApproval(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name       string
		requestIDs []string
		entryIDs   []string
		mockSetup  func()
		expected   error
	}{
		{
			name:       "Requests and entries approved",
			requestIDs: []string{"req-1"},
			entryIDs:   []string{"e-1", "e-3"},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE approval_requests")).
						WithArgs([]string{"req-1"}, "thanks", pgxmock.AnyArg()).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
						WithArgs([]string{"e-1", "e-3"}, pgxmock.AnyArg()).
						WillReturnResult(pgxmock.NewResult("UPDATE", 2))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", domain.TrackingStatusCompleted, "thanks", int64(4)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Nothing pending still closes the order",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", domain.TrackingStatusCompleted, "thanks", int64(4)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CommitBulkApproval(context.Background(), "ord-1", tt.requestIDs, tt.entryIDs, "thanks", 4)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

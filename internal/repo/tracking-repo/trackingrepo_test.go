package trackingrepo

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

func trackingRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"order_id", "provider_id", "customer_id", "original_planned_hours",
		"total_logged_hours", "total_approved_hours", "total_billed_hours",
		"hourly_rate", "status", "customer_feedback", "escrow_id", "escrow_status",
		"customer_marked_complete", "provider_marked_complete", "escrow_release_initiated",
		"customer_completed_at", "provider_completed_at", "version", "created_at", "last_updated",
	}).AddRow(
		"ord-1", "prov-1", "cust-1", 20.0,
		12.5, 8.0, 0.0,
		int64(4500), "active", "", "", "",
		false, false, false,
		nil, nil, int64(3), now, now,
	)
}

func TestRepository_FindByOrderID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		orderID   string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:    "Tracking exists",
			orderID: "ord-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM order_time_tracking")).
					WithArgs("ord-1").
					WillReturnRows(trackingRows(now))
			},
			found: true,
		},
		{
			name:    "Tracking does not exist",
			orderID: "ord-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM order_time_tracking")).
					WithArgs("ord-404").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:    "Database error",
			orderID: "ord-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM order_time_tracking")).
					WithArgs("ord-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOrderID(context.Background(), tt.orderID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, "ord-1", result.OrderID)
				assert.Equal(t, int64(3), result.Version)
			} else {
				assert.Nil(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tracking := &domain.OrderTimeTracking{
		OrderID:              "ord-1",
		ProviderID:           "prov-1",
		CustomerID:           "cust-1",
		OriginalPlannedHours: 20.0,
		HourlyRate:           4500,
		Status:               domain.TrackingStatusActive,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Created successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_time_tracking")).
						WithArgs("ord-1", "prov-1", "cust-1", 20.0, int64(4500), "active").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_time_tracking")).
						WithArgs("ord-1", "prov-1", "cust-1", 20.0, int64(4500), "active").
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), tracking)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SetCompletion(t *testing.T) {
	repo, mock, _ := NewMock(t)
	at := time.Now()

	tests := []struct {
		name      string
		party     string
		mockSetup func()
		expected  error
	}{
		{
			name:  "Customer completion recorded",
			party: domain.PartyCustomer,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
					WithArgs("ord-1", true, false, at, int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "Provider completion recorded",
			party: domain.PartyProvider,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
					WithArgs("ord-1", false, true, at, int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:  "Version conflict",
			party: domain.PartyCustomer,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
					WithArgs("ord-1", true, false, at, int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expected: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SetCompletion(context.Background(), "ord-1", tt.party, at, 3)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkCompleted(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expected  error
	}{
		{
			name: "Order closed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
					WithArgs("ord-1", domain.TrackingStatusCompleted, int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Version conflict",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
					WithArgs("ord-1", domain.TrackingStatusCompleted, int64(3)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expected: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkCompleted(context.Background(), "ord-1", 3)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ProviderRollups(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("prov-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	count, err := repo.CountActiveOrdersByProvider(context.Background(), "prov-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(total_logged_hours), 0)")).
		WithArgs("prov-1").
		WillReturnRows(pgxmock.NewRows([]string{"logged", "approved"}).AddRow(42.5, 30.0))
	logged, approved, err := repo.HoursByProvider(context.Background(), "prov-1")
	assert.NoError(t, err)
	assert.Equal(t, 42.5, logged)
	assert.Equal(t, 30.0, approved)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(provider_amount), 0)")).
		WithArgs("prov-1").
		WillReturnRows(pgxmock.NewRows([]string{"payout"}).AddRow(int64(19100)))
	payout, err := repo.PendingPayoutByProvider(context.Background(), "prov-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(19100), payout)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CustomerRollups(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs("cust-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	count, err := repo.CountActiveOrdersByCustomer(context.Background(), "cust-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(total_logged_hours), 0)")).
		WithArgs("cust-1").
		WillReturnRows(pgxmock.NewRows([]string{"logged"}).AddRow(17.25))
	logged, err := repo.HoursByCustomer(context.Background(), "cust-1")
	assert.NoError(t, err)
	assert.Equal(t, 17.25, logged)

	mock.ExpectQuery(regexp.QuoteMeta("FROM approval_requests")).
		WithArgs("cust-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	pending, err := repo.PendingApprovalsByCustomer(context.Background(), "cust-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, pending)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(amount), 0)")).
		WithArgs("cust-1").
		WillReturnRows(pgxmock.NewRows([]string{"held"}).AddRow(int64(20000)))
	held, err := repo.HeldAmountByCustomer(context.Background(), "cust-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), held)

	assert.NoError(t, mock.ExpectationsWereMet())
}

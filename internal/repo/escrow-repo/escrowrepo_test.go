package escrowrepo

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

func escrowColumnNames() []string {
	return []string{
		"id", "order_id", "provider_id", "customer_id", "amount", "currency",
		"platform_fee_amount", "provider_amount", "status", "entry_ids", "created_at", "released_at",
	}
}

func escrowRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(escrowColumnNames()).AddRow(
		"esc-1", "ord-1", "prov-1", "cust-1", int64(20000), "EUR",
		int64(900), int64(19100), "held", []string{"e-1", "e-2"}, now, nil,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		escrowID  string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:     "Escrow exists",
			escrowID: "esc-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM escrows")).
					WithArgs("esc-1").
					WillReturnRows(escrowRow(now))
			},
			found: true,
		},
		{
			name:     "Escrow does not exist",
			escrowID: "esc-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM escrows")).
					WithArgs("esc-404").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:     "Database error",
			escrowID: "esc-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM escrows")).
					WithArgs("esc-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.escrowID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, int64(19100), result.ProviderAmount)
			} else {
				assert.Nil(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindActiveByOrderID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("status IN ('authorized', 'held')")).
		WithArgs("ord-1").
		WillReturnRows(escrowRow(now))

	escrow, err := repo.FindActiveByOrderID(context.Background(), "ord-1")
	assert.NoError(t, err)
	assert.NotNil(t, escrow)
	assert.Equal(t, "esc-1", escrow.ID)

	mock.ExpectQuery(regexp.QuoteMeta("status IN ('authorized', 'held')")).
		WithArgs("ord-2").
		WillReturnError(pgx.ErrNoRows)

	escrow, err = repo.FindActiveByOrderID(context.Background(), "ord-2")
	assert.NoError(t, err)
	assert.Nil(t, escrow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)

	escrow := &domain.Escrow{
		ID:                "esc-1",
		OrderID:           "ord-1",
		ProviderID:        "prov-1",
		CustomerID:        "cust-1",
		Amount:            20000,
		Currency:          "EUR",
		PlatformFeeAmount: 900,
		ProviderAmount:    19100,
		Status:            domain.EscrowStatusAuthorized,
		EntryIDs:          []string{"e-1", "e-2"},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expected  error
	}{
		{
			name: "Escrow recorded and entries attached",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO escrows")).
						WithArgs("esc-1", "ord-1", "prov-1", "cust-1", int64(20000), "EUR",
							int64(900), int64(19100), "authorized", []string{"e-1", "e-2"}).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
						WithArgs([]string{"e-1", "e-2"}, "esc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 2))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", "esc-1", domain.EscrowStatusAuthorized, domain.TrackingStatusFullyApproved, false, int64(6)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Version conflict",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO escrows")).
						WithArgs("esc-1", "ord-1", "prov-1", "cust-1", int64(20000), "EUR",
							int64(900), int64(19100), "authorized", []string{"e-1", "e-2"}).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
						WithArgs([]string{"e-1", "e-2"}, "esc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 2))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", "esc-1", domain.EscrowStatusAuthorized, domain.TrackingStatusFullyApproved, false, int64(6)).
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
			err := repo.Create(context.Background(), escrow, 6)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock, tx := NewMock(t)

	escrow := &domain.Escrow{ID: "esc-1", OrderID: "ord-1", Status: domain.EscrowStatusAuthorized}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE escrows")).
			WithArgs("esc-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
			WithArgs("esc-1", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
			WithArgs("ord-1", "esc-1", domain.EscrowStatusHeld, domain.TrackingStatusFullyApproved, false, int64(6)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return fn(ctx)
	})

	err := repo.MarkPaid(context.Background(), escrow, domain.TrackingStatusFullyApproved, 6)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkReleased(t *testing.T) {
	repo, mock, tx := NewMock(t)

	escrow := &domain.Escrow{ID: "esc-1", OrderID: "ord-1", Status: domain.EscrowStatusHeld}

	tests := []struct {
		name      string
		mockSetup func()
		expected  error
	}{
		{
			name: "Settlement finalized",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE escrows")).
						WithArgs("esc-1", pgxmock.AnyArg()).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
						WithArgs("esc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 2))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", "esc-1", domain.EscrowStatusReleased, domain.TrackingStatusCompleted, true, int64(6)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Version conflict",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE escrows")).
						WithArgs("esc-1", pgxmock.AnyArg()).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
						WithArgs("esc-1").
						WillReturnResult(pgxmock.NewResult("UPDATE", 2))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", "esc-1", domain.EscrowStatusReleased, domain.TrackingStatusCompleted, true, int64(6)).
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
			err := repo.MarkReleased(context.Background(), escrow, 6)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

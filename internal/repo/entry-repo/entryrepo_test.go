package entryrepo

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

func entryColumnNames() []string {
	return []string{
		"id", "order_id", "provider_id", "customer_id", "entry_date", "start_time", "end_time",
		"hours", "description", "category", "is_break_time", "break_minutes", "travel_minutes",
		"travel_cost", "billable_amount", "status", "escrow_id", "approval_request_id",
		"created_at", "submitted_at", "customer_response_at", "billed_at",
	}
}

func entryRow(rows *pgxmock.Rows, id string, now time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, "ord-1", "prov-1", "cust-1", "2026-08-20", "09:00", "12:30",
		3.5, "extra cabling", "additional", false, 0, 20,
		int64(700), int64(16450), "logged", "", "",
		now, nil, nil, nil,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		entryID   string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:    "Entry exists",
			entryID: "e-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM time_entries")).
					WithArgs("e-1").
					WillReturnRows(entryRow(pgxmock.NewRows(entryColumnNames()), "e-1", now))
			},
			found: true,
		},
		{
			name:    "Entry does not exist",
			entryID: "e-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM time_entries")).
					WithArgs("e-404").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:    "Database error",
			entryID: "e-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM time_entries")).
					WithArgs("e-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.entryID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, "e-1", result.ID)
				assert.Equal(t, int64(16450), result.BillableAmount)
			} else {
				assert.Nil(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByOrderID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(entryColumnNames())
	entryRow(rows, "e-1", now)
	entryRow(rows, "e-2", now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM time_entries")).
		WithArgs("ord-1").
		WillReturnRows(rows)

	entries, err := repo.FindByOrderID(context.Background(), "ord-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "e-1", entries[0].ID)
	assert.Equal(t, "e-2", entries[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDs(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Entries found",
			mockSetup: func() {
				rows := pgxmock.NewRows(entryColumnNames())
				entryRow(rows, "e-1", now)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ANY($1)")).
					WithArgs([]string{"e-1"}).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ANY($1)")).
					WithArgs([]string{"e-1"}).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entries, err := repo.FindByIDs(context.Background(), []string{"e-1"})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, entries, tt.count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)

	entry := &domain.TimeEntry{
		ID:             "e-1",
		OrderID:        "ord-1",
		ProviderID:     "prov-1",
		CustomerID:     "cust-1",
		Date:           "2026-08-20",
		StartTime:      "09:00",
		EndTime:        "12:30",
		Hours:          3.5,
		Description:    "extra cabling",
		Category:       domain.CategoryAdditional,
		TravelMinutes:  20,
		TravelCost:     700,
		BillableAmount: 16450,
		Status:         domain.EntryStatusLogged,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expected  error
	}{
		{
			name: "Saved and totals recalculated",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO time_entries")).
						WithArgs("e-1", "ord-1", "prov-1", "cust-1", "2026-08-20", "09:00", "12:30",
							3.5, "extra cabling", "additional", false, 0, 20, int64(700), int64(16450), "logged").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", int64(3)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Version conflict on totals",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO time_entries")).
						WithArgs("e-1", "ord-1", "prov-1", "cust-1", "2026-08-20", "09:00", "12:30",
							3.5, "extra cabling", "additional", false, 0, 20, int64(700), int64(16450), "logged").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", int64(3)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			expected: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO time_entries")).
						WithArgs("e-1", "ord-1", "prov-1", "cust-1", "2026-08-20", "09:00", "12:30",
							3.5, "extra cabling", "additional", false, 0, 20, int64(700), int64(16450), "logged").
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expected: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), entry, 3)
			if tt.expected != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)

	entry := &domain.TimeEntry{
		ID:             "e-1",
		OrderID:        "ord-1",
		Date:           "2026-08-21",
		StartTime:      "10:00",
		EndTime:        "13:00",
		Hours:          3.0,
		Description:    "rework",
		TravelCost:     500,
		BillableAmount: 14000,
	}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE time_entries")).
			WithArgs("e-1", "2026-08-21", "10:00", "13:00", 3.0, "rework", 0, 0, int64(500), int64(14000)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
			WithArgs("ord-1", int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return fn(ctx)
	})

	err := repo.Update(context.Background(), entry, 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expected  error
	}{
		{
			name: "Deleted and totals recalculated",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("DELETE FROM time_entries")).
						WithArgs("e-1").
						WillReturnResult(pgxmock.NewResult("DELETE", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", int64(3)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Version conflict on totals",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("DELETE FROM time_entries")).
						WithArgs("e-1").
						WillReturnResult(pgxmock.NewResult("DELETE", 1))
					mock.ExpectExec(regexp.QuoteMeta("UPDATE order_time_tracking")).
						WithArgs("ord-1", int64(3)).
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
			err := repo.Delete(context.Background(), "e-1", "ord-1", 3)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

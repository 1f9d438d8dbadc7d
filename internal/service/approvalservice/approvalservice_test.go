package approvalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskvio/timetrack/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockTrackingRepo, *MockEntryRepo, *MockApprovalRepo) {
	ctrl := gomock.NewController(t)
	trackingRepo := NewMockTrackingRepo(ctrl)
	entryRepo := NewMockEntryRepo(ctrl)
	approvalRepo := NewMockApprovalRepo(ctrl)
	service := New(trackingRepo, entryRepo, approvalRepo)
	defer ctrl.Finish()
	return service, trackingRepo, entryRepo, approvalRepo
}

func tracking() *domain.OrderTimeTracking {
	return &domain.OrderTimeTracking{
		OrderID:    "ord-1",
		ProviderID: "prov-1",
		CustomerID: "cust-1",
		HourlyRate: 4500,
		Status:     domain.TrackingStatusActive,
		Version:    4,
	}
}

func TestSubmitForApproval(t *testing.T) {
	service, trackingRepo, entryRepo, approvalRepo := NewMock(t)

	tests := []struct {
		name          string
		entryIDs      []string
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Empty entry set",
			entryIDs:      nil,
			expectedError: ErrInvalidInput,
		},
		{
			name:     "Another provider's order",
			entryIDs: []string{"e-1"},
			prepareMock: func() {
				tr := tracking()
				tr.ProviderID = "prov-2"
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tr, nil)
			},
			expectedError: ErrNotAllowed,
		},
		{
			name:     "Entry from a different order",
			entryIDs: []string{"e-1"},
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				entryRepo.EXPECT().FindByIDs(gomock.Any(), []string{"e-1"}).
					Return([]domain.TimeEntry{{ID: "e-1", OrderID: "ord-9", Status: domain.EntryStatusLogged}}, nil)
			},
			expectedError: ErrInvalidInput,
		},
		{
			name:     "Entry not in logged state",
			entryIDs: []string{"e-1"},
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				entryRepo.EXPECT().FindByIDs(gomock.Any(), []string{"e-1"}).
					Return([]domain.TimeEntry{{ID: "e-1", OrderID: "ord-1", Status: domain.EntryStatusSubmitted}}, nil)
			},
			expectedError: ErrInvalidInput,
		},
		{
			name:     "Unknown entry id rejects the whole batch",
			entryIDs: []string{"e-1", "e-404"},
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				entryRepo.EXPECT().FindByIDs(gomock.Any(), []string{"e-1", "e-404"}).
					Return([]domain.TimeEntry{{ID: "e-1", OrderID: "ord-1", Status: domain.EntryStatusLogged}}, nil)
			},
			expectedError: ErrNoValidEntries,
		},
		{
			name:     "Request created with totals",
			entryIDs: []string{"e-1", "e-2"},
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				entryRepo.EXPECT().FindByIDs(gomock.Any(), []string{"e-1", "e-2"}).
					Return([]domain.TimeEntry{
						{ID: "e-1", OrderID: "ord-1", Status: domain.EntryStatusLogged, Hours: 2, Category: domain.CategoryAdditional, BillableAmount: 9000},
						{ID: "e-2", OrderID: "ord-1", Status: domain.EntryStatusLogged, Hours: 1.5, Category: domain.CategoryOriginal},
					}, nil)
				approvalRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), int64(4)).
					DoAndReturn(func(_ context.Context, req *domain.ApprovalRequest, _ int64) error {
						assert.Equal(t, domain.ApprovalStatusPending, req.Status)
						assert.Equal(t, 3.5, req.TotalHours)
						assert.Equal(t, int64(9000), req.TotalAmount)
						assert.False(t, req.CustomerInitiated)
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			requestID, err := service.SubmitForApproval(context.Background(), "ord-1", "prov-1", tt.entryIDs, "please review")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, requestID)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, requestID)
			}
		})
	}
}

func TestCustomerInitiateApproval(t *testing.T) {
	service, trackingRepo, entryRepo, approvalRepo := NewMock(t)

	tests := []struct {
		name          string
		customerID    string
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Another customer",
			customerID: "cust-2",
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
			},
			expectedError: ErrNotAllowed,
		},
		{
			name:       "Only original entries are not eligible",
			customerID: "cust-1",
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				entryRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").
					Return([]domain.TimeEntry{
						{ID: "e-1", Status: domain.EntryStatusLogged, Category: domain.CategoryOriginal},
						{ID: "e-2", Status: domain.EntryStatusSubmitted, Category: domain.CategoryAdditional},
					}, nil)
			},
			expectedError: ErrNothingToSubmit,
		},
		{
			name:       "Request flagged customer-initiated",
			customerID: "cust-1",
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				entryRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").
					Return([]domain.TimeEntry{
						{ID: "e-1", Status: domain.EntryStatusLogged, Category: domain.CategoryAdditional, Hours: 2, BillableAmount: 9000},
					}, nil)
				approvalRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), int64(4)).
					DoAndReturn(func(_ context.Context, req *domain.ApprovalRequest, _ int64) error {
						assert.True(t, req.CustomerInitiated)
						assert.Equal(t, []string{"e-1"}, req.EntryIDs)
						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			requestID, err := service.CustomerInitiateApproval(context.Background(), "ord-1", tt.customerID, "approving overtime")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, requestID)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, requestID)
			}
		})
	}
}

func TestProcessCustomerApproval(t *testing.T) {
	service, trackingRepo, entryRepo, approvalRepo := NewMock(t)
	_ = entryRepo

	pendingRequest := func() *domain.ApprovalRequest {
		return &domain.ApprovalRequest{
			ID:       "req-1",
			OrderID:  "ord-1",
			EntryIDs: []string{"e-1", "e-2", "e-3"},
			Status:   domain.ApprovalStatusPending,
		}
	}

	tests := []struct {
		name          string
		decision      string
		approvedIDs   []string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Request already resolved",
			decision: domain.ApprovalStatusApproved,
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				req := pendingRequest()
				req.Status = domain.ApprovalStatusApproved
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(req, nil)
			},
			expectedError: ErrAlreadyResolved,
		},
		{
			name:     "Unknown decision",
			decision: "maybe",
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
			},
			expectedError: ErrInvalidInput,
		},
		{
			name:     "Full approval commits every entry",
			decision: domain.ApprovalStatusApproved,
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
				approvalRepo.EXPECT().CommitDecision(gomock.Any(), gomock.Any(),
					[]string{"e-1", "e-2", "e-3"}, nil, domain.TrackingStatusFullyApproved, int64(4)).Return(nil)
			},
		},
		{
			name:     "Rejection returns order to active",
			decision: domain.ApprovalStatusRejected,
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
				approvalRepo.EXPECT().CommitDecision(gomock.Any(), gomock.Any(),
					nil, []string{"e-1", "e-2", "e-3"}, domain.TrackingStatusActive, int64(4)).Return(nil)
			},
		},
		{
			name:        "Partial approval splits the request",
			decision:    domain.ApprovalStatusPartiallyApproved,
			approvedIDs: []string{"e-1", "e-3"},
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
				approvalRepo.EXPECT().CommitDecision(gomock.Any(), gomock.Any(),
					[]string{"e-1", "e-3"}, []string{"e-2"}, domain.TrackingStatusPartiallyApproved, int64(4)).Return(nil)
			},
		},
		{
			name:        "Partial approval with empty subset",
			decision:    domain.ApprovalStatusPartiallyApproved,
			approvedIDs: nil,
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
			},
			expectedError: ErrInvalidInput,
		},
		{
			name:        "Partial approval with a foreign entry id",
			decision:    domain.ApprovalStatusPartiallyApproved,
			approvedIDs: []string{"e-9"},
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
			},
			expectedError: ErrInvalidInput,
		},
		{
			name:     "Commit failure is surfaced",
			decision: domain.ApprovalStatusApproved,
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
				approvalRepo.EXPECT().CommitDecision(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.ProcessCustomerApproval(context.Background(), "ord-1", "req-1", "cust-1", tt.decision, tt.approvedIDs, "feedback")
			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrAlreadyResolved) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApproveCompleteOrder(t *testing.T) {
	service, trackingRepo, entryRepo, approvalRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Tracking not found",
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Rejected entries are left untouched",
			prepareMock: func() {
				trackingRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").Return(tracking(), nil)
				approvalRepo.EXPECT().FindPendingByOrderID(gomock.Any(), "ord-1").
					Return([]domain.ApprovalRequest{{ID: "req-1"}}, nil)
				entryRepo.EXPECT().FindByOrderID(gomock.Any(), "ord-1").
					Return([]domain.TimeEntry{
						{ID: "e-1", Status: domain.EntryStatusSubmitted},
						{ID: "e-2", Status: domain.EntryStatusCustomerRejected},
						{ID: "e-3", Status: domain.EntryStatusSubmitted},
					}, nil)
				approvalRepo.EXPECT().CommitBulkApproval(gomock.Any(), "ord-1",
					[]string{"req-1"}, []string{"e-1", "e-3"}, "thanks", int64(4)).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.ApproveCompleteOrder(context.Background(), "ord-1", "cust-1", "thanks")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

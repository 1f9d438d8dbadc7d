package payment

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskvio/timetrack/internal/config"
	"github.com/taskvio/timetrack/internal/service/escrowservice"
	"github.com/taskvio/timetrack/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *clients.MockHTTPClientI) {
	cfg := &config.Config{EscrowAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, client)
	return service, client
}

func authorizeParams() escrowservice.AuthorizeParams {
	return escrowservice.AuthorizeParams{
		OrderID:        "ord-1",
		CustomerID:     "cust-1",
		ProviderID:     "prov-1",
		Amount:         20000,
		Currency:       "EUR",
		IdempotencyKey: "authorize:abc",
	}
}

func TestService_Authorize(t *testing.T) {
	service, client := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expected    string
		expectErr   bool
	}{
		{
			name: "Hold authorized",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/escrow/authorize", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ string, headers http.Header, _ []byte) (int, []byte, error) {
						assert.Equal(t, "authorize:abc", headers.Get("Idempotency-Key"))
						return http.StatusCreated, []byte(`{"escrow_id":"esc-1","status":"authorized"}`), nil
					})
			},
			expected: "esc-1",
		},
		{
			name: "Response without escrow id",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/escrow/authorize", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"status":"authorized"}`), nil)
			},
			expectErr: true,
		},
		{
			name: "Client error is retried then surfaced",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/escrow/authorize", gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("connection refused")).
					Times(3)
			},
			expectErr: true,
		},
		{
			name: "Unexpected status is not retried",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/escrow/authorize", gomock.Any(), gomock.Any()).
					Return(http.StatusUnprocessableEntity, nil, nil).
					Times(1)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			escrowID, err := service.Authorize(context.Background(), authorizeParams())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Empty(t, escrowID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, escrowID)
			}
		})
	}
}

func TestService_Release(t *testing.T) {
	service, client := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Released",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/escrow/esc-1/release", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ string, headers http.Header, _ []byte) (int, []byte, error) {
						assert.Equal(t, "release:esc-1", headers.Get("Idempotency-Key"))
						return http.StatusOK, []byte(`{}`), nil
					})
			},
		},
		{
			name: "Throttled then released",
			prepareMock: func() {
				gomock.InOrder(
					client.EXPECT().
						Post("http://localhost:8081/api/escrow/esc-1/release", gomock.Any(), gomock.Any()).
						Return(http.StatusTooManyRequests, nil, nil),
					client.EXPECT().
						Post("http://localhost:8081/api/escrow/esc-1/release", gomock.Any(), gomock.Any()).
						Return(http.StatusOK, []byte(`{}`), nil),
				)
			},
		},
		{
			name: "Unexpected status",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/escrow/esc-1/release", gomock.Any(), gomock.Any()).
					Return(http.StatusConflict, nil, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Release(context.Background(), "esc-1", "release:esc-1")
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_AuthorizeCancelledContext(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Authorize(ctx, authorizeParams())
	assert.ErrorIs(t, err, context.Canceled)
}

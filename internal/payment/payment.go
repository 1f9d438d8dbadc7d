package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/taskvio/timetrack/internal/config"
	"github.com/taskvio/timetrack/internal/service/escrowservice"
	"github.com/taskvio/timetrack/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var ErrUnexpectedStatus = errors.New("unexpected status code from escrow service")

type authorizeRequest struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	ProviderID string `json:"provider_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

type authorizeResponse struct {
	EscrowID string `json:"escrow_id"`
	Status   string `json:"status"`
}

// Service talks to the external escrow/payment provider. Every call carries
// an idempotency key so retries never double-charge or double-release.
type Service struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:    cfg.EscrowAddress,
		client: client,
	}
}

func (s *Service) Authorize(ctx context.Context, p escrowservice.AuthorizeParams) (string, error) {
	body, err := json.Marshal(authorizeRequest{
		OrderID:    p.OrderID,
		CustomerID: p.CustomerID,
		ProviderID: p.ProviderID,
		Amount:     p.Amount,
		Currency:   p.Currency,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal authorize request: %w", err)
	}

	respBody, err := s.post(ctx, s.url+"/api/escrow/authorize", p.IdempotencyKey, body)
	if err != nil {
		return "", err
	}

	var resp authorizeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse authorize response: %w", err)
	}
	if resp.EscrowID == "" {
		return "", fmt.Errorf("authorize response carries no escrow id")
	}
	return resp.EscrowID, nil
}

func (s *Service) Release(ctx context.Context, escrowID, idempotencyKey string) error {
	_, err := s.post(ctx, s.url+"/api/escrow/"+escrowID+"/release", idempotencyKey, nil)
	return err
}

func (s *Service) post(ctx context.Context, url, idempotencyKey string, body []byte) ([]byte, error) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Idempotency-Key", idempotencyKey)

	var statusCode int
	var respBody []byte
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			statusCode, respBody, err = s.client.Post(url, headers, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, fmt.Errorf("escrow call failed after %d retries: %w", maxRetries, err)
			}

			switch statusCode {
			case http.StatusOK, http.StatusCreated:
				return respBody, nil
			case http.StatusTooManyRequests, http.StatusServiceUnavailable:
				zap.L().Warn("escrow service throttled, retrying",
					zap.Int("status", statusCode), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, fmt.Errorf("escrow service unavailable after %d retries", maxRetries)
			default:
				zap.L().Error("unexpected escrow service response",
					zap.Int("status", statusCode), zap.String("url", url))
				return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
			}
		}
	}
	return nil, fmt.Errorf("escrow call failed after %d retries", maxRetries)
}

package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskvio/timetrack/internal/config"
	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/pkg/clients"
)

type rateResponse struct {
	ProviderID string `json:"provider_id"`
	HourlyRate int64  `json:"hourly_rate"` // minor units
}

// Service resolves a provider's hourly rate from the profile service.
type Service struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:    cfg.RatesAddress,
		client: client,
	}
}

// Resolve returns the provider's current hourly rate in minor units, or
// domain.ErrNotFound when the provider has none configured.
func (s *Service) Resolve(ctx context.Context, providerID string) (int64, error) {
	url := s.url + "/api/providers/" + providerID + "/rate"

	statusCode, respBody, _, err := s.client.Get(url, nil)
	if err != nil {
		zap.L().Error("rate lookup failed", zap.Error(err))
		return 0, fmt.Errorf("rate lookup failed: %w", err)
	}

	switch statusCode {
	case http.StatusOK:
		var resp rateResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return 0, fmt.Errorf("failed to parse rate response: %w", err)
		}
		if resp.HourlyRate <= 0 {
			return 0, domain.ErrNotFound
		}
		return resp.HourlyRate, nil
	case http.StatusNotFound, http.StatusNoContent:
		return 0, domain.ErrNotFound
	default:
		zap.L().Error("unexpected rate service response", zap.Int("status", statusCode))
		return 0, fmt.Errorf("unexpected status code from rate service: %d", statusCode)
	}
}

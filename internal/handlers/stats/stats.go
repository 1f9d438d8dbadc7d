package stats

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/dto"
	"github.com/taskvio/timetrack/internal/service/statsservice"
	"github.com/taskvio/timetrack/pkg/utils"
)

type Service interface {
	ProviderStats(ctx context.Context, providerID string) (*domain.ProviderStats, error)
	CustomerStats(ctx context.Context, customerID string) (*domain.CustomerStats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// ProviderStats godoc
//
//	@Summary		Provider dashboard stats
//	@Description	Active orders, logged and approved hours, and the pending payout for a provider.
//	@Tags			Stats
//	@Produce		json
//	@Param			providerID	path	string	true	"Provider ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProviderStatsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid provider id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/providers/{providerID}/stats [get]
func (h *StatsHandler) ProviderStats(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")

	stats, err := h.statsService.ProviderStats(r.Context(), providerID)
	if err != nil {
		if errors.Is(err, statsservice.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid provider id")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProviderStatsResponseDTO{
		ActiveOrders:       stats.ActiveOrders,
		TotalLoggedHours:   stats.TotalLoggedHours,
		TotalApprovedHours: stats.TotalApprovedHours,
		PendingPayout:      stats.PendingPayout,
	})
}

// CustomerStats godoc
//
//	@Summary		Customer dashboard stats
//	@Description	Active orders, logged hours, pending approval requests, and the amount held in escrow for a customer.
//	@Tags			Stats
//	@Produce		json
//	@Param			customerID	path	string	true	"Customer ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CustomerStatsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid customer id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/customers/{customerID}/stats [get]
func (h *StatsHandler) CustomerStats(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	stats, err := h.statsService.CustomerStats(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, statsservice.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CustomerStatsResponseDTO{
		ActiveOrders:     stats.ActiveOrders,
		TotalLoggedHours: stats.TotalLoggedHours,
		PendingApprovals: stats.PendingApprovals,
		HeldAmount:       stats.HeldAmount,
	})
}

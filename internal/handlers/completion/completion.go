package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/dto"
	"github.com/taskvio/timetrack/internal/service/completionservice"
	"github.com/taskvio/timetrack/internal/service/escrowservice"
	"github.com/taskvio/timetrack/pkg/auth"
	"github.com/taskvio/timetrack/pkg/utils"
)

type Service interface {
	MarkComplete(ctx context.Context, orderID, party, actorID string) (*domain.OrderTimeTracking, error)
}

type CompletionHandler struct {
	completionService Service
}

func New(completionService Service) *CompletionHandler {
	return &CompletionHandler{
		completionService: completionService,
	}
}

// MarkComplete godoc
//
//	@Summary		Mark the order complete for one party
//	@Description	Record a party's completion acknowledgement. When the second party confirms, the escrow release (or order close) is triggered.
//	@Tags			Completion
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string						true	"Order ID"
//	@Param			body	body	dto.MarkCompleteRequestDTO	true	"Acting party"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TrackingResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not a party to this order"
//	@Failure		404	{object}	utils.Response	"Order tracking not found"
//	@Failure		502	{object}	utils.Response	"Payment service failure"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/completion [post]
func (h *CompletionHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")

	var req dto.MarkCompleteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	tracking, err := h.completionService.MarkComplete(r.Context(), orderID, req.Party, userID)
	if err != nil {
		switch {
		case errors.Is(err, completionservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown party")
		case errors.Is(err, completionservice.ErrNotAllowed):
			utils.RespondWithError(w, http.StatusForbidden, "Not a party to this order")
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order tracking not found")
		case errors.Is(err, escrowservice.ErrExternalService):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment service failure")
		case errors.Is(err, domain.ErrConflict):
			utils.RespondWithError(w, http.StatusConflict, "Tracking changed concurrently, retry")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TrackingResponseDTO{
		OrderID:                tracking.OrderID,
		ProviderID:             tracking.ProviderID,
		CustomerID:             tracking.CustomerID,
		OriginalPlannedHours:   tracking.OriginalPlannedHours,
		TotalLoggedHours:       tracking.TotalLoggedHours,
		TotalApprovedHours:     tracking.TotalApprovedHours,
		TotalBilledHours:       tracking.TotalBilledHours,
		HourlyRate:             tracking.HourlyRate,
		Status:                 tracking.Status,
		CustomerFeedback:       tracking.CustomerFeedback,
		EscrowID:               tracking.EscrowID,
		EscrowStatus:           tracking.EscrowStatus,
		CustomerComplete:       tracking.CustomerComplete,
		ProviderComplete:       tracking.ProviderComplete,
		EscrowReleaseInitiated: tracking.EscrowReleaseInitiated,
		CustomerCompletedAt:    tracking.CustomerCompletedAt,
		ProviderCompletedAt:    tracking.ProviderCompletedAt,
	})
}

package timetrack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/dto"
	"github.com/taskvio/timetrack/internal/service/ledgerservice"
	"github.com/taskvio/timetrack/pkg/auth"
	"github.com/taskvio/timetrack/pkg/utils"
)

type Service interface {
	InitializeTracking(ctx context.Context, p ledgerservice.InitializeParams) error
	LogTimeEntry(ctx context.Context, p ledgerservice.LogEntryParams) (string, error)
	UpdateTimeEntry(ctx context.Context, orderID, entryID, providerID string, upd ledgerservice.EntryUpdate) error
	DeleteTimeEntry(ctx context.Context, orderID, entryID, providerID string) error
	GetEntriesForOrder(ctx context.Context, orderID string) ([]domain.TimeEntry, error)
	GetTracking(ctx context.Context, orderID string) (*domain.OrderTimeTracking, error)
}

type TimetrackHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *TimetrackHandler {
	return &TimetrackHandler{
		ledgerService: ledgerService,
	}
}

// InitTracking godoc
//
//	@Summary		Initialize time tracking for an order
//	@Description	Create the per-order tracking record with an explicit hourly rate snapshot.
//	@Tags			TimeTracking
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string						true	"Order ID"
//	@Param			body	body	dto.InitTrackingRequestDTO	true	"Tracking parameters"
//	@Security		BearerAuth
//	@Success		201	{object}	utils.Response	"Time tracking initialized"
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Tracking already initialized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time [post]
func (h *TimetrackHandler) InitTracking(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req dto.InitTrackingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.ledgerService.InitializeTracking(r.Context(), ledgerservice.InitializeParams{
		OrderID:              orderID,
		ProviderID:           req.ProviderID,
		CustomerID:           req.CustomerID,
		OriginalPlannedHours: req.OriginalPlannedHours,
		HourlyRate:           req.HourlyRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrStatusConflict):
			utils.RespondWithError(w, http.StatusConflict, "Time tracking already initialized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "Time tracking initialized"})
}

// LogEntry godoc
//
//	@Summary		Log a time entry
//	@Description	Append a worked interval to the order's time ledger. Initializes tracking lazily when needed.
//	@Tags			TimeTracking
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string					true	"Order ID"
//	@Param			body	body	dto.LogEntryRequestDTO	true	"Time entry"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.LogEntryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's provider"
//	@Failure		422	{object}	utils.Response	"Hourly rate unresolved"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/entries [post]
func (h *TimetrackHandler) LogEntry(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")

	var req dto.LogEntryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	entryID, err := h.ledgerService.LogTimeEntry(r.Context(), ledgerservice.LogEntryParams{
		OrderID:       orderID,
		ProviderID:    userID,
		CustomerID:    req.CustomerID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Hours:         req.Hours,
		Description:   req.Description,
		Category:      req.Category,
		IsBreakTime:   req.IsBreakTime,
		BreakMinutes:  req.BreakMinutes,
		TravelMinutes: req.TravelMinutes,
		TravelCost:    req.TravelCost,
		RateOverride:  req.RateOverride,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrNotAllowed):
			utils.RespondWithError(w, http.StatusForbidden, "Not the order's provider")
		case errors.Is(err, ledgerservice.ErrRateUnresolved):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Hourly rate unresolved")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.LogEntryResponseDTO{EntryID: entryID})
}

// GetEntries godoc
//
//	@Summary		Get time entries for an order
//	@Description	Retrieve the order's time ledger, newest work first.
//	@Tags			TimeTracking
//	@Produce		json
//	@Param			orderID	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TimeEntryResponseDTO
//	@Failure		204	{object}	utils.Response	"No entries logged"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/entries [get]
func (h *TimetrackHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	entries, err := h.ledgerService.GetEntriesForOrder(r.Context(), orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No entries logged")
		return
	}

	var response []dto.TimeEntryResponseDTO
	for _, entry := range entries {
		response = append(response, dto.TimeEntryResponseDTO{
			ID:             entry.ID,
			Date:           entry.Date,
			StartTime:      entry.StartTime,
			EndTime:        entry.EndTime,
			Hours:          entry.Hours,
			Description:    entry.Description,
			Category:       entry.Category,
			IsBreakTime:    entry.IsBreakTime,
			BreakMinutes:   entry.BreakMinutes,
			TravelMinutes:  entry.TravelMinutes,
			TravelCost:     entry.TravelCost,
			BillableAmount: entry.BillableAmount,
			Status:         entry.Status,
			EscrowID:       entry.EscrowID,
			CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateEntry godoc
//
//	@Summary		Update a time entry
//	@Description	Edit a still-logged entry. Submitted and settled entries are immutable.
//	@Tags			TimeTracking
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string						true	"Order ID"
//	@Param			entryID	path	string						true	"Entry ID"
//	@Param			body	body	dto.UpdateEntryRequestDTO	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Entry updated"
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's provider"
//	@Failure		404	{object}	utils.Response	"Entry not found"
//	@Failure		409	{object}	utils.Response	"Entry is not editable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/entries/{entryID} [patch]
func (h *TimetrackHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")
	entryID := chi.URLParam(r, "entryID")

	var req dto.UpdateEntryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.ledgerService.UpdateTimeEntry(r.Context(), orderID, entryID, userID, ledgerservice.EntryUpdate{
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Hours:         req.Hours,
		Description:   req.Description,
		BreakMinutes:  req.BreakMinutes,
		TravelMinutes: req.TravelMinutes,
		TravelCost:    req.TravelCost,
	})
	if err != nil {
		h.respondEntryError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Entry updated"})
}

// DeleteEntry godoc
//
//	@Summary		Delete a time entry
//	@Description	Remove a still-logged entry from the ledger.
//	@Tags			TimeTracking
//	@Produce		json
//	@Param			orderID	path	string	true	"Order ID"
//	@Param			entryID	path	string	true	"Entry ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Entry deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's provider"
//	@Failure		404	{object}	utils.Response	"Entry not found"
//	@Failure		409	{object}	utils.Response	"Entry is not editable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/entries/{entryID} [delete]
func (h *TimetrackHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")
	entryID := chi.URLParam(r, "entryID")

	if err := h.ledgerService.DeleteTimeEntry(r.Context(), orderID, entryID, userID); err != nil {
		h.respondEntryError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Entry deleted"})
}

// GetTracking godoc
//
//	@Summary		Get time tracking state for an order
//	@Description	Retrieve the order-level tracking aggregate with hour totals and completion flags.
//	@Tags			TimeTracking
//	@Produce		json
//	@Param			orderID	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TrackingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Tracking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time [get]
func (h *TimetrackHandler) GetTracking(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	tracking, err := h.ledgerService.GetTracking(r.Context(), orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if tracking == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tracking not found")
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

func (h *TimetrackHandler) respondEntryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, "Not the order's provider")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Entry not found")
	case errors.Is(err, ledgerservice.ErrStatusConflict), errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Entry is not editable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

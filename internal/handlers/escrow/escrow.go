package escrow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/dto"
	"github.com/taskvio/timetrack/internal/service/escrowservice"
	"github.com/taskvio/timetrack/pkg/auth"
	"github.com/taskvio/timetrack/pkg/utils"
)

type Service interface {
	CreateEscrow(ctx context.Context, orderID, providerID string) (*domain.Escrow, error)
	MarkEscrowPaid(ctx context.Context, orderID, escrowID string) error
	ReleaseEscrow(ctx context.Context, orderID string) error
	GetEscrow(ctx context.Context, orderID string) (*domain.Escrow, error)
}

type EscrowHandler struct {
	escrowService Service
}

func New(escrowService Service) *EscrowHandler {
	return &EscrowHandler{
		escrowService: escrowService,
	}
}

// Create godoc
//
//	@Summary		Create an escrow for approved entries
//	@Description	Authorize a payment hold covering the customer-approved additional entries not yet under escrow.
//	@Tags			Escrow
//	@Produce		json
//	@Param			orderID	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's provider"
//	@Failure		404	{object}	utils.Response	"Order tracking not found"
//	@Failure		422	{object}	utils.Response	"No approved billable entries"
//	@Failure		502	{object}	utils.Response	"Payment service failure"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/escrow [post]
func (h *EscrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")

	escrow, err := h.escrowService.CreateEscrow(r.Context(), orderID, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(escrow))
}

// MarkPaid godoc
//
//	@Summary		Mark an escrow as paid
//	@Description	Record that the payment provider confirmed the hold. Covered entries move to billed.
//	@Tags			Escrow
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string					true	"Order ID"
//	@Param			body	body	dto.MarkPaidRequestDTO	true	"Escrow id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Escrow marked paid"
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not awaiting payment"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/escrow/paid [post]
func (h *EscrowHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req dto.MarkPaidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.EscrowID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Escrow id is required")
		return
	}

	if err := h.escrowService.MarkEscrowPaid(r.Context(), orderID, req.EscrowID); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Escrow marked paid"})
}

// Release godoc
//
//	@Summary		Release the order's escrow
//	@Description	Pay the held amount out to the provider minus the platform fee. Releasing twice is a reported no-op.
//	@Tags			Escrow
//	@Produce		json
//	@Param			orderID	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Escrow released"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not held"
//	@Failure		502	{object}	utils.Response	"Payment service failure"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/escrow/release [post]
func (h *EscrowHandler) Release(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	err := h.escrowService.ReleaseEscrow(r.Context(), orderID)
	if errors.Is(err, escrowservice.ErrAlreadyReleased) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Escrow already released"})
		return
	}
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Escrow released"})
}

// Get godoc
//
//	@Summary		Get the order's active escrow
//	@Description	Retrieve the authorized or held escrow for the order.
//	@Tags			Escrow
//	@Produce		json
//	@Param			orderID	path	string	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No active escrow"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/escrow [get]
func (h *EscrowHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	escrow, err := h.escrowService.GetEscrow(r.Context(), orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if escrow == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No active escrow")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(escrow))
}

func toResponseDTO(escrow *domain.Escrow) dto.EscrowResponseDTO {
	return dto.EscrowResponseDTO{
		ID:                escrow.ID,
		OrderID:           escrow.OrderID,
		Amount:            escrow.Amount,
		Currency:          escrow.Currency,
		PlatformFeeAmount: escrow.PlatformFeeAmount,
		ProviderAmount:    escrow.ProviderAmount,
		Status:            escrow.Status,
		EntryIDs:          escrow.EntryIDs,
		CreatedAt:         escrow.CreatedAt,
		ReleasedAt:        escrow.ReleasedAt,
	}
}

func (h *EscrowHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, escrowservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized for this order")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, escrowservice.ErrNothingApproved):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "No approved billable entries")
	case errors.Is(err, escrowservice.ErrStatusConflict), errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Escrow is not in the required state")
	case errors.Is(err, escrowservice.ErrExternalService):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment service failure")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

package approval

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskvio/timetrack/internal/domain"
	"github.com/taskvio/timetrack/internal/dto"
	"github.com/taskvio/timetrack/internal/service/approvalservice"
	"github.com/taskvio/timetrack/pkg/auth"
	"github.com/taskvio/timetrack/pkg/utils"
)

type Service interface {
	SubmitForApproval(ctx context.Context, orderID, providerID string, entryIDs []string, providerMessage string) (string, error)
	CustomerInitiateApproval(ctx context.Context, orderID, customerID, message string) (string, error)
	ProcessCustomerApproval(ctx context.Context, orderID, requestID, customerID, decision string, approvedEntryIDs []string, feedback string) error
	ApproveCompleteOrder(ctx context.Context, orderID, customerID, feedback string) error
}

type ApprovalHandler struct {
	approvalService Service
}

func New(approvalService Service) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: approvalService,
	}
}

// Submit godoc
//
//	@Summary		Submit entries for customer approval
//	@Description	Batch logged entries into a pending approval request. All referenced entries must be in logged state.
//	@Tags			Approvals
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string							true	"Order ID"
//	@Param			body	body	dto.SubmitApprovalRequestDTO	true	"Entry ids and optional message"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SubmitApprovalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's provider"
//	@Failure		404	{object}	utils.Response	"Order tracking not found"
//	@Failure		422	{object}	utils.Response	"No valid entries to submit"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/approvals [post]
func (h *ApprovalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")

	var req dto.SubmitApprovalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requestID, err := h.approvalService.SubmitForApproval(r.Context(), orderID, userID, req.EntryIDs, req.Message)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitApprovalResponseDTO{RequestID: requestID})
}

// CustomerInitiate godoc
//
//	@Summary		Customer-initiated approval request
//	@Description	Pull the provider's still-logged additional entries into an approval request on their behalf.
//	@Tags			Approvals
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string							true	"Order ID"
//	@Param			body	body	dto.CustomerInitiateRequestDTO	true	"Optional message"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SubmitApprovalResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's customer"
//	@Failure		404	{object}	utils.Response	"Order tracking not found"
//	@Failure		422	{object}	utils.Response	"No eligible entries"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/approvals/customer [post]
func (h *ApprovalHandler) CustomerInitiate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")

	var req dto.CustomerInitiateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requestID, err := h.approvalService.CustomerInitiateApproval(r.Context(), orderID, userID, req.Message)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.SubmitApprovalResponseDTO{RequestID: requestID})
}

// Decide godoc
//
//	@Summary		Decide on an approval request
//	@Description	Apply the customer's approve, reject, or partial-approve decision to a pending request.
//	@Tags			Approvals
//	@Accept			json
//	@Produce		json
//	@Param			orderID		path	string							true	"Order ID"
//	@Param			requestID	path	string							true	"Approval request ID"
//	@Param			body		body	dto.ApprovalDecisionRequestDTO	true	"Decision"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Decision recorded"
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's customer"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Request already resolved"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/approvals/{requestID}/decision [post]
func (h *ApprovalHandler) Decide(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")
	requestID := chi.URLParam(r, "requestID")

	var req dto.ApprovalDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := h.approvalService.ProcessCustomerApproval(r.Context(), orderID, requestID, userID, req.Decision, req.ApprovedEntryIDs, req.Feedback)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Decision recorded"})
}

// ApproveAll godoc
//
//	@Summary		Approve the complete order
//	@Description	Bulk-approve every submitted entry and pending request and close the order. Rejected entries are left untouched.
//	@Tags			Approvals
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path	string							true	"Order ID"
//	@Param			body	body	dto.ApproveCompleteRequestDTO	true	"Optional feedback"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Order approved"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order's customer"
//	@Failure		404	{object}	utils.Response	"Order tracking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/time/approve-all [post]
func (h *ApprovalHandler) ApproveAll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	orderID := chi.URLParam(r, "orderID")

	var req dto.ApproveCompleteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.approvalService.ApproveCompleteOrder(r.Context(), orderID, userID, req.Feedback); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order approved"})
}

func (h *ApprovalHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, approvalservice.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, approvalservice.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized for this order")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, approvalservice.ErrAlreadyResolved), errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Request already resolved")
	case errors.Is(err, approvalservice.ErrNoValidEntries), errors.Is(err, approvalservice.ErrNothingToSubmit):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

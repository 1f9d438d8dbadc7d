package dto

import "time"

type InitTrackingRequestDTO struct {
	ProviderID           string  `json:"provider_id" example:"prov-1001"`
	CustomerID           string  `json:"customer_id" example:"cust-2002"`
	OriginalPlannedHours float64 `json:"original_planned_hours" example:"8"`
	HourlyRate           int64   `json:"hourly_rate" example:"4500"`
}

type LogEntryRequestDTO struct {
	CustomerID    string  `json:"customer_id,omitempty" example:"cust-2002"`
	Date          string  `json:"date" example:"2026-03-14"`
	StartTime     string  `json:"start_time" example:"09:00"`
	EndTime       string  `json:"end_time" example:"12:30"`
	Hours         float64 `json:"hours" example:"3.5"`
	Description   string  `json:"description" example:"Deep cleaning, kitchen and bathrooms"`
	Category      string  `json:"category" example:"additional"`
	IsBreakTime   bool    `json:"is_break_time,omitempty"`
	BreakMinutes  int     `json:"break_minutes,omitempty" example:"15"`
	TravelMinutes int     `json:"travel_minutes,omitempty" example:"20"`
	TravelCost    int64   `json:"travel_cost,omitempty" example:"700"`
	RateOverride  *int64  `json:"rate_override,omitempty" example:"4500"`
}

type LogEntryResponseDTO struct {
	EntryID string `json:"entry_id" example:"7a9e1c4d-1f2b-4c3d-9e8f-0a1b2c3d4e5f"`
}

type UpdateEntryRequestDTO struct {
	Date          *string  `json:"date,omitempty" example:"2026-03-14"`
	StartTime     *string  `json:"start_time,omitempty" example:"10:00"`
	EndTime       *string  `json:"end_time,omitempty" example:"13:00"`
	Hours         *float64 `json:"hours,omitempty" example:"3"`
	Description   *string  `json:"description,omitempty"`
	BreakMinutes  *int     `json:"break_minutes,omitempty" example:"10"`
	TravelMinutes *int     `json:"travel_minutes,omitempty" example:"25"`
	TravelCost    *int64   `json:"travel_cost,omitempty" example:"500"`
}

type TimeEntryResponseDTO struct {
	ID             string  `json:"id" example:"7a9e1c4d-1f2b-4c3d-9e8f-0a1b2c3d4e5f"`
	Date           string  `json:"date" example:"2026-03-14"`
	StartTime      string  `json:"start_time" example:"09:00"`
	EndTime        string  `json:"end_time,omitempty" example:"12:30"`
	Hours          float64 `json:"hours" example:"3.5"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category" example:"additional"`
	IsBreakTime    bool    `json:"is_break_time,omitempty"`
	BreakMinutes   int     `json:"break_minutes,omitempty" example:"15"`
	TravelMinutes  int     `json:"travel_minutes,omitempty" example:"20"`
	TravelCost     int64   `json:"travel_cost,omitempty" example:"700"`
	BillableAmount int64   `json:"billable_amount,omitempty" example:"16450"`
	Status         string  `json:"status" example:"logged"`
	EscrowID       string  `json:"escrow_id,omitempty"`
	CreatedAt      string  `json:"created_at" example:"2026-03-14T09:35:00+01:00"`
}

type TrackingResponseDTO struct {
	OrderID                string     `json:"order_id" example:"order-555"`
	ProviderID             string     `json:"provider_id" example:"prov-1001"`
	CustomerID             string     `json:"customer_id" example:"cust-2002"`
	OriginalPlannedHours   float64    `json:"original_planned_hours" example:"8"`
	TotalLoggedHours       float64    `json:"total_logged_hours" example:"11.5"`
	TotalApprovedHours     float64    `json:"total_approved_hours" example:"3.5"`
	TotalBilledHours       float64    `json:"total_billed_hours" example:"0"`
	HourlyRate             int64      `json:"hourly_rate" example:"4500"`
	Status                 string     `json:"status" example:"active"`
	CustomerFeedback       string     `json:"customer_feedback,omitempty"`
	EscrowID               string     `json:"escrow_id,omitempty"`
	EscrowStatus           string     `json:"escrow_status,omitempty" example:"held"`
	CustomerComplete       bool       `json:"customer_marked_complete"`
	ProviderComplete       bool       `json:"provider_marked_complete"`
	EscrowReleaseInitiated bool       `json:"escrow_release_initiated"`
	CustomerCompletedAt    *time.Time `json:"customer_completed_at,omitempty"`
	ProviderCompletedAt    *time.Time `json:"provider_completed_at,omitempty"`
}

type SubmitApprovalRequestDTO struct {
	EntryIDs []string `json:"entry_ids"`
	Message  string   `json:"message,omitempty" example:"Please review this week's extra hours"`
}

type SubmitApprovalResponseDTO struct {
	RequestID string `json:"request_id" example:"3c1f6b2a-9d8e-4f5a-b0c1-2d3e4f5a6b7c"`
}

type CustomerInitiateRequestDTO struct {
	Message string `json:"message,omitempty" example:"Approving the overtime we discussed"`
}

type ApprovalDecisionRequestDTO struct {
	RequestID        string   `json:"request_id" example:"3c1f6b2a-9d8e-4f5a-b0c1-2d3e4f5a6b7c"`
	Decision         string   `json:"decision" example:"partially_approved"`
	ApprovedEntryIDs []string `json:"approved_entry_ids,omitempty"`
	Feedback         string   `json:"feedback,omitempty" example:"Travel time looks too high"`
}

type ApproveCompleteRequestDTO struct {
	Feedback string `json:"feedback,omitempty" example:"All good, thanks!"`
}

type MarkCompleteRequestDTO struct {
	Party string `json:"party" example:"customer"`
}

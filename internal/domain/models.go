package domain

import "time"

// Time entry statuses. An entry is only editable while logged; every later
// status is owned by the approval or settlement flow.
const (
	EntryStatusLogged           string = "logged"
	EntryStatusSubmitted        string = "submitted"
	EntryStatusCustomerApproved string = "customer_approved"
	EntryStatusCustomerRejected string = "customer_rejected"
	EntryStatusEscrowAuthorized string = "escrow_authorized"
	EntryStatusBilled           string = "billed"
	EntryStatusReleased         string = "released"
)

// Entry categories. Only additional hours carry a billable amount;
// original hours are covered by the order price.
const (
	CategoryOriginal   string = "original"
	CategoryAdditional string = "additional"
)

// Order-level time tracking statuses.
const (
	TrackingStatusActive            string = "active"
	TrackingStatusSubmitted         string = "submitted_for_approval"
	TrackingStatusFullyApproved     string = "fully_approved"
	TrackingStatusPartiallyApproved string = "partially_approved"
	TrackingStatusCompleted         string = "completed"
)

// Approval request statuses.
const (
	ApprovalStatusPending           string = "pending"
	ApprovalStatusApproved          string = "approved"
	ApprovalStatusRejected          string = "rejected"
	ApprovalStatusPartiallyApproved string = "partially_approved"
)

// Escrow statuses: a hold is authorized with the payment provider, marked
// held once the provider confirms the charge, and released to the
// provider's account after both parties confirm completion.
const (
	EscrowStatusAuthorized string = "authorized"
	EscrowStatusHeld       string = "held"
	EscrowStatusReleased   string = "released"
)

// Completion parties.
const (
	PartyCustomer string = "customer"
	PartyProvider string = "provider"
)

type TimeEntry struct {
	ID                string     `db:"id"`
	OrderID           string     `db:"order_id"`
	ProviderID        string     `db:"provider_id"`
	CustomerID        string     `db:"customer_id"`
	Date              string     `db:"entry_date"` // YYYY-MM-DD
	StartTime         string     `db:"start_time"` // HH:MM
	EndTime           string     `db:"end_time"`   // HH:MM, may be empty
	Hours             float64    `db:"hours"`
	Description       string     `db:"description"`
	Category          string     `db:"category"`
	IsBreakTime       bool       `db:"is_break_time"`
	BreakMinutes      int        `db:"break_minutes"`
	TravelMinutes     int        `db:"travel_minutes"`
	TravelCost        int64      `db:"travel_cost"`     // minor units
	BillableAmount    int64      `db:"billable_amount"` // minor units, additional only
	Status            string     `db:"status"`
	EscrowID          string     `db:"escrow_id"`
	ApprovalRequestID string     `db:"approval_request_id"`
	CreatedAt         time.Time  `db:"created_at"`
	SubmittedAt       *time.Time `db:"submitted_at"`
	CustomerResponse  *time.Time `db:"customer_response_at"`
	BilledAt          *time.Time `db:"billed_at"`
}

// OrderTimeTracking is the per-order aggregate. Version guards every
// read-modify-write cycle: repositories bump it on commit and fail with
// ErrConflict when the record changed in between.
type OrderTimeTracking struct {
	OrderID                string     `db:"order_id"`
	ProviderID             string     `db:"provider_id"`
	CustomerID             string     `db:"customer_id"`
	OriginalPlannedHours   float64    `db:"original_planned_hours"`
	TotalLoggedHours       float64    `db:"total_logged_hours"`
	TotalApprovedHours     float64    `db:"total_approved_hours"`
	TotalBilledHours       float64    `db:"total_billed_hours"`
	HourlyRate             int64      `db:"hourly_rate"` // minor units, snapshotted at init
	Status                 string     `db:"status"`
	CustomerFeedback       string     `db:"customer_feedback"`
	EscrowID               string     `db:"escrow_id"`
	EscrowStatus           string     `db:"escrow_status"`
	CustomerComplete       bool       `db:"customer_marked_complete"`
	ProviderComplete       bool       `db:"provider_marked_complete"`
	EscrowReleaseInitiated bool       `db:"escrow_release_initiated"`
	CustomerCompletedAt    *time.Time `db:"customer_completed_at"`
	ProviderCompletedAt    *time.Time `db:"provider_completed_at"`
	Version                int64      `db:"version"`
	CreatedAt              time.Time  `db:"created_at"`
	LastUpdated            time.Time  `db:"last_updated"`
}

// BothPartiesComplete is derived, never stored.
func (t *OrderTimeTracking) BothPartiesComplete() bool {
	return t.CustomerComplete && t.ProviderComplete
}

type ApprovalRequest struct {
	ID                string     `db:"id"`
	OrderID           string     `db:"order_id"`
	ProviderID        string     `db:"provider_id"`
	CustomerID        string     `db:"customer_id"`
	EntryIDs          []string   `db:"entry_ids"`
	TotalHours        float64    `db:"total_hours"`
	TotalAmount       int64      `db:"total_amount"` // minor units, additional entries only
	Status            string     `db:"status"`
	ProviderMessage   string     `db:"provider_message"`
	CustomerFeedback  string     `db:"customer_feedback"`
	ApprovedEntryIDs  []string   `db:"approved_entry_ids"`
	CustomerInitiated bool       `db:"customer_initiated"`
	SubmittedAt       time.Time  `db:"submitted_at"`
	RespondedAt       *time.Time `db:"responded_at"`
}

type Escrow struct {
	ID                string     `db:"id"` // assigned by the payment provider
	OrderID           string     `db:"order_id"`
	ProviderID        string     `db:"provider_id"`
	CustomerID        string     `db:"customer_id"`
	Amount            int64      `db:"amount"` // minor units
	Currency          string     `db:"currency"`
	PlatformFeeAmount int64      `db:"platform_fee_amount"`
	ProviderAmount    int64      `db:"provider_amount"`
	Status            string     `db:"status"`
	EntryIDs          []string   `db:"entry_ids"`
	CreatedAt         time.Time  `db:"created_at"`
	ReleasedAt        *time.Time `db:"released_at"`
}

// ProviderStats is the read-side rollup for a provider dashboard.
type ProviderStats struct {
	ActiveOrders       int     `db:"active_orders"`
	TotalLoggedHours   float64 `db:"total_logged_hours"`
	TotalApprovedHours float64 `db:"total_approved_hours"`
	PendingPayout      int64   `db:"pending_payout"`
}

// CustomerStats is the read-side rollup for a customer dashboard.
type CustomerStats struct {
	ActiveOrders     int     `db:"active_orders"`
	TotalLoggedHours float64 `db:"total_logged_hours"`
	PendingApprovals int     `db:"pending_approvals"`
	HeldAmount       int64   `db:"held_amount"`
}

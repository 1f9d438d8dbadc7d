package dto

type ProviderStatsResponseDTO struct {
	ActiveOrders       int     `json:"active_orders" example:"3"`
	TotalLoggedHours   float64 `json:"total_logged_hours" example:"27.5"`
	TotalApprovedHours float64 `json:"total_approved_hours" example:"12"`
	PendingPayout      int64   `json:"pending_payout" example:"54000"`
}

type CustomerStatsResponseDTO struct {
	ActiveOrders     int     `json:"active_orders" example:"2"`
	TotalLoggedHours float64 `json:"total_logged_hours" example:"14"`
	PendingApprovals int     `json:"pending_approvals" example:"1"`
	HeldAmount       int64   `json:"held_amount" example:"16450"`
}

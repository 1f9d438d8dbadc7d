package dto

import "time"

type EscrowResponseDTO struct {
	ID                string     `json:"id" example:"esc_8Zt4Kp"`
	OrderID           string     `json:"order_id" example:"order-555"`
	Amount            int64      `json:"amount" example:"16450"`
	Currency          string     `json:"currency" example:"EUR"`
	PlatformFeeAmount int64      `json:"platform_fee_amount" example:"740"`
	ProviderAmount    int64      `json:"provider_amount" example:"15710"`
	Status            string     `json:"status" example:"authorized"`
	EntryIDs          []string   `json:"entry_ids"`
	CreatedAt         time.Time  `json:"created_at"`
	ReleasedAt        *time.Time `json:"released_at,omitempty"`
}

type MarkPaidRequestDTO struct {
	EscrowID string `json:"escrow_id" example:"esc_8Zt4Kp"`
}

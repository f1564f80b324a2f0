package dto

import "time"

type CreateCardRequestDTO struct {
	CardNumber string `json:"card_number" validate:"required" example:"4561261212345467"`
	Provider   string `json:"card_provider" validate:"required" example:"visa"`
}

type CardResponseDTO struct {
	CardNumber string    `json:"card_number" example:"4561261212345467"`
	Provider   string    `json:"card_provider" example:"visa"`
	CreatedAt  time.Time `json:"created_at"`
	Trashed    bool      `json:"trashed"`
}

type BalanceResponseDTO struct {
	CardNumber     string     `json:"card_number" example:"4561261212345467"`
	TotalBalance   int64      `json:"total_balance" example:"50000"`
	WithdrawAmount *int64     `json:"withdraw_amount,omitempty" example:"1000"`
	WithdrawTime   *time.Time `json:"withdraw_time,omitempty"`
}

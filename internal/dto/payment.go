package dto

import "time"

type TopupRequestDTO struct {
	CardNumber string `json:"card_number" validate:"required" example:"4561261212345467"`
	Amount     int64  `json:"amount" validate:"required,gt=0" example:"20000"`
	Method     string `json:"method" validate:"required" example:"bank"`
}

type WithdrawRequestDTO struct {
	CardNumber string `json:"card_number" validate:"required" example:"4561261212345467"`
	Amount     int64  `json:"amount" validate:"required,gt=0" example:"10000"`
}

type TransferRequestDTO struct {
	FromCard string `json:"from_card" validate:"required" example:"4561261212345467"`
	ToCard   string `json:"to_card" validate:"required" example:"4561261212345475"`
	Amount   int64  `json:"amount" validate:"required,gt=0" example:"30000"`
}

type PurchaseRequestDTO struct {
	CardNumber     string `json:"card_number" validate:"required" example:"4561261212345467"`
	MerchantAPIKey string `json:"merchant_api_key" validate:"required,uuid"`
	Amount         int64  `json:"amount" validate:"required,gt=0" example:"5000"`
}

type OperationResponseDTO struct {
	OperationNo    string    `json:"operation_no"`
	Kind           string    `json:"kind" example:"transfer"`
	CardNumber     string    `json:"card_number" example:"4561261212345467"`
	DestCardNumber *string   `json:"dest_card_number,omitempty"`
	Amount         int64     `json:"amount" example:"30000"`
	Status         string    `json:"status" example:"success"`
	ResultBalance  *int64    `json:"result_balance,omitempty"`
	EffectTime     time.Time `json:"effect_time"`
}

package dto

type CreateMerchantRequestDTO struct {
	Name string `json:"name" validate:"required" example:"coffee-shop"`
}

type MerchantResponseDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name" example:"coffee-shop"`
	APIKey string `json:"api_key"`
	Status string `json:"status" example:"active"`
}

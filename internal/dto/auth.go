package dto

type AuthRequestDTO struct {
	Login    string `json:"login" validate:"required" example:"user1"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

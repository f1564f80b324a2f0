package merchant

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/dto"
	"github.com/cardpay/backend/pkg/auth"
	"github.com/cardpay/backend/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, userID int, name string) (*domain.Merchant, error)
}

type MerchantHandler struct {
	merchantService Service
	validate        *validator.Validate
}

func New(merchantService Service) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
		validate:        validator.New(),
	}
}

// CreateMerchant godoc
//
//	@Summary		Register a merchant
//	@Description	Create an active merchant owned by the authenticated user; the API key is returned once
//	@Tags			Merchants
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateMerchantRequestDTO	true	"Merchant payload"
//	@Success		201		{object}	dto.MerchantResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/merchants [post]
func (h *MerchantHandler) CreateMerchant(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateMerchantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	merchant, err := h.merchantService.Register(r.Context(), userID, req.Name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.MerchantResponseDTO{
		ID:     merchant.ID,
		Name:   merchant.Name,
		APIKey: merchant.APIKey,
		Status: merchant.Status,
	})
}

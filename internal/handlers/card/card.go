package card

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/dto"
	"github.com/cardpay/backend/internal/service/cardservice"
	"github.com/cardpay/backend/internal/service/ledgerservice"
	"github.com/cardpay/backend/pkg/auth"
	"github.com/cardpay/backend/pkg/utils"
	"github.com/cardpay/backend/pkg/validate"
)

type Service interface {
	IssueCard(ctx context.Context, userID int, cardNumber string, provider string) (*domain.Card, error)
	GetCards(ctx context.Context, userID int) ([]domain.Card, error)
	TrashCard(ctx context.Context, userID int, cardNumber string) error
	RestoreCard(ctx context.Context, userID int, cardNumber string) error
}

type Ledger interface {
	Read(ctx context.Context, cardNumber string) (*domain.Balance, error)
}

type Operations interface {
	GetOperations(ctx context.Context, cardNumber string) ([]domain.Operation, error)
}

type CardHandler struct {
	cardService Service
	ledger      Ledger
	operations  Operations
	validate    *validator.Validate
}

func New(cardService Service, ledger Ledger, operations Operations) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		ledger:      ledger,
		operations:  operations,
		validate:    validator.New(),
	}
}

// CreateCard godoc
//
//	@Summary		Issue a new card
//	@Description	Issue a card for the authenticated user and open its zero balance
//	@Tags			Cards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCardRequestDTO	true	"Card request payload"
//	@Success		201		{object}	dto.CardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Card already exists"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cards [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateCardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !validate.IsLuna(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	card, err := h.cardService.IssueCard(r.Context(), userID, req.CardNumber, req.Provider)
	if err != nil {
		if errors.Is(err, cardservice.ErrCardAlreadyExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CardResponseDTO{
		CardNumber: card.CardNumber,
		Provider:   card.Provider,
		CreatedAt:  card.CreatedAt,
	})
}

// GetCards godoc
//
//	@Summary		List cards
//	@Description	List active cards of the authenticated user
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cards [get]
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	cards, err := h.cardService.GetCards(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch cards")
		return
	}

	response := make([]dto.CardResponseDTO, len(cards))
	for i, c := range cards {
		response[i] = dto.CardResponseDTO{
			CardNumber: c.CardNumber,
			Provider:   c.Provider,
			CreatedAt:  c.CreatedAt,
			Trashed:    c.DeletedAt != nil,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBalance godoc
//
//	@Summary		Get card balance
//	@Description	Point-in-time read of the card balance
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		string	true	"Card number"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		404		{object}	utils.Response	"Card not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cards/{number}/balance [get]
func (h *CardHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	cardNumber := chi.URLParam(r, "number")

	balance, err := h.ledger.Read(r.Context(), cardNumber)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrUnknownCard) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		CardNumber:     balance.CardNumber,
		TotalBalance:   balance.TotalBalance,
		WithdrawAmount: balance.WithdrawAmount,
		WithdrawTime:   balance.WithdrawTime,
	})
}

// GetOperations godoc
//
//	@Summary		Card operation history
//	@Description	Operations touching the card as source or destination, newest first
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		string	true	"Card number"
//	@Success		200		{array}		dto.OperationResponseDTO
//	@Success		204		{object}	utils.Response	"No operations"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cards/{number}/operations [get]
func (h *CardHandler) GetOperations(w http.ResponseWriter, r *http.Request) {
	cardNumber := chi.URLParam(r, "number")

	ops, err := h.operations.GetOperations(r.Context(), cardNumber)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch operations")
		return
	}
	if len(ops) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Operations not found")
		return
	}

	response := make([]dto.OperationResponseDTO, len(ops))
	for i, op := range ops {
		response[i] = dto.OperationResponseDTO{
			OperationNo:    op.OperationNo,
			Kind:           op.Kind,
			CardNumber:     op.CardNumber,
			DestCardNumber: op.DestCardNumber,
			Amount:         op.Amount,
			Status:         op.Status,
			ResultBalance:  op.ResultBalance,
			EffectTime:     op.EffectTime,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// TrashCard godoc
//
//	@Summary		Trash a card
//	@Description	Soft-delete the card and its balance; both stay auditable
//	@Tags			Cards
//	@Security		BearerAuth
//	@Param			number	path	string	true	"Card number"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Card not found"
//	@Failure		403		{object}	utils.Response	"Card not owned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cards/{number} [delete]
func (h *CardHandler) TrashCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	cardNumber := chi.URLParam(r, "number")

	if err := h.cardService.TrashCard(r.Context(), userID, cardNumber); err != nil {
		respondCardError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "card trashed"})
}

// RestoreCard godoc
//
//	@Summary		Restore a trashed card
//	@Tags			Cards
//	@Security		BearerAuth
//	@Param			number	path	string	true	"Card number"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Card not found"
//	@Failure		403		{object}	utils.Response	"Card not owned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cards/{number}/restore [post]
func (h *CardHandler) RestoreCard(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	cardNumber := chi.URLParam(r, "number")

	if err := h.cardService.RestoreCard(r.Context(), userID, cardNumber); err != nil {
		respondCardError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "card restored"})
}

func respondCardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cardservice.ErrCardNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cardservice.ErrCardNotOwned):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/dto"
	"github.com/cardpay/backend/internal/service/ledgerservice"
	"github.com/cardpay/backend/internal/service/paymentservice"
	"github.com/cardpay/backend/pkg/utils"
	"github.com/cardpay/backend/pkg/validate"
)

const idempotencyKeyHeader = "X-Idempotency-Key"

type Service interface {
	Topup(ctx context.Context, cardNumber string, amount int64, method string, operationNo string) (*domain.Operation, error)
	Withdraw(ctx context.Context, cardNumber string, amount int64, operationNo string) (*domain.Operation, error)
	Transfer(ctx context.Context, fromCard string, toCard string, amount int64, operationNo string) (*domain.Operation, error)
	Purchase(ctx context.Context, cardNumber string, merchantAPIKey string, amount int64, operationNo string) (*domain.Operation, error)
}

type PaymentHandler struct {
	paymentService Service
	validate       *validator.Validate
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validate:       validator.New(),
	}
}

// operationNo returns the client-supplied idempotency key or generates a
// fresh v4 one. Either way it is echoed back so the client can retry with
// the same key.
func operationNo(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.Header.Get(idempotencyKeyHeader)
	if key == "" {
		key = uuid.NewString()
	} else if _, err := uuid.Parse(key); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid idempotency key")
		return "", false
	}
	w.Header().Set(idempotencyKeyHeader, key)
	return key, true
}

// Topup godoc
//
//	@Summary		Top up a card
//	@Description	Credit the card balance; replaying the same idempotency key returns the prior result
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			X-Idempotency-Key	header		string				false	"Operation number for retries"
//	@Param			request				body		dto.TopupRequestDTO	true	"Top-up payload"
//	@Success		200					{object}	dto.OperationResponseDTO
//	@Failure		400					{object}	utils.Response	"Invalid request"
//	@Failure		402					{object}	utils.Response	"Insufficient funds"
//	@Failure		404					{object}	utils.Response	"Unknown card"
//	@Failure		409					{object}	utils.Response	"Operation in flight, retry later"
//	@Failure		422					{object}	utils.Response	"Invalid operation"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/topup [post]
func (h *PaymentHandler) Topup(w http.ResponseWriter, r *http.Request) {
	var req dto.TopupRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	if !validate.IsLuna(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	opNo, ok := operationNo(w, r)
	if !ok {
		return
	}

	op, err := h.paymentService.Topup(r.Context(), req.CardNumber, req.Amount, req.Method, opNo)
	if err != nil {
		respondOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOperationDTO(op))
}

// Withdraw godoc
//
//	@Summary		Withdraw from a card
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			X-Idempotency-Key	header		string					false	"Operation number for retries"
//	@Param			request				body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		200					{object}	dto.OperationResponseDTO
//	@Failure		400					{object}	utils.Response	"Invalid request"
//	@Failure		402					{object}	utils.Response	"Insufficient funds"
//	@Failure		404					{object}	utils.Response	"Unknown card"
//	@Failure		409					{object}	utils.Response	"Operation in flight, retry later"
//	@Failure		422					{object}	utils.Response	"Invalid operation"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/withdraw [post]
func (h *PaymentHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	if !validate.IsLuna(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	opNo, ok := operationNo(w, r)
	if !ok {
		return
	}

	op, err := h.paymentService.Withdraw(r.Context(), req.CardNumber, req.Amount, opNo)
	if err != nil {
		respondOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOperationDTO(op))
}

// Transfer godoc
//
//	@Summary		Transfer between cards
//	@Description	Debit the source and credit the destination atomically
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			X-Idempotency-Key	header		string					false	"Operation number for retries"
//	@Param			request				body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200					{object}	dto.OperationResponseDTO
//	@Failure		400					{object}	utils.Response	"Invalid request"
//	@Failure		402					{object}	utils.Response	"Insufficient funds"
//	@Failure		404					{object}	utils.Response	"Unknown card"
//	@Failure		409					{object}	utils.Response	"Operation in flight, retry later"
//	@Failure		422					{object}	utils.Response	"Invalid operation"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/transfer [post]
func (h *PaymentHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	if !validate.IsLuna(req.FromCard) || !validate.IsLuna(req.ToCard) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	opNo, ok := operationNo(w, r)
	if !ok {
		return
	}

	op, err := h.paymentService.Transfer(r.Context(), req.FromCard, req.ToCard, req.Amount, opNo)
	if err != nil {
		respondOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOperationDTO(op))
}

// Purchase godoc
//
//	@Summary		Purchase against a merchant
//	@Description	Debit the card and attribute the amount to the merchant resolved by API key
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			X-Idempotency-Key	header		string					false	"Operation number for retries"
//	@Param			request				body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200					{object}	dto.OperationResponseDTO
//	@Failure		400					{object}	utils.Response	"Invalid request"
//	@Failure		402					{object}	utils.Response	"Insufficient funds"
//	@Failure		404					{object}	utils.Response	"Unknown card or merchant"
//	@Failure		409					{object}	utils.Response	"Operation in flight, retry later"
//	@Failure		422					{object}	utils.Response	"Invalid operation"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/purchase [post]
func (h *PaymentHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	if !validate.IsLuna(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}
	opNo, ok := operationNo(w, r)
	if !ok {
		return
	}

	op, err := h.paymentService.Purchase(r.Context(), req.CardNumber, req.MerchantAPIKey, req.Amount, opNo)
	if err != nil {
		respondOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOperationDTO(op))
}

func (h *PaymentHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func toOperationDTO(op *domain.Operation) dto.OperationResponseDTO {
	return dto.OperationResponseDTO{
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

func respondOperationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, ledgerservice.ErrUnknownCard):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrUnknownMerchant):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrInvalidOperation):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case ledgerservice.Retryable(err):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

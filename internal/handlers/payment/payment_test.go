package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/dto"
	"github.com/cardpay/backend/internal/service/ledgerservice"
	"github.com/cardpay/backend/internal/service/paymentservice"
)

const (
	fromCard = "4561261212345467"
	toCard   = "4561261212345475"
	opNo     = "7b1e3f51-4f8a-4d6c-9a2e-1f0c5d8b9e21"
	apiKey   = "f0b9c3a2-6d1e-4b7f-8c4a-2e9d5f1a7b36"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(target, body, idempotencyKey string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	if idempotencyKey != "" {
		r.Header.Set(idempotencyKeyHeader, idempotencyKey)
	}
	return r
}

func successOperation(kind string) *domain.Operation {
	balance := int64(70000)
	return &domain.Operation{
		ID:            1,
		OperationNo:   opNo,
		Kind:          kind,
		CardNumber:    fromCard,
		Amount:        20000,
		Status:        domain.OperationStatusSuccess,
		ResultBalance: &balance,
		EffectTime:    time.Now(),
	}
}

func TestTopupHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		key          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful topup",
			body: `{"card_number":"4561261212345467","amount":20000,"method":"bank"}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Topup(gomock.Any(), fromCard, int64(20000), "bank", opNo).
					Return(successOperation(domain.OperationKindTopup), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"card_number":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing amount",
			body:         `{"card_number":"4561261212345467","method":"bank"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid card number",
			body:         `{"card_number":"4561261212345468","amount":20000,"method":"bank"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid idempotency key",
			body:         `{"card_number":"4561261212345467","amount":20000,"method":"bank"}`,
			key:          "not-a-uuid",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown card",
			body: `{"card_number":"4561261212345467","amount":20000,"method":"bank"}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Topup(gomock.Any(), fromCard, int64(20000), "bank", opNo).
					Return(nil, ledgerservice.ErrUnknownCard)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Amount over limit",
			body: `{"card_number":"4561261212345467","amount":20000,"method":"bank"}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Topup(gomock.Any(), fromCard, int64(20000), "bank", opNo).
					Return(nil, ledgerservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Operation in flight",
			body: `{"card_number":"4561261212345467","amount":20000,"method":"bank"}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Topup(gomock.Any(), fromCard, int64(20000), "bank", opNo).
					Return(nil, ledgerservice.ErrStorageConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"card_number":"4561261212345467","amount":20000,"method":"bank"}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Topup(gomock.Any(), fromCard, int64(20000), "bank", opNo).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest("/api/payments/topup", tt.body, tt.key)
			w := httptest.NewRecorder()
			handler.Topup(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.key, w.Header().Get(idempotencyKeyHeader))
				var body dto.OperationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, opNo, body.OperationNo)
				assert.Equal(t, domain.OperationStatusSuccess, body.Status)
			}
		})
	}
}

func TestTopupHandlerGeneratesOperationNo(t *testing.T) {
	handler, service := NewMock(t)

	var captured string
	service.EXPECT().
		Topup(gomock.Any(), fromCard, int64(20000), "bank", gomock.Any()).
		DoAndReturn(func(_ any, _ string, _ int64, _ string, operationNo string) (*domain.Operation, error) {
			captured = operationNo
			op := successOperation(domain.OperationKindTopup)
			op.OperationNo = operationNo
			return op, nil
		})

	r := newRequest("/api/payments/topup", `{"card_number":"4561261212345467","amount":20000,"method":"bank"}`, "")
	w := httptest.NewRecorder()
	handler.Topup(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
	assert.Equal(t, captured, w.Header().Get(idempotencyKeyHeader))
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		key          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful withdrawal",
			body: `{"card_number":"4561261212345467","amount":20000}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), fromCard, int64(20000), opNo).
					Return(successOperation(domain.OperationKindWithdraw), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"card_number":"4561261212345467","amount":20000}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), fromCard, int64(20000), opNo).
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Invalid card number",
			body:         `{"card_number":"1234","amount":20000}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest("/api/payments/withdraw", tt.body, tt.key)
			w := httptest.NewRecorder()
			handler.Withdraw(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestTransferHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		key          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful transfer",
			body: `{"from_card":"4561261212345467","to_card":"4561261212345475","amount":20000}`,
			key:  opNo,
			prepareMock: func() {
				dest := toCard
				op := successOperation(domain.OperationKindTransfer)
				op.DestCardNumber = &dest
				service.EXPECT().
					Transfer(gomock.Any(), fromCard, toCard, int64(20000), opNo).
					Return(op, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Self transfer",
			body: `{"from_card":"4561261212345467","to_card":"4561261212345467","amount":20000}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Transfer(gomock.Any(), fromCard, fromCard, int64(20000), opNo).
					Return(nil, paymentservice.ErrInvalidOperation)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Insufficient funds",
			body: `{"from_card":"4561261212345467","to_card":"4561261212345475","amount":20000}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Transfer(gomock.Any(), fromCard, toCard, int64(20000), opNo).
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Invalid destination card",
			body:         `{"from_card":"4561261212345467","to_card":"4561261212345476","amount":20000}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest("/api/payments/transfer", tt.body, tt.key)
			w := httptest.NewRecorder()
			handler.Transfer(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.OperationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, domain.OperationKindTransfer, body.Kind)
				if assert.NotNil(t, body.DestCardNumber) {
					assert.Equal(t, toCard, *body.DestCardNumber)
				}
			}
		})
	}
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		key          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful purchase",
			body: `{"card_number":"4561261212345467","merchant_api_key":"` + apiKey + `","amount":20000}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), fromCard, apiKey, int64(20000), opNo).
					Return(successOperation(domain.OperationKindPurchase), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed API key",
			body:         `{"card_number":"4561261212345467","merchant_api_key":"not-a-uuid","amount":20000}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown merchant",
			body: `{"card_number":"4561261212345467","merchant_api_key":"` + apiKey + `","amount":20000}`,
			key:  opNo,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), fromCard, apiKey, int64(20000), opNo).
					Return(nil, paymentservice.ErrUnknownMerchant)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest("/api/payments/purchase", tt.body, tt.key)
			w := httptest.NewRecorder()
			handler.Purchase(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

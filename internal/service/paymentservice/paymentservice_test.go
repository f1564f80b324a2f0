package paymentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/cardpay/backend/internal/config"
	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/pg"
	"github.com/cardpay/backend/internal/service/ledgerservice"
)

const (
	fromCard = "4561261212345467"
	toCard   = "4561261212345475"
	opNo     = "5a2896e2-6709-4b09-a1cd-0d28e0f9c316"
	apiKey   = "9b1c50e8-13c7-4b2f-b74d-52a8e2c2fd01"
)

type mocks struct {
	ledger    *MockLedger
	registry  *MockRegistry
	merchants *MockMerchantRepo
	balances  *MockBalanceMeta
	cache     *MockResultCache
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		ledger:    NewMockLedger(ctrl),
		registry:  NewMockRegistry(ctrl),
		merchants: NewMockMerchantRepo(ctrl),
		balances:  NewMockBalanceMeta(ctrl),
		cache:     NewMockResultCache(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{PendingTTL: time.Minute}
	service := New(m.ledger, m.registry, m.merchants, m.balances, m.cache, m.txManager, cfg)
	defer ctrl.Finish()
	return service, m
}

func (m *mocks) passthroughTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

// freshOperation arms the begin sequence for an operation with no prior
// record: cache miss, registry miss, reservation won.
func (m *mocks) freshOperation() {
	m.cache.EXPECT().GetOperation(gomock.Any(), opNo).Return(nil, nil)
	m.registry.EXPECT().FindByOperationNo(gomock.Any(), opNo).Return(nil, nil)
	m.registry.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(true, nil)
}

func mustLegNo(t *testing.T, leg string) string {
	no, err := legNo(opNo, leg)
	assert.NoError(t, err)
	return no
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func TestTopup(t *testing.T) {
	t.Run("Fresh operation credits and closes the record", func(t *testing.T) {
		service, m := NewMock(t)
		creditNo := mustLegNo(t, "credit")

		m.freshOperation()
		m.ledger.EXPECT().Credit(gomock.Any(), fromCard, int64(20000), creditNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 70000}, nil)
		result := &domain.Operation{
			OperationNo:   opNo,
			Kind:          domain.OperationKindTopup,
			Status:        domain.OperationStatusSuccess,
			ResultBalance: int64Ptr(70000),
		}
		m.registry.EXPECT().MarkSuccess(gomock.Any(), opNo, int64(70000)).Return(result, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), result).Return(nil)

		op, err := service.Topup(context.Background(), fromCard, 20000, "bank", opNo)
		assert.NoError(t, err)
		assert.Equal(t, domain.OperationStatusSuccess, op.Status)
		assert.Equal(t, int64(70000), *op.ResultBalance)
	})

	t.Run("Cached terminal record short-circuits the registry", func(t *testing.T) {
		service, m := NewMock(t)
		cached := &domain.Operation{
			OperationNo:   opNo,
			Status:        domain.OperationStatusSuccess,
			ResultBalance: int64Ptr(70000),
		}
		m.cache.EXPECT().GetOperation(gomock.Any(), opNo).Return(cached, nil)

		op, err := service.Topup(context.Background(), fromCard, 20000, "bank", opNo)
		assert.NoError(t, err)
		assert.Equal(t, cached, op)
	})

	t.Run("Replay of a failed record surfaces the recorded error", func(t *testing.T) {
		service, m := NewMock(t)
		failed := &domain.Operation{
			OperationNo: opNo,
			Status:      domain.OperationStatusFailed,
			FailReason:  strPtr(ledgerservice.ReasonUnknownCard),
		}
		m.cache.EXPECT().GetOperation(gomock.Any(), opNo).Return(nil, nil)
		m.registry.EXPECT().FindByOperationNo(gomock.Any(), opNo).Return(failed, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), failed).Return(nil)

		op, err := service.Topup(context.Background(), fromCard, 20000, "bank", opNo)
		assert.ErrorIs(t, err, ledgerservice.ErrUnknownCard)
		assert.Nil(t, op)
	})

	t.Run("Credit failure fails the operation", func(t *testing.T) {
		service, m := NewMock(t)
		creditNo := mustLegNo(t, "credit")

		m.freshOperation()
		m.ledger.EXPECT().Credit(gomock.Any(), fromCard, int64(20000), creditNo).
			Return(nil, ledgerservice.ErrUnknownCard)
		failed := &domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonUnknownCard).Return(failed, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), failed).Return(nil)

		op, err := service.Topup(context.Background(), fromCard, 20000, "bank", opNo)
		assert.ErrorIs(t, err, ledgerservice.ErrUnknownCard)
		assert.Nil(t, op)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("Debits and stamps the withdrawal metadata atomically", func(t *testing.T) {
		service, m := NewMock(t)
		m.passthroughTx()
		debitNo := mustLegNo(t, "debit")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(10000), debitNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 40000}, nil)
		m.balances.EXPECT().SetWithdrawMeta(gomock.Any(), fromCard, int64(10000), gomock.Any()).Return(nil)
		result := &domain.Operation{
			OperationNo:   opNo,
			Kind:          domain.OperationKindWithdraw,
			Status:        domain.OperationStatusSuccess,
			ResultBalance: int64Ptr(40000),
		}
		m.registry.EXPECT().MarkSuccess(gomock.Any(), opNo, int64(40000)).Return(result, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), result).Return(nil)

		op, err := service.Withdraw(context.Background(), fromCard, 10000, opNo)
		assert.NoError(t, err)
		assert.Equal(t, int64(40000), *op.ResultBalance)
	})

	t.Run("Insufficient funds fails the operation terminally", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(10000), debitNo).
			Return(nil, ledgerservice.ErrInsufficientFunds)
		failed := &domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonInsufficientFunds).Return(failed, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), failed).Return(nil)

		op, err := service.Withdraw(context.Background(), fromCard, 10000, opNo)
		assert.ErrorIs(t, err, ledgerservice.ErrInsufficientFunds)
		assert.Nil(t, op)
	})

	t.Run("Retryable debit failure leaves the operation pending", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(10000), debitNo).
			Return(nil, ledgerservice.ErrStorageConflict)

		op, err := service.Withdraw(context.Background(), fromCard, 10000, opNo)
		assert.ErrorIs(t, err, ledgerservice.ErrStorageConflict)
		assert.Nil(t, op)
	})
}

func TestTransfer(t *testing.T) {
	t.Run("Moves funds between two cards", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")
		creditNo := mustLegNo(t, "credit")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(30000), debitNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 20000}, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), toCard, int64(30000), creditNo).
			Return(&domain.Balance{CardNumber: toCard, TotalBalance: 30000}, nil)
		result := &domain.Operation{
			OperationNo:   opNo,
			Kind:          domain.OperationKindTransfer,
			Status:        domain.OperationStatusSuccess,
			ResultBalance: int64Ptr(20000),
		}
		m.registry.EXPECT().MarkSuccess(gomock.Any(), opNo, int64(20000)).Return(result, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), result).Return(nil)

		op, err := service.Transfer(context.Background(), fromCard, toCard, 30000, opNo)
		assert.NoError(t, err)
		assert.Equal(t, int64(20000), *op.ResultBalance)
	})

	t.Run("Self transfer is rejected before any reservation", func(t *testing.T) {
		service, _ := NewMock(t)

		op, err := service.Transfer(context.Background(), fromCard, fromCard, 30000, opNo)
		assert.ErrorIs(t, err, ErrInvalidOperation)
		assert.Nil(t, op)
	})

	t.Run("Source debit failure fails fast without touching the destination", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(30000), debitNo).
			Return(nil, ledgerservice.ErrInsufficientFunds)
		failed := &domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonInsufficientFunds).Return(failed, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), failed).Return(nil)

		op, err := service.Transfer(context.Background(), fromCard, toCard, 30000, opNo)
		assert.ErrorIs(t, err, ledgerservice.ErrInsufficientFunds)
		assert.Nil(t, op)
	})

	t.Run("Destination credit failure is compensated on the source", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")
		creditNo := mustLegNo(t, "credit")
		reversalNo := mustLegNo(t, "reversal")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(30000), debitNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 20000}, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), toCard, int64(30000), creditNo).
			Return(nil, ledgerservice.ErrUnknownCard)
		m.ledger.EXPECT().Credit(gomock.Any(), fromCard, int64(30000), reversalNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 50000}, nil)
		failed := &domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonUnknownCard).Return(failed, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), failed).Return(nil)

		op, err := service.Transfer(context.Background(), fromCard, toCard, 30000, opNo)
		assert.ErrorIs(t, err, ledgerservice.ErrUnknownCard)
		assert.Nil(t, op)
	})

	t.Run("Retryable credit failure leaves the record pending for the sweeper", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")
		creditNo := mustLegNo(t, "credit")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(30000), debitNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 20000}, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), toCard, int64(30000), creditNo).
			Return(nil, ledgerservice.ErrStorageConflict)

		op, err := service.Transfer(context.Background(), fromCard, toCard, 30000, opNo)
		assert.ErrorIs(t, err, ledgerservice.ErrStorageConflict)
		assert.Nil(t, op)
	})
}

func TestPurchase(t *testing.T) {
	merchant := &domain.Merchant{ID: 7, Name: "coffee-shop", APIKey: apiKey, Status: domain.MerchantStatusActive}

	t.Run("Debits the card and attributes the merchant", func(t *testing.T) {
		service, m := NewMock(t)
		m.passthroughTx()
		debitNo := mustLegNo(t, "debit")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(5000), debitNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 45000}, nil)
		m.merchants.EXPECT().FindByAPIKey(gomock.Any(), apiKey).Return(merchant, nil)
		m.registry.EXPECT().AttachMerchant(gomock.Any(), opNo, 7).Return(nil)
		result := &domain.Operation{
			OperationNo:   opNo,
			Kind:          domain.OperationKindPurchase,
			Status:        domain.OperationStatusSuccess,
			ResultBalance: int64Ptr(45000),
		}
		m.registry.EXPECT().MarkSuccess(gomock.Any(), opNo, int64(45000)).Return(result, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), result).Return(nil)

		op, err := service.Purchase(context.Background(), fromCard, apiKey, 5000, opNo)
		assert.NoError(t, err)
		assert.Equal(t, int64(45000), *op.ResultBalance)
	})

	t.Run("Unknown merchant undoes the debit", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")
		reversalNo := mustLegNo(t, "reversal")

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(5000), debitNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 45000}, nil)
		m.merchants.EXPECT().FindByAPIKey(gomock.Any(), apiKey).Return(nil, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), fromCard, int64(5000), reversalNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 50000}, nil)
		failed := &domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonUnknownMerchant).Return(failed, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), failed).Return(nil)

		op, err := service.Purchase(context.Background(), fromCard, apiKey, 5000, opNo)
		assert.ErrorIs(t, err, ErrUnknownMerchant)
		assert.Nil(t, op)
	})

	t.Run("Inactive merchant is treated as unknown", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")
		reversalNo := mustLegNo(t, "reversal")
		inactive := &domain.Merchant{ID: 7, APIKey: apiKey, Status: domain.MerchantStatusInactive}

		m.freshOperation()
		m.ledger.EXPECT().Debit(gomock.Any(), fromCard, int64(5000), debitNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 45000}, nil)
		m.merchants.EXPECT().FindByAPIKey(gomock.Any(), apiKey).Return(inactive, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), fromCard, int64(5000), reversalNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 50000}, nil)
		failed := &domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonUnknownMerchant).Return(failed, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), failed).Return(nil)

		op, err := service.Purchase(context.Background(), fromCard, apiKey, 5000, opNo)
		assert.ErrorIs(t, err, ErrUnknownMerchant)
		assert.Nil(t, op)
	})
}

func TestResolve(t *testing.T) {
	t.Run("Stale topup is re-driven through the normal path", func(t *testing.T) {
		service, m := NewMock(t)
		creditNo := mustLegNo(t, "credit")
		pending := domain.Operation{
			OperationNo: opNo,
			Kind:        domain.OperationKindTopup,
			CardNumber:  fromCard,
			Method:      strPtr("bank"),
			Amount:      20000,
			Status:      domain.OperationStatusPending,
		}

		m.cache.EXPECT().GetOperation(gomock.Any(), opNo).Return(nil, nil)
		m.registry.EXPECT().FindByOperationNo(gomock.Any(), opNo).Return(&pending, nil)
		m.registry.EXPECT().ClaimStalePending(gomock.Any(), opNo, gomock.Any()).Return(true, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), fromCard, int64(20000), creditNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 70000}, nil)
		result := &domain.Operation{OperationNo: opNo, Status: domain.OperationStatusSuccess}
		m.registry.EXPECT().MarkSuccess(gomock.Any(), opNo, int64(70000)).Return(result, nil)
		m.cache.EXPECT().SetOperation(gomock.Any(), result).Return(nil)

		err := service.Resolve(context.Background(), pending)
		assert.NoError(t, err)
	})

	t.Run("Stale purchase with a committed debit is compensated and failed", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")
		reversalNo := mustLegNo(t, "reversal")
		pending := domain.Operation{
			OperationNo: opNo,
			Kind:        domain.OperationKindPurchase,
			CardNumber:  fromCard,
			Amount:      5000,
			Status:      domain.OperationStatusPending,
		}

		m.registry.EXPECT().FindByOperationNo(gomock.Any(), debitNo).
			Return(&domain.Operation{OperationNo: debitNo, Status: domain.OperationStatusSuccess}, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), fromCard, int64(5000), reversalNo).
			Return(&domain.Balance{CardNumber: fromCard, TotalBalance: 50000}, nil)
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonUnknownMerchant).
			Return(&domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}, nil)

		err := service.Resolve(context.Background(), pending)
		assert.NoError(t, err)
	})

	t.Run("Stale purchase without a committed debit is failed without a reversal", func(t *testing.T) {
		service, m := NewMock(t)
		debitNo := mustLegNo(t, "debit")
		pending := domain.Operation{
			OperationNo: opNo,
			Kind:        domain.OperationKindPurchase,
			CardNumber:  fromCard,
			Amount:      5000,
			Status:      domain.OperationStatusPending,
		}

		m.registry.EXPECT().FindByOperationNo(gomock.Any(), debitNo).Return(nil, nil)
		m.registry.EXPECT().MarkFailed(gomock.Any(), opNo, ledgerservice.ReasonUnknownMerchant).
			Return(&domain.Operation{OperationNo: opNo, Status: domain.OperationStatusFailed}, nil)

		err := service.Resolve(context.Background(), pending)
		assert.NoError(t, err)
	})

	t.Run("Unknown kind is rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		err := service.Resolve(context.Background(), domain.Operation{OperationNo: opNo, Kind: "mystery"})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestGetOperations(t *testing.T) {
	t.Run("Returns the card history", func(t *testing.T) {
		service, m := NewMock(t)
		ops := []domain.Operation{{OperationNo: opNo, Kind: domain.OperationKindTopup}}
		m.registry.EXPECT().ListByCard(gomock.Any(), fromCard).Return(ops, nil)

		got, err := service.GetOperations(context.Background(), fromCard)
		assert.NoError(t, err)
		assert.Equal(t, ops, got)
	})

	t.Run("Storage error passes through", func(t *testing.T) {
		service, m := NewMock(t)
		m.registry.EXPECT().ListByCard(gomock.Any(), fromCard).Return(nil, errors.New("db error"))

		_, err := service.GetOperations(context.Background(), fromCard)
		assert.Error(t, err)
	})
}

func TestInvalidOperationNo(t *testing.T) {
	service, m := NewMock(t)
	m.cache.EXPECT().GetOperation(gomock.Any(), "not-a-uuid").Return(nil, nil)
	m.registry.EXPECT().FindByOperationNo(gomock.Any(), "not-a-uuid").Return(nil, nil)
	m.registry.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(true, nil)

	op, err := service.Topup(context.Background(), fromCard, 20000, "bank", "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Nil(t, op)
}

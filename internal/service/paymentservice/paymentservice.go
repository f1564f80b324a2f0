package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cardpay/backend/internal/config"
	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/pg"
	"github.com/cardpay/backend/internal/service/ledgerservice"
	"go.uber.org/zap"
)

// Ledger is the single-card balance engine the orchestrator composes.
type Ledger interface {
	Credit(ctx context.Context, cardNumber string, amount int64, operationNo string) (*domain.Balance, error)
	Debit(ctx context.Context, cardNumber string, amount int64, operationNo string) (*domain.Balance, error)
	Read(ctx context.Context, cardNumber string) (*domain.Balance, error)
}

type Registry interface {
	Reserve(ctx context.Context, op *domain.Operation) (bool, error)
	FindByOperationNo(ctx context.Context, operationNo string) (*domain.Operation, error)
	MarkSuccess(ctx context.Context, operationNo string, resultBalance int64) (*domain.Operation, error)
	MarkFailed(ctx context.Context, operationNo string, reason string) (*domain.Operation, error)
	ClaimStalePending(ctx context.Context, operationNo string, cutoff time.Time) (bool, error)
	AttachMerchant(ctx context.Context, operationNo string, merchantID int) error
	ListByCard(ctx context.Context, cardNumber string) ([]domain.Operation, error)
}

type MerchantRepo interface {
	FindByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error)
}

type BalanceMeta interface {
	SetWithdrawMeta(ctx context.Context, cardNumber string, amount int64, at time.Time) error
}

// ResultCache memoizes terminal operation records. It is best effort: a
// miss or an unavailable backend always falls back to the registry.
type ResultCache interface {
	GetOperation(ctx context.Context, operationNo string) (*domain.Operation, error)
	SetOperation(ctx context.Context, op *domain.Operation) error
}

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrUnknownMerchant  = errors.New("unknown merchant")
)

type Service struct {
	ledger     Ledger
	registry   Registry
	merchants  MerchantRepo
	balances   BalanceMeta
	cache      ResultCache
	txManager  pg.TXManager
	pendingTTL time.Duration
}

func New(ledger Ledger, registry Registry, merchants MerchantRepo, balances BalanceMeta, cache ResultCache, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		ledger:     ledger,
		registry:   registry,
		merchants:  merchants,
		balances:   balances,
		cache:      cache,
		txManager:  txManager,
		pendingTTL: cfg.PendingTTL,
	}
}

// legNo derives the operation number of an inner engine leg from the
// parent operation number. The derivation is deterministic so every leg
// and every compensation stays idempotent across crash-retries.
func legNo(parent string, leg string) (string, error) {
	space, err := uuid.Parse(parent)
	if err != nil {
		return "", ErrInvalidOperation
	}
	return uuid.NewSHA1(space, []byte(leg)).String(), nil
}

// Topup credits the card through the ledger engine and closes the
// operation record in the same call.
func (s *Service) Topup(ctx context.Context, cardNumber string, amount int64, method string, operationNo string) (*domain.Operation, error) {
	op := &domain.Operation{
		OperationNo: operationNo,
		Kind:        domain.OperationKindTopup,
		CardNumber:  cardNumber,
		Method:      &method,
		Amount:      amount,
		EffectTime:  time.Now(),
	}
	replay, proceed, err := s.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return s.replay(replay)
	}

	creditNo, err := legNo(operationNo, "credit")
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.Credit(ctx, cardNumber, amount, creditNo)
	if err != nil {
		return nil, s.fail(ctx, operationNo, err)
	}
	return s.succeed(ctx, operationNo, balance.TotalBalance)
}

// Withdraw debits the card and stamps the most-recent-withdrawal metadata
// on the balance row in the same unit of work as the terminal status.
func (s *Service) Withdraw(ctx context.Context, cardNumber string, amount int64, operationNo string) (*domain.Operation, error) {
	op := &domain.Operation{
		OperationNo: operationNo,
		Kind:        domain.OperationKindWithdraw,
		CardNumber:  cardNumber,
		Amount:      amount,
		EffectTime:  time.Now(),
	}
	replay, proceed, err := s.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return s.replay(replay)
	}

	debitNo, err := legNo(operationNo, "debit")
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.Debit(ctx, cardNumber, amount, debitNo)
	if err != nil {
		return nil, s.fail(ctx, operationNo, err)
	}

	var result *domain.Operation
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.balances.SetWithdrawMeta(ctx, cardNumber, amount, op.EffectTime); err != nil {
			return err
		}
		result, err = s.registry.MarkSuccess(ctx, operationNo, balance.TotalBalance)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, result, operationNo)
}

// Transfer debits the source and credits the destination as one unit:
// either both effects become visible or, after compensation, neither.
func (s *Service) Transfer(ctx context.Context, fromCard string, toCard string, amount int64, operationNo string) (*domain.Operation, error) {
	if fromCard == toCard {
		return nil, ErrInvalidOperation
	}
	op := &domain.Operation{
		OperationNo:    operationNo,
		Kind:           domain.OperationKindTransfer,
		CardNumber:     fromCard,
		DestCardNumber: &toCard,
		Amount:         amount,
		EffectTime:     time.Now(),
	}
	replay, proceed, err := s.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return s.replay(replay)
	}

	debitNo, err := legNo(operationNo, "debit")
	if err != nil {
		return nil, err
	}
	// fail fast on the source before touching the destination
	balance, err := s.ledger.Debit(ctx, fromCard, amount, debitNo)
	if err != nil {
		return nil, s.fail(ctx, operationNo, err)
	}

	creditNo, err := legNo(operationNo, "credit")
	if err != nil {
		return nil, err
	}
	if _, err := s.ledger.Credit(ctx, toCard, amount, creditNo); err != nil {
		if ledgerservice.Retryable(err) {
			// debit stays applied, operation stays pending: the sweeper
			// re-drives it and both legs replay idempotently
			return nil, err
		}
		if cErr := s.compensate(ctx, operationNo, fromCard, amount); cErr != nil {
			return nil, cErr
		}
		return nil, s.fail(ctx, operationNo, err)
	}
	return s.succeed(ctx, operationNo, balance.TotalBalance)
}

// Purchase debits the card and attributes the amount to the merchant
// resolved by API key. A failed attribution is compensated before the
// error surfaces.
func (s *Service) Purchase(ctx context.Context, cardNumber string, merchantAPIKey string, amount int64, operationNo string) (*domain.Operation, error) {
	op := &domain.Operation{
		OperationNo: operationNo,
		Kind:        domain.OperationKindPurchase,
		CardNumber:  cardNumber,
		Amount:      amount,
		EffectTime:  time.Now(),
	}
	replay, proceed, err := s.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return s.replay(replay)
	}

	debitNo, err := legNo(operationNo, "debit")
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.Debit(ctx, cardNumber, amount, debitNo)
	if err != nil {
		return nil, s.fail(ctx, operationNo, err)
	}

	merchant, err := s.merchants.FindByAPIKey(ctx, merchantAPIKey)
	if err != nil {
		return nil, err
	}
	if merchant == nil || merchant.Status != domain.MerchantStatusActive {
		if cErr := s.compensate(ctx, operationNo, cardNumber, amount); cErr != nil {
			return nil, cErr
		}
		return nil, s.fail(ctx, operationNo, ErrUnknownMerchant)
	}

	var result *domain.Operation
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.registry.AttachMerchant(ctx, operationNo, merchant.ID); err != nil {
			return err
		}
		result, err = s.registry.MarkSuccess(ctx, operationNo, balance.TotalBalance)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, result, operationNo)
}

// Resolve re-drives a stale pending operation to a terminal state after a
// crash. Topups, withdrawals and transfers replay through their normal
// path: every leg is idempotent, so work that already landed is not
// re-applied. A purchase cannot be replayed (the merchant key is not
// stored), so its debit is undone if it landed and the record is failed.
func (s *Service) Resolve(ctx context.Context, op domain.Operation) error {
	switch op.Kind {
	case domain.OperationKindTopup:
		method := ""
		if op.Method != nil {
			method = *op.Method
		}
		_, err := s.Topup(ctx, op.CardNumber, op.Amount, method, op.OperationNo)
		return err
	case domain.OperationKindWithdraw:
		_, err := s.Withdraw(ctx, op.CardNumber, op.Amount, op.OperationNo)
		return err
	case domain.OperationKindTransfer:
		if op.DestCardNumber == nil {
			return ErrInvalidOperation
		}
		_, err := s.Transfer(ctx, op.CardNumber, *op.DestCardNumber, op.Amount, op.OperationNo)
		return err
	case domain.OperationKindPurchase:
		return s.cancelPurchase(ctx, op)
	}
	return ErrInvalidOperation
}

// cancelPurchase compensates the debit leg only if it committed; a
// reversal for a debit that never landed would mint money.
func (s *Service) cancelPurchase(ctx context.Context, op domain.Operation) error {
	debitNo, err := legNo(op.OperationNo, "debit")
	if err != nil {
		return err
	}
	leg, err := s.registry.FindByOperationNo(ctx, debitNo)
	if err != nil {
		return err
	}
	if leg != nil && leg.Status == domain.OperationStatusSuccess {
		if err := s.compensate(ctx, op.OperationNo, op.CardNumber, op.Amount); err != nil {
			return err
		}
	}
	_, err = s.registry.MarkFailed(ctx, op.OperationNo, ledgerservice.ReasonUnknownMerchant)
	return err
}

// GetOperations returns the operation history of a card, newest first.
func (s *Service) GetOperations(ctx context.Context, cardNumber string) ([]domain.Operation, error) {
	ops, err := s.registry.ListByCard(ctx, cardNumber)
	if err != nil {
		zap.L().Error("failed to fetch operations", zap.Error(err))
		return nil, err
	}
	return ops, nil
}

// begin wins or resolves the idempotency slot for the whole multi-step
// operation. proceed=true means the caller owns the pending record.
func (s *Service) begin(ctx context.Context, op *domain.Operation) (*domain.Operation, bool, error) {
	if cached, err := s.cache.GetOperation(ctx, op.OperationNo); err == nil && cached != nil {
		return cached, false, nil
	}

	existing, err := s.registry.FindByOperationNo(ctx, op.OperationNo)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		won, err := s.registry.Reserve(ctx, op)
		if err != nil {
			return nil, false, err
		}
		if won {
			return nil, true, nil
		}
		existing, err = s.registry.FindByOperationNo(ctx, op.OperationNo)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, ledgerservice.ErrOperationInFlight
		}
	}
	if existing.Terminal() {
		if err := s.cache.SetOperation(ctx, existing); err != nil {
			zap.L().Debug("can't cache operation result", zap.Error(err))
		}
		return existing, false, nil
	}
	claimed, err := s.registry.ClaimStalePending(ctx, op.OperationNo, time.Now().Add(-s.pendingTTL))
	if err != nil {
		return nil, false, err
	}
	if !claimed {
		return nil, false, ledgerservice.ErrOperationInFlight
	}
	return nil, true, nil
}

// compensate credits the debited amount back under a reversal operation
// number derived from the parent, so a crash between debit and reversal is
// replayable without double-compensating.
func (s *Service) compensate(ctx context.Context, operationNo string, cardNumber string, amount int64) error {
	reversalNo, err := legNo(operationNo, "reversal")
	if err != nil {
		return err
	}
	if _, err := s.ledger.Credit(ctx, cardNumber, amount, reversalNo); err != nil {
		zap.L().Error("compensation failed, operation stays pending",
			zap.String("operation_no", operationNo), zap.Error(err))
		return err
	}
	return nil
}

// fail records the terminal failed status for non-retryable errors and
// passes retryable ones through with the operation still pending.
func (s *Service) fail(ctx context.Context, operationNo string, cause error) error {
	if ledgerservice.Retryable(cause) {
		return cause
	}
	op, err := s.registry.MarkFailed(ctx, operationNo, failReason(cause))
	if err != nil {
		return err
	}
	if op != nil {
		if err := s.cache.SetOperation(ctx, op); err != nil {
			zap.L().Debug("can't cache operation result", zap.Error(err))
		}
	}
	return cause
}

func (s *Service) succeed(ctx context.Context, operationNo string, resultBalance int64) (*domain.Operation, error) {
	op, err := s.registry.MarkSuccess(ctx, operationNo, resultBalance)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, op, operationNo)
}

func (s *Service) finish(ctx context.Context, op *domain.Operation, operationNo string) (*domain.Operation, error) {
	if op == nil {
		// lost the terminal transition to a concurrent retry; its result
		// is authoritative
		committed, err := s.registry.FindByOperationNo(ctx, operationNo)
		if err != nil {
			return nil, err
		}
		if committed == nil {
			return nil, ledgerservice.ErrOperationInFlight
		}
		op = committed
	}
	if err := s.cache.SetOperation(ctx, op); err != nil {
		zap.L().Debug("can't cache operation result", zap.Error(err))
	}
	return op, nil
}

// replay surfaces the recorded terminal outcome unchanged.
func (s *Service) replay(op *domain.Operation) (*domain.Operation, error) {
	if op.Status == domain.OperationStatusFailed {
		reason := ""
		if op.FailReason != nil {
			reason = *op.FailReason
		}
		return nil, replayErr(reason)
	}
	return op, nil
}

func failReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOperation):
		return ledgerservice.ReasonInvalidOperation
	case errors.Is(err, ErrUnknownMerchant):
		return ledgerservice.ReasonUnknownMerchant
	}
	return err.Error()
}

func replayErr(reason string) error {
	switch reason {
	case ledgerservice.ReasonInvalidOperation:
		return ErrInvalidOperation
	case ledgerservice.ReasonUnknownMerchant:
		return ErrUnknownMerchant
	}
	return ledgerservice.ReasonToErr(reason)
}

package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/cardpay/backend/internal/config"
	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/pg"
	"go.uber.org/zap"
)

// LedgerStore is the durable balance table. ApplyDelta must be a single
// compare-and-swap: it returns (nil, nil) when the version raced or the
// predicate failed, never a partially applied change.
type LedgerStore interface {
	GetByCardNumber(ctx context.Context, cardNumber string) (*domain.Balance, error)
	Create(ctx context.Context, cardNumber string) (*domain.Balance, error)
	ApplyDelta(ctx context.Context, cardNumber string, delta int64, version int64) (*domain.Balance, error)
}

// OperationRegistry keys every mutation by its operation number and holds
// the terminal result for replays.
type OperationRegistry interface {
	Reserve(ctx context.Context, op *domain.Operation) (bool, error)
	FindByOperationNo(ctx context.Context, operationNo string) (*domain.Operation, error)
	MarkSuccess(ctx context.Context, operationNo string, resultBalance int64) (*domain.Operation, error)
	MarkFailed(ctx context.Context, operationNo string, reason string) (*domain.Operation, error)
	ClaimStalePending(ctx context.Context, operationNo string, cutoff time.Time) (bool, error)
}

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnknownCard       = errors.New("unknown card")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStorageConflict   = errors.New("storage conflict")
	ErrOperationInFlight = errors.New("operation in flight")
)

// fail reasons recorded on terminal failed operations; ReasonToErr maps
// them back so a replayed operation surfaces the same error.
const (
	ReasonInvalidAmount     = "invalid amount"
	ReasonUnknownCard       = "unknown card"
	ReasonInsufficientFunds = "insufficient funds"
	ReasonInvalidOperation  = "invalid operation"
	ReasonUnknownMerchant   = "unknown merchant"
)

func ReasonToErr(reason string) error {
	switch reason {
	case ReasonInvalidAmount:
		return ErrInvalidAmount
	case ReasonUnknownCard:
		return ErrUnknownCard
	case ReasonInsufficientFunds:
		return ErrInsufficientFunds
	}
	return errors.New(reason)
}

// Retryable reports whether the caller may safely replay the operation
// number: the operation has no terminal record yet.
func Retryable(err error) bool {
	return errors.Is(err, ErrStorageConflict) || errors.Is(err, ErrOperationInFlight)
}

type Service struct {
	store      LedgerStore
	registry   OperationRegistry
	txManager  pg.TXManager
	maxAmount  int64
	retries    int
	retryDelay time.Duration
	pendingTTL time.Duration
}

func New(store LedgerStore, registry OperationRegistry, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		store:      store,
		registry:   registry,
		txManager:  txManager,
		maxAmount:  cfg.MaxAmount,
		retries:    cfg.StorageRetries,
		retryDelay: cfg.StorageRetryDelay,
		pendingTTL: cfg.PendingTTL,
	}
}

// Credit increases the card balance by amount, exactly once per operation
// number. A replay of a terminal operation returns the recorded result
// without touching the balance.
func (s *Service) Credit(ctx context.Context, cardNumber string, amount int64, operationNo string) (*domain.Balance, error) {
	return s.apply(ctx, cardNumber, amount, operationNo, domain.OperationKindCredit)
}

// Debit decreases the card balance by amount. The insufficient-funds check
// and the subtraction commit as one atomic step.
func (s *Service) Debit(ctx context.Context, cardNumber string, amount int64, operationNo string) (*domain.Balance, error) {
	return s.apply(ctx, cardNumber, amount, operationNo, domain.OperationKindDebit)
}

// Read returns the current balance without blocking writers.
func (s *Service) Read(ctx context.Context, cardNumber string) (*domain.Balance, error) {
	balance, err := s.store.GetByCardNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, ErrUnknownCard
	}
	return balance, nil
}

// CreateBalance issues the zero balance row for a freshly issued card.
func (s *Service) CreateBalance(ctx context.Context, cardNumber string) (*domain.Balance, error) {
	return s.store.Create(ctx, cardNumber)
}

func (s *Service) apply(ctx context.Context, cardNumber string, amount int64, operationNo string, kind string) (*domain.Balance, error) {
	if amount <= 0 || amount > s.maxAmount {
		return nil, ErrInvalidAmount
	}

	replay, proceed, err := s.reserve(ctx, cardNumber, amount, operationNo, kind)
	if err != nil {
		return nil, err
	}
	if !proceed {
		return s.replayResult(replay)
	}

	delta := amount
	if kind == domain.OperationKindDebit {
		delta = -amount
	}

	for attempt := 0; attempt <= s.retries; attempt++ {
		balance, err := s.commitDelta(ctx, cardNumber, delta, operationNo)
		if err == nil {
			return balance, nil
		}
		if !errors.Is(err, ErrStorageConflict) {
			return nil, err
		}
		zap.L().Info("balance version raced, retrying",
			zap.String("operation_no", operationNo), zap.Int("attempt", attempt))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
	// operation stays pending and safely replayable
	return nil, ErrStorageConflict
}

// reserve wins or resolves the idempotency slot for operationNo.
// It returns either the prior operation to replay, or proceed=true when
// the caller owns the pending record.
func (s *Service) reserve(ctx context.Context, cardNumber string, amount int64, operationNo string, kind string) (*domain.Operation, bool, error) {
	existing, err := s.registry.FindByOperationNo(ctx, operationNo)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		op := &domain.Operation{
			OperationNo: operationNo,
			Kind:        kind,
			CardNumber:  cardNumber,
			Amount:      amount,
			EffectTime:  time.Now(),
		}
		won, err := s.registry.Reserve(ctx, op)
		if err != nil {
			return nil, false, err
		}
		if won {
			return nil, true, nil
		}
		existing, err = s.registry.FindByOperationNo(ctx, operationNo)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, ErrOperationInFlight
		}
	}
	if existing.Terminal() {
		return existing, false, nil
	}
	claimed, err := s.registry.ClaimStalePending(ctx, operationNo, time.Now().Add(-s.pendingTTL))
	if err != nil {
		return nil, false, err
	}
	if !claimed {
		return nil, false, ErrOperationInFlight
	}
	return nil, true, nil
}

// commitDelta applies the balance change and the terminal status in one
// transaction: both commit or neither does.
func (s *Service) commitDelta(ctx context.Context, cardNumber string, delta int64, operationNo string) (*domain.Balance, error) {
	balance, err := s.store.GetByCardNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if balance == nil {
		return nil, s.failOperation(ctx, operationNo, ReasonUnknownCard, ErrUnknownCard)
	}
	if balance.TotalBalance+delta < 0 {
		return nil, s.failOperation(ctx, operationNo, ReasonInsufficientFunds, ErrInsufficientFunds)
	}

	var updated *domain.Balance
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		applied, err := s.store.ApplyDelta(ctx, cardNumber, delta, balance.Version)
		if err != nil {
			return err
		}
		if applied == nil {
			return ErrStorageConflict
		}
		if _, err := s.registry.MarkSuccess(ctx, operationNo, applied.TotalBalance); err != nil {
			return err
		}
		updated = applied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) failOperation(ctx context.Context, operationNo string, reason string, cause error) error {
	if _, err := s.registry.MarkFailed(ctx, operationNo, reason); err != nil {
		zap.L().Error("can't mark operation failed", zap.String("operation_no", operationNo), zap.Error(err))
		return err
	}
	return cause
}

func (s *Service) replayResult(op *domain.Operation) (*domain.Balance, error) {
	if op.Status == domain.OperationStatusFailed {
		reason := ""
		if op.FailReason != nil {
			reason = *op.FailReason
		}
		return nil, ReasonToErr(reason)
	}
	balance := &domain.Balance{CardNumber: op.CardNumber}
	if op.ResultBalance != nil {
		balance.TotalBalance = *op.ResultBalance
	}
	return balance, nil
}

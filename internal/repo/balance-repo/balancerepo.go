package balancerepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByCardNumber(ctx context.Context, cardNumber string) (*domain.Balance, error) {
	query := `
        SELECT id, card_number, total_balance, version, withdraw_amount, withdraw_time
        FROM balances
        WHERE card_number = $1 AND deleted_at IS NULL
    `
	row := r.db.QueryRow(ctx, query, cardNumber)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.CardNumber, &balance.TotalBalance, &balance.Version, &balance.WithdrawAmount, &balance.WithdrawTime)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) Create(ctx context.Context, cardNumber string) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (card_number, total_balance, version)
        VALUES ($1, 0, 0)
        RETURNING id, card_number, total_balance, version, withdraw_amount, withdraw_time
    `
	row := r.db.QueryRow(ctx, query, cardNumber)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.CardNumber, &balance.TotalBalance, &balance.Version, &balance.WithdrawAmount, &balance.WithdrawTime)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// ApplyDelta commits a balance change as one compare-and-swap: the update
// lands only if the caller's version is still current and the resulting
// balance stays non-negative. A nil result with nil error means the
// predicate did not match; the caller re-reads and classifies the miss.
func (r *Repository) ApplyDelta(ctx context.Context, cardNumber string, delta int64, version int64) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET total_balance = total_balance + $2, version = version + 1, updated_at = now()
        WHERE card_number = $1 AND version = $3 AND deleted_at IS NULL AND total_balance + $2 >= 0
        RETURNING id, card_number, total_balance, version, withdraw_amount, withdraw_time
    `
	row := r.db.QueryRow(ctx, query, cardNumber, delta, version)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.CardNumber, &balance.TotalBalance, &balance.Version, &balance.WithdrawAmount, &balance.WithdrawTime)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to apply balance delta", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) SetWithdrawMeta(ctx context.Context, cardNumber string, amount int64, at time.Time) error {
	query := `
        UPDATE balances
        SET withdraw_amount = $2, withdraw_time = $3, updated_at = now()
        WHERE card_number = $1 AND deleted_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, cardNumber, amount, at); err != nil {
		zap.L().Error("failed to set withdraw meta", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Trash(ctx context.Context, cardNumber string) error {
	query := `
        UPDATE balances
        SET deleted_at = now(), updated_at = now()
        WHERE card_number = $1 AND deleted_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, cardNumber); err != nil {
		zap.L().Error("failed to trash balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Restore(ctx context.Context, cardNumber string) error {
	query := `
        UPDATE balances
        SET deleted_at = NULL, updated_at = now()
        WHERE card_number = $1 AND deleted_at IS NOT NULL
    `
	if _, err := r.db.Exec(ctx, query, cardNumber); err != nil {
		zap.L().Error("failed to restore balance", zap.Error(err))
		return err
	}
	return nil
}

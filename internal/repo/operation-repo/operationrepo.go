package operationrepo

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

func scanOperation(row pgx.Row) (*domain.Operation, error) {
	var op domain.Operation
	err := row.Scan(
		&op.ID, &op.OperationNo, &op.Kind, &op.CardNumber, &op.DestCardNumber,
		&op.MerchantID, &op.Method, &op.Amount, &op.Status, &op.ResultBalance,
		&op.FailReason, &op.EffectTime, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// Reserve inserts the operation as pending. The unique index on
// operation_no makes this the linearization point: exactly one concurrent
// caller gets true, every other caller gets false and must look up the
// winner's record.
func (r *Repository) Reserve(ctx context.Context, op *domain.Operation) (bool, error) {
	query := `
        INSERT INTO operations (operation_no, kind, card_number, dest_card_number, merchant_id, method, amount, status, effect_time)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', $8)
        ON CONFLICT (operation_no) DO NOTHING
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		op.OperationNo, op.Kind, op.CardNumber, op.DestCardNumber,
		op.MerchantID, op.Method, op.Amount, op.EffectTime,
	)
	err := row.Scan(&op.ID, &op.CreatedAt, &op.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("failed to reserve operation", zap.Error(err))
		return false, err
	}
	op.Status = domain.OperationStatusPending
	return true, nil
}

func (r *Repository) FindByOperationNo(ctx context.Context, operationNo string) (*domain.Operation, error) {
	query := `
        SELECT id, operation_no, kind, card_number, dest_card_number, merchant_id, method, amount, status, result_balance, fail_reason, effect_time, created_at, updated_at
        FROM operations
        WHERE operation_no = $1 AND deleted_at IS NULL
    `
	op, err := scanOperation(r.db.QueryRow(ctx, query, operationNo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find operation", zap.Error(err))
		return nil, err
	}
	return op, nil
}

// MarkSuccess commits the terminal success status. The status = 'pending'
// guard makes the transition happen at most once; a nil result means the
// record was already terminal.
func (r *Repository) MarkSuccess(ctx context.Context, operationNo string, resultBalance int64) (*domain.Operation, error) {
	query := `
        UPDATE operations
        SET status = 'success', result_balance = $2, updated_at = now()
        WHERE operation_no = $1 AND status = 'pending' AND deleted_at IS NULL
        RETURNING id, operation_no, kind, card_number, dest_card_number, merchant_id, method, amount, status, result_balance, fail_reason, effect_time, created_at, updated_at
    `
	op, err := scanOperation(r.db.QueryRow(ctx, query, operationNo, resultBalance))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to mark operation success", zap.Error(err))
		return nil, err
	}
	return op, nil
}

func (r *Repository) MarkFailed(ctx context.Context, operationNo string, reason string) (*domain.Operation, error) {
	query := `
        UPDATE operations
        SET status = 'failed', fail_reason = $2, updated_at = now()
        WHERE operation_no = $1 AND status = 'pending' AND deleted_at IS NULL
        RETURNING id, operation_no, kind, card_number, dest_card_number, merchant_id, method, amount, status, result_balance, fail_reason, effect_time, created_at, updated_at
    `
	op, err := scanOperation(r.db.QueryRow(ctx, query, operationNo, reason))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to mark operation failed", zap.Error(err))
		return nil, err
	}
	return op, nil
}

// AttachMerchant records merchant attribution on a purchase operation once
// the merchant is resolved.
func (r *Repository) AttachMerchant(ctx context.Context, operationNo string, merchantID int) error {
	query := `
        UPDATE operations
        SET merchant_id = $2, updated_at = now()
        WHERE operation_no = $1 AND deleted_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, operationNo, merchantID); err != nil {
		zap.L().Error("failed to attach merchant", zap.Error(err))
		return err
	}
	return nil
}

// ClaimStalePending bumps updated_at on a pending record that has not
// moved since the cutoff. Only one of several recovering workers wins the
// claim.
func (r *Repository) ClaimStalePending(ctx context.Context, operationNo string, cutoff time.Time) (bool, error) {
	query := `
        UPDATE operations
        SET updated_at = now()
        WHERE operation_no = $1 AND status = 'pending' AND updated_at < $2 AND deleted_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, operationNo, cutoff)
	if err != nil {
		zap.L().Error("failed to claim stale operation", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindStalePending(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Operation, error) {
	query := `
        SELECT id, operation_no, kind, card_number, dest_card_number, merchant_id, method, amount, status, result_balance, fail_reason, effect_time, created_at, updated_at
        FROM operations
        WHERE status = 'pending' AND updated_at < $1 AND deleted_at IS NULL
        ORDER BY updated_at
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, limit)
	if err != nil {
		zap.L().Error("failed to fetch stale operations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			zap.L().Error("failed to scan operation row", zap.Error(err))
			return nil, err
		}
		ops = append(ops, *op)
	}
	return ops, rows.Err()
}

func (r *Repository) ListByCard(ctx context.Context, cardNumber string) ([]domain.Operation, error) {
	query := `
        SELECT id, operation_no, kind, card_number, dest_card_number, merchant_id, method, amount, status, result_balance, fail_reason, effect_time, created_at, updated_at
        FROM operations
        WHERE (card_number = $1 OR dest_card_number = $1) AND deleted_at IS NULL
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, cardNumber)
	if err != nil {
		zap.L().Error("failed to fetch operations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			zap.L().Error("failed to scan operation row", zap.Error(err))
			return nil, err
		}
		ops = append(ops, *op)
	}
	return ops, rows.Err()
}

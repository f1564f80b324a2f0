package merchantrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error) {
	query := `
        INSERT INTO merchants (name, api_key, user_id, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, merchant.Name, merchant.APIKey, merchant.UserID, merchant.Status).
		Scan(&merchant.ID, &merchant.CreatedAt, &merchant.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save merchant", zap.Error(err))
		return nil, err
	}
	return merchant, nil
}

func (r *Repository) FindByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error) {
	query := `
        SELECT id, name, api_key, user_id, status, created_at, updated_at
        FROM merchants
        WHERE api_key = $1 AND deleted_at IS NULL
    `
	row := r.db.QueryRow(ctx, query, apiKey)
	var merchant domain.Merchant
	err := row.Scan(&merchant.ID, &merchant.Name, &merchant.APIKey, &merchant.UserID, &merchant.Status, &merchant.CreatedAt, &merchant.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find merchant", zap.Error(err))
		return nil, err
	}
	return &merchant, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Merchant, error) {
	query := `
        SELECT id, name, api_key, user_id, status, created_at, updated_at
        FROM merchants
        WHERE id = $1 AND deleted_at IS NULL
    `
	row := r.db.QueryRow(ctx, query, id)
	var merchant domain.Merchant
	err := row.Scan(&merchant.ID, &merchant.Name, &merchant.APIKey, &merchant.UserID, &merchant.Status, &merchant.CreatedAt, &merchant.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find merchant", zap.Error(err))
		return nil, err
	}
	return &merchant, nil
}

package cardrepo

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

func (r *Repository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `
        INSERT INTO cards (user_id, card_number, card_provider)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, card.UserID, card.CardNumber, card.Provider).
		Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) FindByCardNumber(ctx context.Context, cardNumber string) (*domain.Card, error) {
	query := `
        SELECT id, user_id, card_number, card_provider, created_at, updated_at, deleted_at
        FROM cards
        WHERE card_number = $1
    `
	row := r.db.QueryRow(ctx, query, cardNumber)
	var card domain.Card
	err := row.Scan(&card.ID, &card.UserID, &card.CardNumber, &card.Provider, &card.CreatedAt, &card.UpdatedAt, &card.DeletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find card", zap.Error(err))
		return nil, err
	}
	return &card, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Card, error) {
	query := `
        SELECT id, user_id, card_number, card_provider, created_at, updated_at, deleted_at
        FROM cards
        WHERE user_id = $1 AND deleted_at IS NULL
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var card domain.Card
		err := rows.Scan(&card.ID, &card.UserID, &card.CardNumber, &card.Provider, &card.CreatedAt, &card.UpdatedAt, &card.DeletedAt)
		if err != nil {
			zap.L().Error("failed to scan card row", zap.Error(err))
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (r *Repository) Trash(ctx context.Context, cardNumber string) error {
	query := `
        UPDATE cards
        SET deleted_at = now(), updated_at = now()
        WHERE card_number = $1 AND deleted_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, cardNumber); err != nil {
		zap.L().Error("failed to trash card", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Restore(ctx context.Context, cardNumber string) error {
	query := `
        UPDATE cards
        SET deleted_at = NULL, updated_at = now()
        WHERE card_number = $1 AND deleted_at IS NOT NULL
    `
	if _, err := r.db.Exec(ctx, query, cardNumber); err != nil {
		zap.L().Error("failed to restore card", zap.Error(err))
		return err
	}
	return nil
}

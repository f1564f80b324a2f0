package cardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/cardpay/backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves the card",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
					AddRow(1, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cards`)).
					WithArgs(1, "4561261212345467", "visa").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cards`)).
					WithArgs(1, "4561261212345467", "visa").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			card := &domain.Card{UserID: 1, CardNumber: "4561261212345467", Provider: "visa"}
			saved, err := repo.Create(context.Background(), card)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, saved.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByCardNumber(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Returns the card including trashed ones", func(t *testing.T) {
		deletedAt := now
		rows := pgxmock.NewRows([]string{"id", "user_id", "card_number", "card_provider", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "4561261212345467", "visa", now, now, &deletedAt)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM cards`)).
			WithArgs("4561261212345467").
			WillReturnRows(rows)

		card, err := repo.FindByCardNumber(context.Background(), "4561261212345467")
		assert.NoError(t, err)
		assert.NotNil(t, card)
		assert.NotNil(t, card.DeletedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown card returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM cards`)).
			WithArgs("4561261212345475").
			WillReturnError(pgx.ErrNoRows)

		card, err := repo.FindByCardNumber(context.Background(), "4561261212345475")
		assert.NoError(t, err)
		assert.Nil(t, card)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Returns active cards newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "card_number", "card_provider", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, 1, "4561261212345475", "visa", now, now, nil).
			AddRow(1, 1, "4561261212345467", "visa", now.Add(-time.Hour), now, nil)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND deleted_at IS NULL`)).
			WithArgs(1).
			WillReturnRows(rows)

		cards, err := repo.FindByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, cards, 2)
		assert.Equal(t, "4561261212345475", cards[0].CardNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND deleted_at IS NULL`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		cards, err := repo.FindByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, cards)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_TrashRestore(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Trash soft-deletes the card", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET deleted_at = now()`)).
			WithArgs("4561261212345467").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Trash(context.Background(), "4561261212345467")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Restore clears the deletion mark", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`SET deleted_at = NULL`)).
			WithArgs("4561261212345467").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Restore(context.Background(), "4561261212345467")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package cardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/pg"
)

const cardNo = "4561261212345467"

func NewMock(t *testing.T) (*Service, *MockCardRepo, *MockBalanceRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	cardRepo := NewMockCardRepo(ctrl)
	balanceRepo := NewMockBalanceRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(cardRepo, balanceRepo, txManager)
	defer ctrl.Finish()
	return service, cardRepo, balanceRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestIssueCard(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(cardRepo *MockCardRepo, balanceRepo *MockBalanceRepo)
		expectedError error
	}{
		{
			name: "Creates the card and its zero balance",
			prepareMock: func(cardRepo *MockCardRepo, balanceRepo *MockBalanceRepo) {
				cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).Return(nil, nil)
				cardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, card *domain.Card) (*domain.Card, error) {
						card.ID = 1
						return card, nil
					})
				balanceRepo.EXPECT().Create(gomock.Any(), cardNo).Return(&domain.Balance{CardNumber: cardNo}, nil)
			},
		},
		{
			name: "Duplicate card number is rejected",
			prepareMock: func(cardRepo *MockCardRepo, _ *MockBalanceRepo) {
				cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).
					Return(&domain.Card{ID: 1, CardNumber: cardNo}, nil)
			},
			expectedError: ErrCardAlreadyExists,
		},
		{
			name: "Balance creation failure rolls the card back",
			prepareMock: func(cardRepo *MockCardRepo, balanceRepo *MockBalanceRepo) {
				cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).Return(nil, nil)
				cardRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Card{ID: 1}, nil)
				balanceRepo.EXPECT().Create(gomock.Any(), cardNo).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, cardRepo, balanceRepo, txManager := NewMock(t)
			passthroughTx(txManager)
			tt.prepareMock(cardRepo, balanceRepo)

			card, err := service.IssueCard(context.Background(), 1, cardNo, "visa")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, card)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, cardNo, card.CardNumber)
			}
		})
	}
}

func TestGetCards(t *testing.T) {
	service, cardRepo, _, _ := NewMock(t)

	t.Run("Returns the user's cards", func(t *testing.T) {
		cards := []domain.Card{{ID: 1, UserID: 1, CardNumber: cardNo}}
		cardRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(cards, nil)

		got, err := service.GetCards(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, cards, got)
	})

	t.Run("Storage error passes through", func(t *testing.T) {
		cardRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))

		_, err := service.GetCards(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestTrashCard(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		prepareMock   func(cardRepo *MockCardRepo, balanceRepo *MockBalanceRepo)
		expectedError error
	}{
		{
			name: "Trashes the card and its balance",
			prepareMock: func(cardRepo *MockCardRepo, balanceRepo *MockBalanceRepo) {
				cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).
					Return(&domain.Card{ID: 1, UserID: 1, CardNumber: cardNo}, nil)
				cardRepo.EXPECT().Trash(gomock.Any(), cardNo).Return(nil)
				balanceRepo.EXPECT().Trash(gomock.Any(), cardNo).Return(nil)
			},
		},
		{
			name: "Already trashed card is a no-op",
			prepareMock: func(cardRepo *MockCardRepo, _ *MockBalanceRepo) {
				cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).
					Return(&domain.Card{ID: 1, UserID: 1, CardNumber: cardNo, DeletedAt: &now}, nil)
			},
		},
		{
			name: "Unknown card",
			prepareMock: func(cardRepo *MockCardRepo, _ *MockBalanceRepo) {
				cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).Return(nil, nil)
			},
			expectedError: ErrCardNotFound,
		},
		{
			name: "Card owned by another user",
			prepareMock: func(cardRepo *MockCardRepo, _ *MockBalanceRepo) {
				cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).
					Return(&domain.Card{ID: 1, UserID: 2, CardNumber: cardNo}, nil)
			},
			expectedError: ErrCardNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, cardRepo, balanceRepo, txManager := NewMock(t)
			passthroughTx(txManager)
			tt.prepareMock(cardRepo, balanceRepo)

			err := service.TrashCard(context.Background(), 1, cardNo)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestoreCard(t *testing.T) {
	now := time.Now()

	t.Run("Restores the trashed card and its balance", func(t *testing.T) {
		service, cardRepo, balanceRepo, txManager := NewMock(t)
		passthroughTx(txManager)
		cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).
			Return(&domain.Card{ID: 1, UserID: 1, CardNumber: cardNo, DeletedAt: &now}, nil)
		cardRepo.EXPECT().Restore(gomock.Any(), cardNo).Return(nil)
		balanceRepo.EXPECT().Restore(gomock.Any(), cardNo).Return(nil)

		err := service.RestoreCard(context.Background(), 1, cardNo)
		assert.NoError(t, err)
	})

	t.Run("Active card is a no-op", func(t *testing.T) {
		service, cardRepo, _, _ := NewMock(t)
		cardRepo.EXPECT().FindByCardNumber(gomock.Any(), cardNo).
			Return(&domain.Card{ID: 1, UserID: 1, CardNumber: cardNo}, nil)

		err := service.RestoreCard(context.Background(), 1, cardNo)
		assert.NoError(t, err)
	})
}

package cardservice

import (
	"context"
	"errors"

	"github.com/cardpay/backend/internal/domain"
	"github.com/cardpay/backend/internal/pg"
	"go.uber.org/zap"
)

type CardRepo interface {
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*domain.Card, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Card, error)
	Trash(ctx context.Context, cardNumber string) error
	Restore(ctx context.Context, cardNumber string) error
}

type BalanceRepo interface {
	Create(ctx context.Context, cardNumber string) (*domain.Balance, error)
	Trash(ctx context.Context, cardNumber string) error
	Restore(ctx context.Context, cardNumber string) error
}

var (
	ErrCardAlreadyExists = errors.New("card already exists")
	ErrCardNotFound      = errors.New("card not found")
	ErrCardNotOwned      = errors.New("card not owned by user")
)

type Service struct {
	cardRepo    CardRepo
	balanceRepo BalanceRepo
	txManager   pg.TXManager
}

func New(cardRepo CardRepo, balanceRepo BalanceRepo, txManager pg.TXManager) *Service {
	return &Service{
		cardRepo:    cardRepo,
		balanceRepo: balanceRepo,
		txManager:   txManager,
	}
}

// IssueCard creates the card and its zero balance row as one unit.
func (s *Service) IssueCard(ctx context.Context, userID int, cardNumber string, provider string) (*domain.Card, error) {
	existing, err := s.cardRepo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("card already exists", zap.String("card_number", cardNumber))
		return nil, ErrCardAlreadyExists
	}

	card := &domain.Card{
		UserID:     userID,
		CardNumber: cardNumber,
		Provider:   provider,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.cardRepo.Create(ctx, card); err != nil {
			return err
		}
		_, err := s.balanceRepo.Create(ctx, cardNumber)
		return err
	})
	if err != nil {
		zap.L().Error("can't issue card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (s *Service) GetCards(ctx context.Context, userID int) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get cards", zap.Error(err))
		return nil, err
	}
	return cards, nil
}

// TrashCard soft-deletes the card and its balance row; the rows stay
// queryable for audit and can be restored.
func (s *Service) TrashCard(ctx context.Context, userID int, cardNumber string) error {
	card, err := s.owned(ctx, userID, cardNumber)
	if err != nil {
		return err
	}
	if card.DeletedAt != nil {
		return nil
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.cardRepo.Trash(ctx, cardNumber); err != nil {
			return err
		}
		return s.balanceRepo.Trash(ctx, cardNumber)
	})
}

func (s *Service) RestoreCard(ctx context.Context, userID int, cardNumber string) error {
	card, err := s.owned(ctx, userID, cardNumber)
	if err != nil {
		return err
	}
	if card.DeletedAt == nil {
		return nil
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.cardRepo.Restore(ctx, cardNumber); err != nil {
			return err
		}
		return s.balanceRepo.Restore(ctx, cardNumber)
	})
}

func (s *Service) owned(ctx context.Context, userID int, cardNumber string) (*domain.Card, error) {
	card, err := s.cardRepo.FindByCardNumber(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	if card.UserID != userID {
		return nil, ErrCardNotOwned
	}
	return card, nil
}

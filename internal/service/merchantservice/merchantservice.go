package merchantservice

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cardpay/backend/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error)
	FindByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error)
	FindByID(ctx context.Context, id int) (*domain.Merchant, error)
}

var ErrMerchantNotFound = errors.New("merchant not found")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Register creates an active merchant with a generated API key.
func (s *Service) Register(ctx context.Context, userID int, name string) (*domain.Merchant, error) {
	merchant := &domain.Merchant{
		Name:   name,
		APIKey: uuid.NewString(),
		UserID: userID,
		Status: domain.MerchantStatusActive,
	}
	merchant, err := s.repo.Create(ctx, merchant)
	if err != nil {
		zap.L().Error("can't create merchant", zap.Error(err))
		return nil, err
	}
	zap.L().Info("merchant registered", zap.String("name", name))
	return merchant, nil
}

func (s *Service) FindByAPIKey(ctx context.Context, apiKey string) (*domain.Merchant, error) {
	merchant, err := s.repo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, ErrMerchantNotFound
	}
	return merchant, nil
}

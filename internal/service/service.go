package service

import (
	"github.com/cardpay/backend/internal/config"
	"github.com/cardpay/backend/internal/pg"
	"github.com/cardpay/backend/internal/repo"
	"github.com/cardpay/backend/internal/service/authservice"
	"github.com/cardpay/backend/internal/service/cardservice"
	"github.com/cardpay/backend/internal/service/ledgerservice"
	"github.com/cardpay/backend/internal/service/merchantservice"
	"github.com/cardpay/backend/internal/service/paymentservice"
	"github.com/cardpay/backend/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	CardService     *cardservice.Service
	MerchantService *merchantservice.Service
	LedgerService   *ledgerservice.Service
	PaymentService  *paymentservice.Service
}

func New(
	repos *repo.Repositories,
	txManager pg.TXManager,
	resultCache paymentservice.ResultCache,
	jwtService auth.JWTServiceInterface,
	cfg *config.Config,
) *Services {
	ledger := ledgerservice.New(repos.BalanceRepo, repos.OperationRepo, txManager, cfg)

	return &Services{
		AuthService:     authservice.New(repos.UserRepo, &auth.HashService{}, jwtService),
		CardService:     cardservice.New(repos.CardRepo, repos.BalanceRepo, txManager),
		MerchantService: merchantservice.New(repos.MerchantRepo),
		LedgerService:   ledger,
		PaymentService: paymentservice.New(
			ledger,
			repos.OperationRepo,
			repos.MerchantRepo,
			repos.BalanceRepo,
			resultCache,
			txManager,
			cfg,
		),
	}
}

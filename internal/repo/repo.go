package repo

import (
	"github.com/cardpay/backend/internal/pg"
	balancerepo "github.com/cardpay/backend/internal/repo/balance-repo"
	cardrepo "github.com/cardpay/backend/internal/repo/card-repo"
	merchantrepo "github.com/cardpay/backend/internal/repo/merchant-repo"
	operationrepo "github.com/cardpay/backend/internal/repo/operation-repo"
	userrepo "github.com/cardpay/backend/internal/repo/user-repo"
)

// Repositories exposes the concrete repos; each service narrows them to
// the interface it declares.
type Repositories struct {
	UserRepo      *userrepo.Repository
	CardRepo      *cardrepo.Repository
	BalanceRepo   *balancerepo.Repository
	OperationRepo *operationrepo.Repository
	MerchantRepo  *merchantrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		CardRepo:      cardrepo.New(conn),
		BalanceRepo:   balancerepo.New(conn),
		OperationRepo: operationrepo.New(conn),
		MerchantRepo:  merchantrepo.New(conn),
	}
}

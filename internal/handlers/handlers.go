package handlers

import (
	"net/http"

	_ "github.com/cardpay/backend/docs"
	authhandlers "github.com/cardpay/backend/internal/handlers/auth"
	cardhandlers "github.com/cardpay/backend/internal/handlers/card"
	merchanthandlers "github.com/cardpay/backend/internal/handlers/merchant"
	paymenthandlers "github.com/cardpay/backend/internal/handlers/payment"
	"github.com/cardpay/backend/internal/service"
	"github.com/cardpay/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CardHandler interface {
	CreateCard(w http.ResponseWriter, r *http.Request)
	GetCards(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetOperations(w http.ResponseWriter, r *http.Request)
	TrashCard(w http.ResponseWriter, r *http.Request)
	RestoreCard(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Topup(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
}

type MerchantHandler interface {
	CreateMerchant(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CardHandler     CardHandler
	PaymentHandler  PaymentHandler
	MerchantHandler MerchantHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CardHandler:     cardhandlers.New(s.CardService, s.LedgerService, s.PaymentService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		MerchantHandler: merchanthandlers.New(s.MerchantService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/cards", func(r chi.Router) {
				r.Post("/", h.CardHandler.CreateCard)
				r.Get("/", h.CardHandler.GetCards)
				r.Get("/{number}/balance", h.CardHandler.GetBalance)
				r.Get("/{number}/operations", h.CardHandler.GetOperations)
				r.Delete("/{number}", h.CardHandler.TrashCard)
				r.Post("/{number}/restore", h.CardHandler.RestoreCard)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/topup", h.PaymentHandler.Topup)
				r.Post("/withdraw", h.PaymentHandler.Withdraw)
				r.Post("/transfer", h.PaymentHandler.Transfer)
				r.Post("/purchase", h.PaymentHandler.Purchase)
			})
			r.Post("/merchants", h.MerchantHandler.CreateMerchant)
		})
	})

	return r
}

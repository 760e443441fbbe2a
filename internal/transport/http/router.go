package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-docs-auth/internal/application/account"
	"github.com/go-docs-auth/internal/application/session"
	"github.com/go-docs-auth/internal/config"
	"github.com/go-docs-auth/internal/transport/http/handler"
	appmiddleware "github.com/go-docs-auth/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10. Each account request sends an email.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10, cfg.TrustProxy)

	accountDeps := account.ServiceDeps{Admin: deps.Admin, UsersCollection: deps.UsersCollection}
	if deps.Publisher != nil {
		accountDeps.Publisher = deps.Publisher
	}
	accountSvc := account.NewService(accountDeps)

	sessionDeps := session.ServiceDeps{Admin: deps.Admin, Session: deps.Session, UsersCollection: deps.UsersCollection}
	if deps.Signer != nil {
		sessionDeps.Signer = deps.Signer
	}
	sessionSvc := session.NewService(sessionDeps)

	healthH := handler.NewHealthHandler()
	accountH := handler.NewAccountHandler(accountSvc)
	sessionH := handler.NewSessionHandler(sessionSvc, handler.CookieConfig{
		Name:   cfg.SessionCookieName,
		Secure: cfg.AppEnv == "production",
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/accounts", accountH.Create)
		r.With(sensitiveRL.Limit).Post("/sessions", sessionH.Create)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.SessionToken(cfg.SessionCookieName))

			r.Get("/sessions/current", sessionH.GetCurrent)
			r.Delete("/sessions/current", sessionH.Delete)
		})
	})

	return r
}

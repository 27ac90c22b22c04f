package wire

import (
	"time"

	"marrakech-tours/internal/adaptor"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/pkg/middleware"
	"marrakech-tours/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Tight limit on login attempts.
	authLimiter := middleware.NewRateLimiter(5, 15*time.Minute, config.App.Debug)

	r.With(authLimiter.Handler).Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)

	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/auth/user", authHandler.CurrentUser)
}

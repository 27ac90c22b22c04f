package wire

import (
	"time"

	"marrakech-tours/internal/adaptor"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/usecase"
	"marrakech-tours/pkg/database"
	"marrakech-tours/pkg/middleware"
	"marrakech-tours/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and the router. db is nil when
// the in-memory store is active.
func Wiring(repo *repository.Repository, db database.PgxIface, storageMode string, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, db, storageMode, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.Origins))

	// Rate limits are disabled entirely in debug mode.
	general := middleware.NewRateLimiter(200, time.Minute, config.App.Debug)
	r.Use(general.Handler)

	r.Get("/api/health", handler.Analytics.Health)

	wireAuth(r, handler.Auth, repo, config, logger)
	wireActivity(r, handler.Activity)
	wireBooking(r, handler.Booking)
	wireReview(r, handler.Review)
	wireAdmin(r, handler, repo, config, logger)

	return r
}

package main

import (
	"context"
	"log"
	"time"

	"marrakech-tours/cmd"
	"marrakech-tours/internal/data/memory"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/data/seed"
	"marrakech-tours/internal/wire"
	"marrakech-tours/pkg/database"
	"marrakech-tours/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Postgres when reachable, otherwise the volatile in-memory store so
	// the site stays up without a database.
	var (
		db          database.PgxIface
		repos       *repository.Repository
		storageMode string
	)

	if config.Database.URL != "" {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Warn("Database unreachable, falling back to in-memory store (data will not survive restarts)",
				zap.Error(err))
		}
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store (data will not survive restarts)")
	}

	if db != nil {
		defer db.Close()
		repos = repository.NewRepository(db, logger)
		storageMode = "postgres"
		logger.Info("Database connected successfully")
	} else {
		repos = memory.NewRepository(logger)
		storageMode = "memory"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed.EnsureDefaults(ctx, repos, config, logger); err != nil {
		logger.Fatal("Failed to seed defaults", zap.Error(err))
	}

	app := wire.Wiring(repos, db, storageMode, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/storefront-vocabulary/internal/cli"
	"github.com/saransh1220/storefront-vocabulary/internal/gateway"
	"github.com/saransh1220/storefront-vocabulary/internal/handler"
	"github.com/saransh1220/storefront-vocabulary/internal/repository"
	"github.com/saransh1220/storefront-vocabulary/internal/service"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/infrastructure/config"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/infrastructure/database"
	"github.com/saransh1220/storefront-vocabulary/internal/shared/logger"
	"github.com/saransh1220/storefront-vocabulary/pkg/migration"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	log.Info("connecting to database", "host", cfg.Database.Host, "name", cfg.Database.DBName)
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	if cfg.Migration.Auto {
		mc := cli.MigrationConfig(cfg)
		mc.Logger = log
		if err := migration.AutoMigrate(mc); err != nil {
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}
	}

	server := gateway.NewServer(cfg.Server.Port, buildHandler(db, cfg, log), gateway.ServerOptions{
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Logger:          log,
	})
	if err := server.Start(); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func buildHandler(db *sqlx.DB, cfg *config.Config, log *slog.Logger) http.Handler {
	vocabularyRepo := repository.NewVocabularyRepository(db)
	vocabularyService := service.NewVocabularyService(vocabularyRepo, log)
	vocabularyHandler := handler.NewVocabularyHandler(vocabularyService, log)

	return gateway.SetupRoutes(gateway.RouterConfig{
		VocabularyHandler: vocabularyHandler,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		Logger:            log,
	})
}

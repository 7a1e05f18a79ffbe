package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/volleyball-league/brackets"
	"github.com/Dosada05/volleyball-league/config"
	"github.com/Dosada05/volleyball-league/db"
	"github.com/Dosada05/volleyball-league/handlers"
	"github.com/Dosada05/volleyball-league/middleware"
	"github.com/Dosada05/volleyball-league/repositories"
	api "github.com/Dosada05/volleyball-league/routes"
	"github.com/Dosada05/volleyball-league/services"
	"github.com/Dosada05/volleyball-league/storage"
	"github.com/go-chi/chi/v5"
)

const rateLimitCleanupInterval = time.Minute

// @title Volleyball League API
// @version 1.0
// @description Read-only schedule, standings and playoff bracket API.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Int("active_season_id", cfg.ActiveSeasonID),
		slog.Bool("snapshots_enabled", cfg.R2.Enabled()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultPool, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	}

	wsHub := brackets.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	divisionRepo := repositories.NewPostgresDivisionRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	bracketRepo := repositories.NewPostgresBracketRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)

	divisionService := services.NewDivisionService(divisionRepo)
	playoffService := services.NewPlayoffService(
		divisionRepo,
		matchRepo,
		bracketRepo,
		teamRepo,
		brackets.NewSeededWinnersGenerator(),
		logger,
	)
	standingsService := services.NewStandingsService(divisionRepo, matchRepo, teamRepo)
	teamService := services.NewTeamService(teamRepo)
	logger.Info("Services initialized")

	if cfg.ActiveSeasonID > 0 {
		publisher := services.NewPlayoffPublisher(cfg.ActiveSeasonID, divisionRepo, playoffService, uploader, wsHub, logger)
		go publisher.Run(ctx, cfg.RefreshInterval)
	} else {
		logger.Info("playoff publisher disabled: ACTIVE_SEASON_ID not set")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)
	go func() {
		ticker := time.NewTicker(rateLimitCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := limiter.Cleanup(); n > 0 {
					logger.Debug("rate limiter cleanup", slog.Int("removed", n))
				}
			}
		}
	}()

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Division:  handlers.NewDivisionHandler(divisionService),
		Playoff:   handlers.NewPlayoffHandler(playoffService),
		Standings: handlers.NewStandingsHandler(standingsService),
		Team:      handlers.NewTeamHandler(teamService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, divisionService, cfg.CORSAllowedOrigins, logger),
	}, api.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:    limiter,
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}

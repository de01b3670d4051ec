package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"quicknotes/config"
	"quicknotes/handler"
	"quicknotes/repository"
	"quicknotes/services"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(os.Stdout, cfg.LogLevel, cfg.Release())
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	stores, err := repository.Open(ctx, cfg.Database)
	cancel()
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	logger.Info("store ready", "driver", stores.Driver)

	tokens, err := services.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("failed to create token service", "error", err)
		os.Exit(1)
	}

	userService := &usecase.UserService{
		UsersRepo: stores.Users,
		Tokens:    tokens,
		Logger:    logger,
	}

	var userCache *services.RedisUserCache
	if cfg.RedisURL != "" {
		userCache, err = services.NewRedisUserCache(cfg.RedisURL, cfg.UserCacheTTL)
		if err != nil {
			// The cache is optional; run without it.
			logger.Warn("user cache disabled", "error", err)
		} else {
			userService.Cache = userCache
		}
	}

	router := setupRouter(cfg, handler.Dependencies{
		Users:  userService,
		Notes:  &usecase.NotesService{NotesRepo: stores.Notes},
		Tokens: tokens,
		Store:  stores,
		Logger: logger,
	})

	runErr := runServer(":"+cfg.Port, router, logger)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if userService.Cache != nil {
		if err := userCache.Close(); err != nil {
			logger.Warn("failed to close user cache", "error", err)
		}
	}
	if err := stores.Close(shutdownCtx); err != nil {
		logger.Warn("failed to close store", "error", err)
	}

	if runErr != nil {
		logger.Error("server stopped", "error", runErr)
		os.Exit(1)
	}
	logger.Info("server shutdown complete")
}

func setupRouter(cfg *config.AppConfig, deps handler.Dependencies) *gin.Engine {
	deps.CORSOrigin = cfg.CORSOrigin
	deps.MaxBodyBytes = cfg.MaxBodyBytes
	return handler.NewRouter(deps)
}

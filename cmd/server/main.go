package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rcache "giveaway-radar-backend/internal/cache/redis"
	"giveaway-radar-backend/internal/common/logger"
	"giveaway-radar-backend/internal/config"
	apphttp "giveaway-radar-backend/internal/http"
	rplatform "giveaway-radar-backend/internal/platform/redis"
	"giveaway-radar-backend/internal/platform/telegram"
	"giveaway-radar-backend/internal/service/watcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("giveaway-radar", cfg.Debug)
	logger.Info().Bool("debug", cfg.Debug).Msg("Starting giveaway radar backend")

	var defaults telegram.Defaults
	if cfg.Telegram.DefaultTimezone != "" {
		loc, err := time.LoadLocation(cfg.Telegram.DefaultTimezone)
		if err != nil {
			logger.Fatal().Err(err).Str("timezone", cfg.Telegram.DefaultTimezone).Msg("Invalid default timezone")
		}
		defaults.Timezone = loc
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := rplatform.Open(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Str("addr", cfg.RedisAddr()).Msg("Redis connection established")

	tgClient := telegram.NewClient(cfg.Telegram.BotToken, telegram.WithDefaults(defaults))
	eventCache := rcache.NewEventCache(redisClient, cfg.EventTTL())

	watch := watcher.New(tgClient, eventCache, cfg.PollTimeout())
	go func() {
		if err := watch.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Watcher stopped")
		}
	}()

	router := apphttp.NewRouter(cfg, eventCache, redisClient)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

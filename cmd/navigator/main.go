// cmd/navigator/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/config"
	apperrors "github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/errors"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/logger"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/common/observability"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/immigration"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/nlp"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/router"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/server"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/session"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/speech"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/translate"
	"github.com/agentwolf27/AI-Powered-Immigration-Navigator/internal/wellness"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zapBoot := logger.New("info", "console")
		zapBoot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting immigration navigator...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Static data: degrade, never crash ---
	table, err := nlp.Load(cfg.Paths.Intents)
	if err != nil {
		loadErr := apperrors.NewIntentsLoadFailedError(err)
		zapLog.Warn("continuing with empty intent table",
			zap.String("code", string(loadErr.Code)),
			zap.Bool("retryable", apperrors.IsRetryable(loadErr)),
			zap.Error(loadErr),
		)
		table = nlp.EmptyTable()
	} else {
		zapLog.Info("intents loaded", zap.Int("count", table.Len()))
	}

	knowledge, err := immigration.Load(cfg.Paths.Knowledge)
	if err != nil {
		loadErr := apperrors.NewKnowledgeLoadFailedError(err)
		zapLog.Warn("using built-in knowledge tables",
			zap.String("code", string(loadErr.Code)),
			zap.Bool("retryable", apperrors.IsRetryable(loadErr)),
			zap.Error(loadErr),
		)
		knowledge = immigration.Default()
	}

	// --- Session store ---
	var store session.Store
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			zapLog.Fatal("redis ping failed", zap.Error(err))
		}
		cancel()
		store = session.NewRedisStore(client, time.Duration(cfg.Session.TTL)*time.Second)
		zapLog.Info("session store ready", zap.String("backend", "redis"))
	default:
		store = session.NewMemoryStore(time.Duration(cfg.Session.TTL) * time.Second)
		zapLog.Info("session store ready", zap.String("backend", "memory"))
	}

	// --- Conversational core ---
	bot := wellness.NewBot(wellness.WithFollowUpProbability(cfg.Wellness.FollowUpProbability))

	var translator translate.Translator
	switch cfg.Translate.Backend {
	case "remote":
		translator = translate.NewRemote(cfg.Translate.Endpoint, time.Duration(cfg.Translate.Timeout)*time.Millisecond, log)
		zapLog.Info("translator ready", zap.String("backend", "remote"), zap.String("endpoint", cfg.Translate.Endpoint))
	default:
		translator = translate.NewSimulator(log)
		zapLog.Info("translator ready", zap.String("backend", "simulator"))
	}
	r := router.New(table, bot, translator, cfg.Language.Pivot, log, obs)

	simulator := speech.NewSimulator(log)
	srv := server.New(cfg, log, r, knowledge, store, simulator, simulator)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      srv.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Navigator stopped.")
}

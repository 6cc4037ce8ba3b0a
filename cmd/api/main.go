package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WatchBeam/clock"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/config"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/crypto"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/handler"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/middleware"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/password"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/repository"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	store := repository.NewSessionStore(clock.C, cfg.SessionTTL, cfg.HistoryCapacity)

	genService := service.NewGeneratorService(password.CryptoSource(), clock.C, store)
	genHandler := handler.NewGeneratorHandler(genService)

	sessionService := service.NewSessionService(store, clock.C, cfg.JWTSecret, cfg.JWTExpiry)
	sessionHandler := handler.NewSessionHandler(sessionService)

	historyService := service.NewHistoryService(store, clock.C)
	historyHandler := handler.NewHistoryHandler(historyService)

	hashService := service.NewHashService(crypto.NewHasher(crypto.DefaultParams()))
	hashHandler := handler.NewHashHandler(hashService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateRPS, cfg.RateBurst))
		r.Post("/api/v1/session", sessionHandler.HandleCreate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateRPS, cfg.RateBurst))
		r.Use(middleware.OptionalSession(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
	})

	// Hashing is memory-hard, so it gets a tighter limit.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(2, 5))
		r.Post("/api/v1/hash", hashHandler.HandleHash)
		r.Post("/api/v1/hash/verify", hashHandler.HandleVerify)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(cfg.JWTSecret))
		r.Get("/api/v1/history", historyHandler.HandleList)
		r.Delete("/api/v1/history", historyHandler.HandleClear)
		r.Get("/api/v1/history/export", historyHandler.HandleExport)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

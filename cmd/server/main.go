package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"game_backend/internal/app/di"
	"game_backend/internal/app/router"
	"game_backend/internal/config"
	authadapters "game_backend/internal/feature/auth/adapters"
	authhandler "game_backend/internal/feature/auth/transport/handler"
	authusecase "game_backend/internal/feature/auth/usecase"
	savesadapters "game_backend/internal/feature/saves/adapters"
	saveshandler "game_backend/internal/feature/saves/transport/handler"
	savesusecase "game_backend/internal/feature/saves/usecase"
	infradb "game_backend/internal/platform/db"
	infraredis "game_backend/internal/platform/redis"
	"game_backend/internal/platform/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// db (Postgres when POSTGRES_URL is set, embedded SQLite otherwise)
	db, err := infradb.OpenDB(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Redis (optional; sessions fall back to the relational store)
	var rdb *redisv9.Client
	if cfg.RedisHost != "" {
		if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
			slog.Warn("Redis unavailable, storing sessions in the database")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	saveRepo := savesadapters.NewSaveGorm(db)

	// Leftover sessions from before a restart
	if n, err := sessionRepo.DeleteExpired(context.Background()); err != nil {
		slog.Warn("failed to delete expired sessions", "error", err)
	} else if n > 0 {
		slog.Info("deleted expired sessions", "count", n)
	}

	// Usecase
	signer := token.NewSigner(cfg.SecretKey, cfg.SessionTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, signer, cfg.SessionTTL)
	savesUC := savesusecase.NewSavesUsecase(saveRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, int(cfg.SessionTTL.Seconds()))
	savesH := saveshandler.NewSavesHandler(savesUC)

	r := router.NewRouter(authH, savesH, authUC)

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

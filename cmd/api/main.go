package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"todoweb/internal/config"
	todohttp "todoweb/internal/http"
	"todoweb/internal/repository"
	"todoweb/internal/service"
	"todoweb/internal/session"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"store", cfg.Store,
		"log_level", cfg.LogLevel,
	)

	var (
		todoRepo repository.TodoRepository
		userRepo repository.UserRepository
	)
	switch cfg.Store {
	case config.StoreMemory:
		todoRepo = repository.NewMemoryTodo()
		userRepo = repository.NewMemoryUser()
		logger.Warn("using in-memory store: data is lost on restart")
	default:
		db, err := repository.NewDB(cfg.DB.DSN())
		if err != nil {
			return err
		}
		defer db.Close()
		logger.Info("database connected")

		todoRepo = repository.NewPostgresTodo(db)
		userRepo = repository.NewPostgresUser(db)
	}

	authSvc := service.NewAuthService(userRepo)
	todoSvc := service.NewTodoService(todoRepo)
	sessions := session.NewStore(cfg.SessionSecure)

	srv := todohttp.NewServer(cfg.ServerPort, logger, authSvc, todoSvc, sessions)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tomlord1122/task-backend/internal/config"
	"github.com/Tomlord1122/task-backend/internal/database"
	"github.com/Tomlord1122/task-backend/internal/logger"
	"github.com/Tomlord1122/task-backend/internal/repository"
	"github.com/Tomlord1122/task-backend/internal/server"
	"github.com/Tomlord1122/task-backend/internal/service"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, timeout time.Duration, log zerolog.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	ctxTimeout, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := dbService.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connection pool")
	} else {
		log.Info().Msg("database connection pool closed")
	}

	done <- true
}

func main() {
	log := logger.Default()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read config")
	}

	log, err = logger.New(log, cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init application logger")
	}
	log.Info().Str("env", cfg.Env).Msg("initialized application logger")

	dbService, err := database.New(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = dbService.Migrate(migrateCtx)
	cancel()
	if err != nil {
		_ = dbService.Close()
		log.Error().Err(err).Msg("failed to create schema")
		os.Exit(1)
	}
	log.Info().Msg("database schema ready")

	gormDB := dbService.GetDB()
	taskService := service.NewTaskService(repository.NewGormTaskRepository(gormDB))
	userService := service.NewUserService(repository.NewGormUserRepository(gormDB))

	apiServer := server.NewServer(cfg.HTTP, taskService, userService, dbService, log)

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, dbService, cfg.HTTP.ShutdownTimeout, log, done)

	log.Info().Str("addr", apiServer.Addr).Msg("starting server")
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server ListenAndServe error")
	}

	<-done
	log.Info().Msg("graceful shutdown complete")
}

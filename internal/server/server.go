package server

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Tomlord1122/task-backend/internal/config"
	"github.com/Tomlord1122/task-backend/internal/database"
	"github.com/Tomlord1122/task-backend/internal/service"
)

type Server struct {
	taskService service.TaskService
	userService service.UserService
	db          database.Service
	log         zerolog.Logger
}

func NewServer(
	cfg config.HTTPConfig,
	taskService service.TaskService,
	userService service.UserService,
	dbService database.Service,
	log zerolog.Logger,
) *http.Server {
	appServer := &Server{
		taskService: taskService,
		userService: userService,
		db:          dbService,
		log:         log,
	}

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

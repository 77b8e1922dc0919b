package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"line-task-tracker/internal/middleware"
	reminderHTTP "line-task-tracker/internal/reminder/delivery/http"
	lineDelivery "line-task-tracker/internal/task/delivery/line"
	"line-task-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	lineHandler     lineDelivery.Handler
	reminderHandler reminderHTTP.Handler
	mw              middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	LineHandler     lineDelivery.Handler
	ReminderHandler reminderHTTP.Handler
	Middleware      middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		lineHandler:     cfg.LineHandler,
		reminderHandler: cfg.ReminderHandler,
		mw:              cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.lineHandler == nil {
		return errors.New("line handler is required")
	}
	return nil
}

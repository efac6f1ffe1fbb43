package api

import (
	"log/slog"

	"github.com/Dyllanvgin/monday-file-backend/internal/monday"
	"github.com/Dyllanvgin/monday-file-backend/internal/storage"
)

// Handler — главный обработчик API с зависимостями.
type Handler struct {
	monday         *monday.Client
	store          *storage.TempStore
	allowedOrigins []string
	logger         *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Monday         *monday.Client
	Store          *storage.TempStore
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		monday:         cfg.Monday,
		store:          cfg.Store,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         cfg.Logger,
	}
}

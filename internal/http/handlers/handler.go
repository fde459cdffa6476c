package handlers

import (
	"time"

	"taskvault/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HandlerConfig holds the session cookie settings.
type HandlerConfig struct {
	TokenTTL     time.Duration
	CookieSecure bool
}

type Handler struct {
	DB       *pgxpool.Pool
	Users    *repository.UserRepository
	Tasks    *repository.TaskRepository
	TokenTTL time.Duration

	// CookieSecure should only be false for plain-HTTP local development.
	CookieSecure bool
}

func NewHandler(db *pgxpool.Pool, cfg HandlerConfig) *Handler {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Handler{
		DB:           db,
		Users:        repository.NewUserRepository(db),
		Tasks:        repository.NewTaskRepository(db),
		TokenTTL:     ttl,
		CookieSecure: cfg.CookieSecure,
	}
}

// getUserID extracts the authenticated principal set by the auth middleware.
func getUserID(c interface{ Get(string) (any, bool) }) (string, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	uid, ok := uidVal.(string)
	if !ok || uid == "" {
		return "", false
	}
	return uid, true
}

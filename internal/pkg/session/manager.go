package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/glossylabs/campaign/internal/pkg/database"
	"github.com/glossylabs/campaign/internal/pkg/models"
)

// ErrNotFound is returned when a session ID does not resolve to a user.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Store resolves opaque session identifiers to user IDs.
type Store interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Get(ctx context.Context, sessionID string) (uuid.UUID, error)
	Destroy(ctx context.Context, sessionID string) error
	TTL() time.Duration
}

// Manager is a Redis-backed session store. Sessions are opaque UUIDs
// mapping to the owning user ID with a sliding expiry set at login.
type Manager struct {
	redisClient *database.RedisClient
	cfg         models.SessionConfig
}

// NewManager creates a session manager on top of the shared Redis client
func NewManager(redisClient *database.RedisClient, cfg models.SessionConfig) *Manager {
	return &Manager{
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// Create issues a new session for the given user and returns its opaque ID
func (m *Manager) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := uuid.New().String()
	key := keyPrefix + sessionID

	if err := m.redisClient.Set(ctx, key, userID.String(), m.TTL()); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return sessionID, nil
}

// Get resolves a session ID to the owning user ID
func (m *Manager) Get(ctx context.Context, sessionID string) (uuid.UUID, error) {
	key := keyPrefix + sessionID

	value, err := m.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get session: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID in session: %w", err)
	}

	return userID, nil
}

// Destroy removes a session, logging the user out server-side
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	key := keyPrefix + sessionID

	if err := m.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// TTL returns the configured session lifetime
func (m *Manager) TTL() time.Duration {
	return time.Duration(m.cfg.TTLMinutes) * time.Minute
}

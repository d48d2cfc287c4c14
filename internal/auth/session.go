package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	stateKeyPrefix   = "oauth_state:"
	sessionTTL       = 24 * time.Hour
	stateTTL         = 10 * time.Minute
)

// ErrInvalidState is returned when an OAuth state is unknown, expired or already used.
var ErrInvalidState = errors.New("invalid oauth state")

// Store manages sessions and OAuth states in Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a new session store.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL is the lifetime of new sessions.
func (s *Store) TTL() time.Duration { return s.ttl }

// Create stores a new session for userID and returns its ID.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	id, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id, userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// GetUserID resolves a session. ok is false for unknown or expired sessions and on Redis errors.
func (s *Store) GetUserID(ctx context.Context, id string) (string, bool) {
	userID, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil || userID == "" {
		return "", false
	}
	return userID, true
}

// Delete removes a session by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// CreateState issues a single-use OAuth state.
func (s *Store) CreateState(ctx context.Context) (string, error) {
	state, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, stateKeyPrefix+state, "1", stateTTL).Err(); err != nil {
		return "", err
	}
	return state, nil
}

// ConsumeState checks and deletes a state in one step.
func (s *Store) ConsumeState(ctx context.Context, state string) error {
	if state == "" {
		return ErrInvalidState
	}
	_, err := s.rdb.GetDel(ctx, stateKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return ErrInvalidState
	}
	return err
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

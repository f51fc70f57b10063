package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionPrefix      = "session:"
	confirmationPrefix = "confirm:"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, accountID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetConfirmationToken(ctx context.Context, token string, accountID uint64, ttl time.Duration) error
	GetConfirmationToken(ctx context.Context, token string) (uint64, error)
	DeleteConfirmationToken(ctx context.Context, token string) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// SetSession stores a session with accountID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, accountID uint64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionPrefix+sessionID, accountID, ttl).Err()
}

// GetSession retrieves accountID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	return r.client.Get(ctx, sessionPrefix+sessionID).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}

func (r *redis) SetConfirmationToken(ctx context.Context, token string, accountID uint64, ttl time.Duration) error {
	return r.client.Set(ctx, confirmationPrefix+token, accountID, ttl).Err()
}

// GetConfirmationToken returns 0 without error when the token is unknown or expired.
func (r *redis) GetConfirmationToken(ctx context.Context, token string) (uint64, error) {
	id, err := r.client.Get(ctx, confirmationPrefix+token).Uint64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return id, err
}

func (r *redis) DeleteConfirmationToken(ctx context.Context, token string) error {
	return r.client.Del(ctx, confirmationPrefix+token).Err()
}

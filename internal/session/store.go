package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store tracks revoked principals in Redis so a deactivated account loses
// access before its JWT expires. A nil client disables revocation and every
// call becomes a no-op; the is_active check in the auth middleware still
// gates the next request.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(userID uuid.UUID) string {
	return fmt.Sprintf("session:revoked:%s", userID.String())
}

// RevokeUser marks every outstanding token of the user as revoked. The key
// lives for the token TTL, after which any surviving token has expired on
// its own.
func (s *Store) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Set(ctx, key(userID), "revoked", s.ttl).Err()
}

// ClearUser lifts a revocation, used on reactivation.
func (s *Store) ClearUser(ctx context.Context, userID uuid.UUID) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, key(userID)).Err()
}

func (s *Store) IsRevoked(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s == nil || s.rdb == nil {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, key(userID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

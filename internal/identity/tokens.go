package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore persists opaque session tokens.
type TokenStore interface {
	Issue(ctx context.Context, p Principal) (string, error)
	Lookup(ctx context.Context, token string) (*Principal, error)
	Revoke(ctx context.Context, token string) error
}

// RedisTokenStore keeps session tokens in redis with a TTL, so sessions
// survive process restarts and expire server-side.
type RedisTokenStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisTokenStore connects to redis at the given URL and verifies
// connectivity with a ping.
func NewRedisTokenStore(redisURL string, ttl time.Duration) (*RedisTokenStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisTokenStore{client: client, prefix: "session:", ttl: ttl}, nil
}

func (s *RedisTokenStore) key(token string) string {
	return s.prefix + token
}

func (s *RedisTokenStore) Issue(ctx context.Context, p Principal) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal principal: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session token: %w", err)
	}
	return token, nil
}

func (s *RedisTokenStore) Lookup(ctx context.Context, token string) (*Principal, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up session token: %w", err)
	}
	var p Principal
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("unmarshal principal: %w", err)
	}
	return &p, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session token: %w", err)
	}
	return nil
}

// Close closes the underlying redis connection.
func (s *RedisTokenStore) Close() error {
	return s.client.Close()
}

// Ping checks redis reachability, used by the readiness probe.
func (s *RedisTokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

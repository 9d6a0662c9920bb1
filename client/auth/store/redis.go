package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

// RedisStore keeps the token pair in redis under <prefix>accessToken and <prefix>refreshToken.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

// WithKeyPrefix namespaces keys, e.g. per user session
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithTTL expires both keys; zero keeps them until cleared
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

func (s *RedisStore) LookupToken(ctx context.Context) (*oauth2.Token, bool, error) {
	values, err := s.client.MGet(ctx, s.key(AccessTokenKey), s.key(RefreshTokenKey)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, false, fmt.Errorf("redis mget failed: %w", err)
	}
	var access, refresh string
	if len(values) == 2 {
		access, _ = values[0].(string)
		refresh, _ = values[1].(string)
	}
	token := tokenFromValues(access, refresh)
	return token, token != nil, nil
}

func (s *RedisStore) AddToken(ctx context.Context, token *oauth2.Token) error {
	values := valuesFromToken(token)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, name := range []string{AccessTokenKey, RefreshTokenKey} {
			value, ok := values[name]
			if !ok {
				pipe.Del(ctx, s.key(name))
				continue
			}
			pipe.Set(ctx, s.key(name), value, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearToken(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(AccessTokenKey), s.key(RefreshTokenKey)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func NewRedisStore(client redis.UniversalClient, options ...RedisOption) *RedisStore {
	ret := &RedisStore{client: client, prefix: "storefront:"}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

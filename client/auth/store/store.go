package store

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
	bearer          = "Bearer"
)

// Store is a pluggable persistence layer for the session token pair.
type Store interface {
	// LookupToken returns the stored token pair; false when no access or refresh token is stored.
	LookupToken(ctx context.Context) (*oauth2.Token, bool, error)
	// AddToken replaces the stored pair; an empty field removes the corresponding key.
	AddToken(ctx context.Context, token *oauth2.Token) error
	// ClearToken removes both keys.
	ClearToken(ctx context.Context) error
}

type MemoryStoreOption func(*memoryStore)

// WithToken seeds the store
func WithToken(token *oauth2.Token) MemoryStoreOption {
	return func(m *memoryStore) {
		m.put(token)
	}
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (m *memoryStore) LookupToken(_ context.Context) (*oauth2.Token, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token := tokenFromValues(m.values[AccessTokenKey], m.values[RefreshTokenKey])
	return token, token != nil, nil
}

func (m *memoryStore) AddToken(_ context.Context, token *oauth2.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(token)
	return nil
}

func (m *memoryStore) ClearToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]string{}
	return nil
}

func (m *memoryStore) put(token *oauth2.Token) {
	m.values = valuesFromToken(token)
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: map[string]string{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func tokenFromValues(access, refresh string) *oauth2.Token {
	if access == "" && refresh == "" {
		return nil
	}
	return &oauth2.Token{AccessToken: access, RefreshToken: refresh, TokenType: bearer}
}

func valuesFromToken(token *oauth2.Token) map[string]string {
	ret := map[string]string{}
	if token == nil {
		return ret
	}
	if token.AccessToken != "" {
		ret[AccessTokenKey] = token.AccessToken
	}
	if token.RefreshToken != "" {
		ret[RefreshTokenKey] = token.RefreshToken
	}
	return ret
}

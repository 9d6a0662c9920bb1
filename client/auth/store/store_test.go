package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestStores(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	fileStore, err := NewFileStore(ctx, filepath.Join(t.TempDir(), "session", "tokens.json"))
	require.NoError(t, err)

	var testCases = []struct {
		description string
		store       Store
	}{
		{description: "memory", store: NewMemoryStore()},
		{description: "file", store: fileStore},
		{description: "redis", store: NewRedisStore(client, WithKeyPrefix("test:"))},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			s := testCase.store
			token, ok, err := s.LookupToken(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, token)

			require.NoError(t, s.AddToken(ctx, &oauth2.Token{AccessToken: "a1", RefreshToken: "r1"}))
			token, ok, err = s.LookupToken(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "a1", token.AccessToken)
			assert.Equal(t, "r1", token.RefreshToken)
			assert.Equal(t, "Bearer", token.Type())

			require.NoError(t, s.AddToken(ctx, &oauth2.Token{AccessToken: "a2"}))
			token, ok, err = s.LookupToken(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "a2", token.AccessToken)
			assert.Empty(t, token.RefreshToken)

			require.NoError(t, s.ClearToken(ctx))
			_, ok, err = s.LookupToken(ctx)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileStore_Reload(t *testing.T) {
	ctx := context.Background()
	URL := filepath.Join(t.TempDir(), "tokens.json")
	first, err := NewFileStore(ctx, URL)
	require.NoError(t, err)
	require.NoError(t, first.AddToken(ctx, &oauth2.Token{AccessToken: "access", RefreshToken: "refresh"}))

	second, err := NewFileStore(ctx, URL)
	require.NoError(t, err)
	token, ok, err := second.LookupToken(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "access", token.AccessToken)
	assert.Equal(t, "refresh", token.RefreshToken)

	require.NoError(t, second.ClearToken(ctx))
	third, err := NewFileStore(ctx, URL)
	require.NoError(t, err)
	_, ok, _ = third.LookupToken(ctx)
	assert.False(t, ok)
}

func TestRedisStore_Keys(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client)
	require.NoError(t, s.AddToken(ctx, &oauth2.Token{AccessToken: "a", RefreshToken: "r"}))
	value, err := mr.Get("storefront:accessToken")
	require.NoError(t, err)
	assert.Equal(t, "a", value)
	value, err = mr.Get("storefront:refreshToken")
	require.NoError(t, err)
	assert.Equal(t, "r", value)

	require.NoError(t, s.ClearToken(ctx))
	assert.False(t, mr.Exists("storefront:accessToken"))
	assert.False(t, mr.Exists("storefront:refreshToken"))
}

func TestMemoryStore_WithToken(t *testing.T) {
	s := NewMemoryStore(WithToken(&oauth2.Token{RefreshToken: "only-refresh"}))
	token, ok, err := s.LookupToken(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, token.AccessToken)
	assert.Equal(t, "only-refresh", token.RefreshToken)
}

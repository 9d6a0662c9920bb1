package storefront

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/client/auth/mock"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
)

func TestClientOptions_TokenStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	var testCases = []struct {
		description string
		tokens      string
		expect      interface{}
		expectErr   bool
	}{
		{description: "default", tokens: "", expect: store.NewMemoryStore()},
		{description: "memory", tokens: MemoryTokens, expect: store.NewMemoryStore()},
		{description: "redis", tokens: "redis://" + mr.Addr() + "/0", expect: &store.RedisStore{}},
		{description: "file", tokens: filepath.Join(t.TempDir(), "tokens.json"), expect: &store.FileStore{}},
		{description: "invalid redis", tokens: "redis://" + mr.Addr() + "/notadb", expectErr: true},
	}
	for _, testCase := range testCases {
		options := &ClientOptions{Tokens: testCase.tokens}
		tokens, err := options.TokenStore(ctx)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.IsType(t, testCase.expect, tokens, testCase.description)
	}
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()
	server := mock.NewHTTPTestServer()
	defer server.Close()
	server.AddAccount("alice", "password1", "")
	tokensURL := filepath.Join(t.TempDir(), "tokens.json")

	options := &ClientOptions{URL: server.URL + "/", Tokens: tokensURL, Tracing: true, Logger: zap.NewNop()}
	aClient, err := NewClient(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, server.URL, aClient.BaseURL())
	_, err = aClient.Login(ctx, &schema.Credentials{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	// a new client over the same file resumes the session
	resumed, err := NewClient(ctx, &ClientOptions{URL: server.URL, Tokens: tokensURL, Logger: zap.NewNop()})
	require.NoError(t, err)
	items, err := resumed.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, server.Calls(http.MethodGet, schema.PathCart))

	_, err = NewClient(ctx, &ClientOptions{})
	assert.Error(t, err)
	_, err = NewClient(ctx, nil)
	assert.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(location, []byte("url: http://localhost:8080/\ntimeoutMs: 1500\ntracing: true\n"), 0o644))

	options, err := LoadOptions(ctx, location)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", options.URL)
	assert.Equal(t, MemoryTokens, options.Tokens)
	assert.Equal(t, 1500*time.Millisecond, options.Timeout())
	assert.True(t, options.Tracing)

	t.Setenv(EnvURL, "http://shop.example.com")
	t.Setenv(EnvTokens, "redis://localhost:6379/1")
	options, err = LoadOptions(ctx, location)
	require.NoError(t, err)
	assert.Equal(t, "http://shop.example.com", options.URL)
	assert.Equal(t, "redis://localhost:6379/1", options.Tokens)

	_, err = LoadOptions(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

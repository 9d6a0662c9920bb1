package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront"
	"github.com/viant/storefront/client/auth/mock"
	"github.com/viant/storefront/client/cart"
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
)

func TestService_Run(t *testing.T) {
	ctx := context.Background()
	server := mock.NewHTTPTestServer()
	defer server.Close()
	tokens := filepath.Join(t.TempDir(), "tokens.json")
	run := func(args ...string) (string, error) {
		output := &bytes.Buffer{}
		global := []string{"--url", server.URL, "--tokens", tokens}
		err := New(output, zap.NewNop()).Run(ctx, append(global, args...))
		return output.String(), err
	}

	output, err := run("register", "-n", "alice", "-p", "password1", "-e", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, output, "User successfully registered")

	output, err = run("login", "-n", "alice", "-p", "password1")
	require.NoError(t, err)
	assert.Equal(t, "logged in as alice\n", output)

	output, err = run("add", "-i", "1", "-q", "2")
	require.NoError(t, err)
	var items []schema.CartItem
	require.NoError(t, json.Unmarshal([]byte(output), &items))
	assert.Equal(t, []schema.CartItem{{ProductID: "1", Quantity: 2}}, items)

	_, err = run("add", "-i", "2")
	require.NoError(t, err)
	output, err = run("update", "-i", "2", "-q", "3")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(output), &items))
	assert.Equal(t, []schema.CartItem{{ProductID: "1", Quantity: 2}, {ProductID: "2", Quantity: 3}}, items)

	output, err = run("cart", "--summary")
	require.NoError(t, err)
	var summary cart.Summary
	require.NoError(t, json.Unmarshal([]byte(output), &summary))
	assert.Len(t, summary.Lines, 2)
	assert.InDelta(t, 2*49.5+3*19.99, summary.Total, 0.0001)

	_, err = run("remove", "-i", "2")
	require.NoError(t, err)
	output, err = run("checkout")
	require.NoError(t, err)
	var order schema.Order
	require.NoError(t, json.Unmarshal([]byte(output), &order))
	assert.Equal(t, 99.0, order.TotalPrice)

	output, err = run("order", "-i", order.ID.String())
	require.NoError(t, err)
	assert.Contains(t, output, "pending")

	output, err = run("logout")
	require.NoError(t, err)
	assert.Equal(t, "logged out\n", output)

	output, err = run("session")
	require.NoError(t, err)
	assert.Contains(t, output, `"Authenticated": false`)

	_, err = run("add", "-i", "1", "-q", "0")
	assert.ErrorIs(t, err, schema.ErrInvalidQuantity)
}

func TestService_SessionExpired(t *testing.T) {
	ctx := context.Background()
	server := mock.NewHTTPTestServer()
	defer server.Close()
	server.AddAccount("alice", "password1", "")
	tokens := filepath.Join(t.TempDir(), "tokens.json")
	global := []string{"--url", server.URL, "--tokens", tokens}

	require.NoError(t, New(&bytes.Buffer{}, zap.NewNop()).Run(ctx, append(global, "login", "-n", "alice", "-p", "password1")))
	server.ExpireAccessTokens()
	server.RevokeRefreshTokens()

	output := &bytes.Buffer{}
	err := New(output, zap.NewNop()).Run(ctx, append(global, "products"))
	assert.ErrorIs(t, err, schema.ErrAuthExpired)
	assert.Contains(t, output.String(), "session expired")
}

func TestClientOptions(t *testing.T) {
	ctx := context.Background()
	config := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("url: http://localhost:8080\ntokens: memory\ntracing: true\n"), 0o644))

	options := &Options{Config: config}
	options.URL = "http://override:9090"
	ret, err := clientOptions(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, "http://override:9090", ret.URL)
	assert.Equal(t, "memory", ret.Tokens)
	assert.True(t, ret.Tracing)
}

func TestClientOptions_Precedence(t *testing.T) {
	ctx := context.Background()
	config := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("url: http://file:8080\ntokens: memory\n"), 0o644))
	t.Setenv(storefront.EnvURL, "http://env:8080")
	t.Setenv(storefront.EnvTokens, "redis://env:6379/0")

	options := &Options{Config: config}
	options.URL = "http://flag:8080"
	ret, err := clientOptions(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, "http://flag:8080", ret.URL)
	assert.Equal(t, "redis://env:6379/0", ret.Tokens)

	options = &Options{}
	options.URL = "http://flag:8080"
	options.Tokens = "memory"
	ret, err = clientOptions(ctx, options)
	require.NoError(t, err)
	assert.Equal(t, "http://flag:8080", ret.URL)
	assert.Equal(t, "memory", ret.Tokens)
}

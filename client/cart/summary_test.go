package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/client"
	"github.com/viant/storefront/client/auth/mock"
	"github.com/viant/storefront/schema"
)

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	server := mock.NewHTTPTestServer()
	defer server.Close()
	server.AddAccount("alice", "password1", "")
	aClient, err := client.New(server.URL)
	require.NoError(t, err)
	_, err = aClient.Login(ctx, &schema.Credentials{Username: "alice", Password: "password1"})
	require.NoError(t, err)

	items := []schema.CartItem{{ProductID: "1", Quantity: 2}, {ProductID: "99", Quantity: 1}, {ProductID: "3", Quantity: 1}}
	summary, err := Summarize(ctx, aClient, items, nil)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 2)
	assert.Equal(t, "Keyboard", summary.Lines[0].Product.Name)
	assert.Equal(t, 99.0, summary.Lines[0].Subtotal)
	assert.Equal(t, "Monitor", summary.Lines[1].Product.Name)
	assert.Equal(t, []schema.ID{"99"}, summary.Skipped)
	assert.InDelta(t, 298.0, summary.Total, 0.0001)
	assert.Equal(t, 3, summary.ItemCount())
}

func TestSummarize_Canceled(t *testing.T) {
	server := mock.NewHTTPTestServer()
	defer server.Close()
	aClient, err := client.New(server.URL)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Summarize(ctx, aClient, []schema.CartItem{{ProductID: "1", Quantity: 1}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

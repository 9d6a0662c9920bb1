package client

import (
	"context"
	"net/http"

	"github.com/viant/storefront/schema"
)

func (c *Client) Orders(ctx context.Context) ([]schema.Order, error) {
	result, err := send[[]schema.Order](ctx, c, c.authorized, http.MethodGet, schema.PathOrders, nil)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

func (c *Client) Order(ctx context.Context, id schema.ID) (*schema.Order, error) {
	return send[schema.Order](ctx, c, c.authorized, http.MethodGet, schema.OrderPath(id), nil)
}

// CreateOrder checks out the current cart
func (c *Client) CreateOrder(ctx context.Context) (*schema.Order, error) {
	return send[schema.Order](ctx, c, c.authorized, http.MethodPost, schema.PathOrders, nil)
}

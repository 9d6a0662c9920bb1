package client

import (
	"context"
	"net/http"

	"github.com/viant/storefront/schema"
)

func (c *Client) Products(ctx context.Context) ([]schema.Product, error) {
	result, err := send[[]schema.Product](ctx, c, c.authorized, http.MethodGet, schema.PathProducts, nil)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

func (c *Client) Product(ctx context.Context, id schema.ID) (*schema.Product, error) {
	if id.IsZero() {
		return nil, schema.ErrMissingProductID
	}
	return send[schema.Product](ctx, c, c.authorized, http.MethodGet, schema.ProductPath(id), nil)
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/viant/storefront/schema"
)

// Cart returns the current cart; the backend encodes an empty cart as null.
func (c *Client) Cart(ctx context.Context) ([]schema.CartItem, error) {
	data, err := do(ctx, c, c.authorized, http.MethodGet, schema.PathCart, nil)
	if err != nil {
		return nil, err
	}
	return DecodeCart(data)
}

// DecodeCart decodes a cart body; null is an empty cart, anything not a valid item list is malformed.
func DecodeCart(data []byte) ([]schema.CartItem, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return []schema.CartItem{}, nil
	}
	items := []schema.CartItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, schema.NewMalformedError("cart", err)
	}
	if err := schema.ValidateCart(items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddCartItem(ctx context.Context, productID schema.ID, quantity int) error {
	if err := validateItem(productID, quantity); err != nil {
		return err
	}
	_, err := do(ctx, c, c.authorized, http.MethodPost, schema.PathCartItems, &schema.AddCartItemRequest{ProductID: productID, Quantity: quantity})
	return err
}

func (c *Client) UpdateCartItem(ctx context.Context, productID schema.ID, quantity int) error {
	if err := validateItem(productID, quantity); err != nil {
		return err
	}
	_, err := do(ctx, c, c.authorized, http.MethodPut, schema.CartItemPath(productID), &schema.UpdateCartItemRequest{Quantity: quantity})
	return err
}

func (c *Client) RemoveCartItem(ctx context.Context, productID schema.ID) error {
	if productID.IsZero() {
		return schema.ErrMissingProductID
	}
	_, err := do(ctx, c, c.authorized, http.MethodDelete, schema.CartItemPath(productID), nil)
	return err
}

func validateItem(productID schema.ID, quantity int) error {
	if productID.IsZero() {
		return schema.ErrMissingProductID
	}
	if quantity <= 0 {
		return schema.ErrInvalidQuantity
	}
	return nil
}

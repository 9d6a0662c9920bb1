package client

import (
	"context"

	"github.com/viant/storefront/client/auth"
	"github.com/viant/storefront/schema"
	"golang.org/x/oauth2"
)

// Interface defines the client interface for all exported methods
type Interface interface {
	// Login exchanges credentials for a token pair and stores it
	Login(ctx context.Context, credentials *schema.Credentials) (*oauth2.Token, error)

	// Register creates an account
	Register(ctx context.Context, registration *schema.Registration) (*schema.RegisterResponse, error)

	// Logout clears the stored token pair
	Logout(ctx context.Context) error

	// Session returns the state of the stored session
	Session(ctx context.Context) (*auth.Session, error)

	// Cart returns the current cart, a null body yields an empty cart
	Cart(ctx context.Context) ([]schema.CartItem, error)

	AddCartItem(ctx context.Context, productID schema.ID, quantity int) error

	UpdateCartItem(ctx context.Context, productID schema.ID, quantity int) error

	RemoveCartItem(ctx context.Context, productID schema.ID) error

	Products(ctx context.Context) ([]schema.Product, error)

	Product(ctx context.Context, id schema.ID) (*schema.Product, error)

	Orders(ctx context.Context) ([]schema.Order, error)

	Order(ctx context.Context, id schema.ID) (*schema.Order, error)

	// CreateOrder checks out the current cart
	CreateOrder(ctx context.Context) (*schema.Order, error)
}

var _ Interface = (*Client)(nil)

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/viant/storefront/client/auth"
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Login exchanges credentials for a token pair and stores it
func (c *Client) Login(ctx context.Context, credentials *schema.Credentials) (*oauth2.Token, error) {
	result, err := send[schema.LoginResponse](ctx, c, c.anonymous, http.MethodPost, schema.PathLogin, credentials)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if result.Token == "" {
		return nil, schema.NewMalformedError("login response without token", nil)
	}
	token := &oauth2.Token{AccessToken: result.Token, RefreshToken: result.RefreshToken, TokenType: "Bearer"}
	if claims, err := auth.ParseClaims(token.AccessToken); err == nil {
		token.Expiry = claims.ExpiresAt
	}
	if err = c.store.AddToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	c.logger.Info("logged in", zap.String("username", credentials.Username))
	return token, nil
}

// Register creates an account, it does not log in
func (c *Client) Register(ctx context.Context, registration *schema.Registration) (*schema.RegisterResponse, error) {
	result, err := send[schema.RegisterResponse](ctx, c, c.anonymous, http.MethodPost, schema.PathRegister, registration)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return result, nil
}

// Logout clears the stored token pair
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.ClearToken(ctx); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	c.logger.Info("logged out")
	return nil
}

// Session returns the stored session state
func (c *Client) Session(ctx context.Context) (*auth.Session, error) {
	return auth.Inspect(ctx, c.store)
}

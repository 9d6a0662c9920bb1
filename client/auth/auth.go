package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/schema"
)

// Claims represents decoded access token claims
type Claims struct {
	UserID    schema.ID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the claims expire before now; tokens without exp never expire.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Session represents stored session state
type Session struct {
	Authenticated   bool
	HasRefreshToken bool
	Claims          *Claims
}

// ParseClaims decodes token claims without verifying the signature
func ParseClaims(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	ret := &Claims{}
	switch userID := claims["user_id"].(type) {
	case float64:
		ret.UserID = schema.ID(strconv.FormatInt(int64(userID), 10))
	case string:
		ret.UserID = schema.ID(userID)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ret.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		ret.IssuedAt = iat.Time
	}
	return ret, nil
}

// Inspect returns session state of the stored token pair. Opaque tokens yield a session without claims.
func Inspect(ctx context.Context, tokens store.Store) (*Session, error) {
	token, ok, err := tokens.LookupToken(ctx)
	if err != nil {
		return nil, err
	}
	ret := &Session{}
	if !ok {
		return ret, nil
	}
	ret.Authenticated = token.AccessToken != ""
	ret.HasRefreshToken = token.RefreshToken != ""
	if ret.Authenticated {
		ret.Claims, _ = ParseClaims(token.AccessToken)
	}
	return ret, nil
}

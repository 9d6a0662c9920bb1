package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/schema"
	"golang.org/x/oauth2"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	var testCases = []struct {
		description string
		token       string
		expect      *Claims
		expectErr   bool
	}{
		{
			description: "numeric user id",
			token:       signed(t, jwt.MapClaims{"user_id": 42, "exp": exp.Unix()}),
			expect:      &Claims{UserID: "42", ExpiresAt: exp},
		},
		{
			description: "string user id without exp",
			token:       signed(t, jwt.MapClaims{"user_id": "u-1"}),
			expect:      &Claims{UserID: "u-1"},
		},
		{
			description: "opaque token",
			token:       "not-a-jwt",
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		actual, err := ParseClaims(testCase.token)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect.UserID, actual.UserID, testCase.description)
		assert.True(t, testCase.expect.ExpiresAt.Equal(actual.ExpiresAt), testCase.description)
	}
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()
	assert.False(t, (&Claims{}).Expired(now))
	assert.True(t, (&Claims{ExpiresAt: now.Add(-time.Second)}).Expired(now))
	assert.False(t, (&Claims{ExpiresAt: now.Add(time.Minute)}).Expired(now))
}

func TestInspect(t *testing.T) {
	ctx := context.Background()
	tokens := store.NewMemoryStore()
	session, err := Inspect(ctx, tokens)
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.Claims)

	access := signed(t, jwt.MapClaims{"user_id": 7})
	require.NoError(t, tokens.AddToken(ctx, &oauth2.Token{AccessToken: access, RefreshToken: "r"}))
	session, err = Inspect(ctx, tokens)
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.True(t, session.HasRefreshToken)
	require.NotNil(t, session.Claims)
	assert.Equal(t, schema.ID("7"), session.Claims.UserID)
}

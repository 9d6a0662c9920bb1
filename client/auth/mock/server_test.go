package mock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/storefront/schema"
)

func TestService_Tokens(t *testing.T) {
	service := New()
	id := service.AddAccount("alice", "password1", "")
	access, refresh, err := service.issue(id)
	require.NoError(t, err)

	accessGen, refreshGen := service.generations()
	userID, err := service.verify(access, accessType, accessGen)
	require.NoError(t, err)
	assert.Equal(t, id, userID)

	_, err = service.verify(refresh, accessType, accessGen)
	assert.Error(t, err, "refresh token is not an access token")

	service.ExpireAccessTokens()
	accessGen, _ = service.generations()
	_, err = service.verify(access, accessType, accessGen)
	assert.Error(t, err)
	_, err = service.verify(refresh, refreshType, refreshGen)
	assert.NoError(t, err)

	service.RevokeRefreshTokens()
	_, refreshGen = service.generations()
	_, err = service.verify(refresh, refreshType, refreshGen)
	assert.Error(t, err)
}

func TestServer_Protected(t *testing.T) {
	server := NewHTTPTestServer()
	defer server.Close()
	server.AddAccount("alice", "password1", "")

	resp, err := http.Get(server.URL + schema.PathCart)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	payload, _ := json.Marshal(&schema.Credentials{Username: "alice", Password: "password1"})
	resp, err = http.Post(server.URL+schema.PathLogin, schema.ContentJSON, bytes.NewReader(payload))
	require.NoError(t, err)
	var login schema.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL+schema.PathCart, nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body bytes.Buffer
	_, _ = body.ReadFrom(resp.Body)
	assert.Equal(t, "null\n", body.String())
	assert.Equal(t, 2, server.Calls(http.MethodGet, schema.PathCart))
}

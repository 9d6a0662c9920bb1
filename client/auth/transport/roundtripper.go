package transport

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

type RoundTripper struct {
	store      store.Store
	transport  http.RoundTripper
	refreshURL string
	listeners  []Listener
	logger     *zap.Logger
	refreshing singleflight.Group
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemoryStore(),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		return nil, fmt.Errorf("token store was nil")
	}
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

// RoundTrip sends the request with the stored bearer token, refreshing and replaying it once on 401.
func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// caller managed credentials are passed through as is
	if req.Header.Get("Authorization") != "" {
		return r.transport.RoundTrip(req)
	}
	body, err := readBody(req)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	ctx := req.Context()
	requestID := req.Header.Get(schema.HeaderRequest)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := r.logger.With(zap.String("request_id", requestID), zap.String("method", req.Method), zap.String("url", req.URL.String()))

	token, _, err := r.store.LookupToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup token: %w", err)
	}
	resp, err := r.send(req, body, requestID, token)
	if err != nil {
		return nil, err
	}
	logger.Debug("sent", zap.Int("status", resp.StatusCode))
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	current, _, err := r.store.LookupToken(ctx)
	if err != nil {
		drain(resp)
		return nil, fmt.Errorf("failed to lookup token: %w", err)
	}
	if current == nil || current.RefreshToken == "" {
		return resp, nil
	}
	if current.AccessToken != "" && current.AccessToken != accessToken(token) {
		logger.Debug("token rotated concurrently, replaying")
		drain(resp)
		return r.send(req, body, requestID, current)
	}
	if err = bufferResponse(resp); err != nil {
		return nil, fmt.Errorf("failed to read unauthorized response: %w", err)
	}
	refreshURL := r.refreshURL
	if refreshURL == "" {
		refreshURL = resolveRefreshURL(req)
	}
	refreshed, err := r.refresh(ctx, refreshURL, current.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !refreshed {
		logger.Info("session expired")
		return resp, nil
	}
	if current, _, err = r.store.LookupToken(ctx); err != nil {
		return nil, fmt.Errorf("failed to lookup refreshed token: %w", err)
	}
	drain(resp)
	logger.Debug("token refreshed, replaying")
	return r.send(req, body, requestID, current)
}

func (r *RoundTripper) send(req *http.Request, body []byte, requestID string, token *oauth2.Token) (*http.Response, error) {
	next := clone(req, body)
	next.Header.Set(schema.HeaderRequest, requestID)
	if body != nil && next.Header.Get(schema.ContentTypeKey) == "" {
		next.Header.Set(schema.ContentTypeKey, schema.ContentJSON)
	}
	if accessToken(token) != "" {
		token.SetAuthHeader(next)
	}
	return r.transport.RoundTrip(next)
}

func accessToken(token *oauth2.Token) string {
	if token == nil {
		return ""
	}
	return token.AccessToken
}

var _ http.RoundTripper = (*RoundTripper)(nil)

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/client/auth/transport"
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
)

const maxMessageLength = 256

type Client struct {
	baseURL   string
	store     store.Store
	base      http.RoundTripper
	listeners []transport.Listener
	logger    *zap.Logger
	timeout   time.Duration

	authorizer *transport.RoundTripper
	authorized *http.Client
	anonymous  *http.Client
}

// Transport returns authenticated round tripper
func (c *Client) Transport() *transport.RoundTripper {
	return c.authorizer
}

// Store returns token store
func (c *Client) Store() store.Store {
	return c.store
}

// BaseURL returns backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL was empty")
	}
	ret := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    http.DefaultTransport,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		ret.store = store.NewMemoryStore()
	}
	transportOptions := []transport.Option{
		transport.WithStore(ret.store),
		transport.WithTransport(ret.base),
		transport.WithRefreshURL(ret.baseURL + schema.PathRefresh),
		transport.WithLogger(ret.logger.Named("transport")),
	}
	for _, listener := range ret.listeners {
		transportOptions = append(transportOptions, transport.WithListener(listener))
	}
	var err error
	if ret.authorizer, err = transport.New(transportOptions...); err != nil {
		return nil, err
	}
	ret.authorized = &http.Client{Transport: ret.authorizer, Timeout: ret.timeout}
	ret.anonymous = &http.Client{Transport: ret.base, Timeout: ret.timeout}
	return ret, nil
}

// send issues a JSON request and decodes a 2xx JSON body into R; non 2xx are returned as *schema.HTTPError.
func send[R any](ctx context.Context, c *Client, httpClient *http.Client, method, path string, input interface{}) (*R, error) {
	data, err := do(ctx, c, httpClient, method, path, input)
	if err != nil {
		return nil, err
	}
	var result R
	if len(bytes.TrimSpace(data)) == 0 {
		return &result, nil
	}
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, schema.NewMalformedError(method+" "+path, err)
	}
	return &result, nil
}

// do returns the raw body of a 2xx response.
func do(ctx context.Context, c *Client, httpClient *http.Client, method, path string, input interface{}) ([]byte, error) {
	URL := c.baseURL + path
	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %T: %w", input, err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, body)
	if err != nil {
		return nil, err
	}
	if input != nil {
		req.Header.Set(schema.ContentTypeKey, schema.ContentJSON)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &schema.NetworkError{URL: URL, Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &schema.NetworkError{URL: URL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("request failed", zap.String("method", method), zap.String("url", URL), zap.Int("status", resp.StatusCode))
		return nil, schema.NewHTTPError(resp.StatusCode, errorMessage(data))
	}
	return data, nil
}

// errorMessage extracts a human readable message from a JSON or text error body.
func errorMessage(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	if data[0] == '{' {
		var message schema.Message
		if err := json.Unmarshal(data, &message); err == nil {
			return message.Text()
		}
		return ""
	}
	return truncate(string(data), maxMessageLength)
}

// truncate cuts text to at most limit bytes without splitting a rune.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	text = text[:limit]
	for len(text) > 0 && !utf8.ValidString(text) {
		text = text[:len(text)-1]
	}
	return text
}

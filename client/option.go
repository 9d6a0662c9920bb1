package client

import (
	"net/http"
	"time"

	"github.com/viant/storefront/client/auth/store"
	"github.com/viant/storefront/client/auth/transport"
	"go.uber.org/zap"
)

// Option represents option
type Option func(c *Client)

// WithStore sets token store
func WithStore(store store.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithBaseTransport sets the wire transport, e.g. an instrumented one
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.base = rt
	}
}

// WithListener registers a session event listener
func WithListener(listener transport.Listener) Option {
	return func(c *Client) {
		c.listeners = append(c.listeners, listener)
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout sets http client timeout, zero means no timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

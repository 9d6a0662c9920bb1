package transport

import (
	"net/http"

	"github.com/viant/storefront/client/auth/store"
	"go.uber.org/zap"
)

type Option func(*RoundTripper)

// WithStore sets store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithTransport sets the underlying transport used for the wire calls
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		if transport != nil {
			t.transport = transport
		}
	}
}

// WithRefreshURL sets absolute refresh endpoint, by default it is resolved against the request host
func WithRefreshURL(URL string) Option {
	return func(t *RoundTripper) {
		t.refreshURL = URL
	}
}

// WithListener registers session event listener
func WithListener(listener Listener) Option {
	return func(t *RoundTripper) {
		if listener != nil {
			t.listeners = append(t.listeners, listener)
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(t *RoundTripper) {
		if logger != nil {
			t.logger = logger
		}
	}
}

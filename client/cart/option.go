package cart

import (
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
)

// Option represents holder option
type Option func(h *Holder)

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(h *Holder) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithItems seeds the holder as if the items had been fetched
func WithItems(items []schema.CartItem) Option {
	return func(h *Holder) {
		h.state.Items = copyItems(items)
		h.state.HasFetched = true
	}
}

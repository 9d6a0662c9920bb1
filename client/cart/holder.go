package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/storefront/internal/collection"
	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
)

const fetchFailed = "failed to fetch cart"

// Service represents the cart endpoints the holder relies on
type Service interface {
	Cart(ctx context.Context) ([]schema.CartItem, error)
	AddCartItem(ctx context.Context, productID schema.ID, quantity int) error
	UpdateCartItem(ctx context.Context, productID schema.ID, quantity int) error
	RemoveCartItem(ctx context.Context, productID schema.ID) error
}

// Holder represents shared cart state
type Holder struct {
	service     Service
	logger      *zap.Logger
	mux         sync.RWMutex
	state       State
	generation  uint64
	applied     uint64
	inFlight    int
	flights     map[uint64]*flight
	subscribers *collection.SyncMap[string, func(State)]
}

// State returns a copy of the current state
func (h *Holder) State() State {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.state.clone()
}

// ItemCount returns the sum of quantities of the current items
func (h *Holder) ItemCount() int {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.state.ItemCount()
}

// Subscribe registers fn to receive state after every transition; call cancel to unsubscribe.
func (h *Holder) Subscribe(fn func(State)) (cancel func()) {
	id := uuid.NewString()
	h.subscribers.Put(id, fn)
	return func() {
		h.subscribers.Delete(id)
	}
}

// Fetch pulls the cart. Concurrent calls of the same generation share one
// request, which outlives any single caller and stops only when all have left.
func (h *Holder) Fetch(ctx context.Context) error {
	h.mux.Lock()
	generation := h.generation
	h.inFlight++
	h.state.Loading = true
	snapshot := h.state.clone()
	shared := h.join(ctx, generation)
	h.mux.Unlock()
	h.publish(snapshot)

	var items []schema.CartItem
	var err error
	select {
	case <-ctx.Done():
		h.leave(generation, shared)
		err = ctx.Err()
	case <-shared.done:
		items, err = shared.items, shared.err
	}
	if isCanceled(err) {
		h.finish(generation, func(state *State) bool { return false })
		h.logger.Debug("cart fetch canceled", zap.Error(err))
		return err
	}
	if err != nil {
		h.logger.Warn("cart fetch failed", zap.Error(err))
		h.finish(generation, func(state *State) bool {
			state.Items = []schema.CartItem{}
			state.Error = errorMessage(err)
			state.HasFetched = true
			return true
		})
		return err
	}
	h.finish(generation, func(state *State) bool {
		state.Items = copyItems(items)
		state.Error = ""
		state.HasFetched = true
		return true
	})
	return nil
}

// finish applies a fetch outcome unless a newer generation has already been applied.
func (h *Holder) finish(generation uint64, apply func(state *State) bool) {
	h.mux.Lock()
	h.inFlight--
	if generation >= h.applied {
		if apply(&h.state) {
			h.applied = generation
		}
	} else {
		h.logger.Debug("discarding stale cart", zap.Uint64("generation", generation), zap.Uint64("applied", h.applied))
	}
	h.state.Loading = h.inFlight > 0
	snapshot := h.state.clone()
	h.mux.Unlock()
	h.publish(snapshot)
}

// UpdateItems replaces items without a network call
func (h *Holder) UpdateItems(items []schema.CartItem) {
	h.mux.Lock()
	h.generation++
	h.applied = h.generation
	h.state.Items = copyItems(items)
	h.state.HasFetched = true
	h.state.Error = ""
	h.state.Loading = false
	snapshot := h.state.clone()
	h.mux.Unlock()
	h.publish(snapshot)
}

// AddItem adds quantity of productID and re-pulls the cart
func (h *Holder) AddItem(ctx context.Context, productID schema.ID, quantity int) error {
	if err := validate(productID, quantity); err != nil {
		return err
	}
	return h.mutate(ctx, func() error {
		return h.service.AddCartItem(ctx, productID, quantity)
	})
}

// UpdateItem sets quantity of productID and re-pulls the cart
func (h *Holder) UpdateItem(ctx context.Context, productID schema.ID, quantity int) error {
	if err := validate(productID, quantity); err != nil {
		return err
	}
	return h.mutate(ctx, func() error {
		return h.service.UpdateCartItem(ctx, productID, quantity)
	})
}

// RemoveItem removes productID and re-pulls the cart
func (h *Holder) RemoveItem(ctx context.Context, productID schema.ID) error {
	if productID.IsZero() {
		return schema.ErrMissingProductID
	}
	return h.mutate(ctx, func() error {
		return h.service.RemoveCartItem(ctx, productID)
	})
}

func (h *Holder) mutate(ctx context.Context, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	h.mux.Lock()
	h.generation++
	h.mux.Unlock()
	return h.Fetch(ctx)
}

func (h *Holder) publish(state State) {
	h.subscribers.Range(func(_ string, fn func(State)) bool {
		fn(state.clone())
		return true
	})
}

func validate(productID schema.ID, quantity int) error {
	if productID.IsZero() {
		return schema.ErrMissingProductID
	}
	if quantity <= 0 {
		return schema.ErrInvalidQuantity
	}
	return nil
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// errorMessage returns the text shown for a failed fetch
func errorMessage(err error) string {
	var httpErr *schema.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return httpErr.Message
		}
		return fetchFailed
	}
	if message := err.Error(); message != "" {
		return message
	}
	return fetchFailed
}

// New creates a holder backed by service
func New(service Service, options ...Option) *Holder {
	ret := &Holder{
		service:     service,
		logger:      zap.NewNop(),
		state:       State{Items: []schema.CartItem{}},
		flights:     map[uint64]*flight{},
		subscribers: collection.NewSyncMap[string, func(State)](),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

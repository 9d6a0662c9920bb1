package cart

import (
	"context"

	"github.com/viant/storefront/schema"
)

// flight is a cart fetch shared by every Fetch of one generation. It runs
// detached from any single caller and is cancelled once its last waiter leaves.
type flight struct {
	done    chan struct{}
	items   []schema.CartItem
	err     error
	cancel  context.CancelFunc
	waiters int
}

// join returns the flight of generation, starting it if needed. Callers hold h.mux.
func (h *Holder) join(ctx context.Context, generation uint64) *flight {
	if f, ok := h.flights[generation]; ok {
		f.waiters++
		return f
	}
	sharedCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f := &flight{done: make(chan struct{}), cancel: cancel, waiters: 1}
	h.flights[generation] = f
	go h.run(sharedCtx, generation, f)
	return f
}

func (h *Holder) run(ctx context.Context, generation uint64, f *flight) {
	f.items, f.err = h.service.Cart(ctx)
	h.mux.Lock()
	if h.flights[generation] == f {
		delete(h.flights, generation)
	}
	h.mux.Unlock()
	f.cancel()
	close(f.done)
}

// leave releases a waiter that stopped waiting; the last one cancels the request.
func (h *Holder) leave(generation uint64, f *flight) {
	h.mux.Lock()
	defer h.mux.Unlock()
	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if h.flights[generation] == f {
		delete(h.flights, generation)
	}
}

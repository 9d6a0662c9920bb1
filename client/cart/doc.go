// Package cart holds client side cart state.
//
// A Holder is shared by every surface that shows the cart. It is populated by
// Fetch, replaced by UpdateItems, and re-pulled after every mutation. Observers
// registered with Subscribe receive a copy of the state after each transition.
package cart

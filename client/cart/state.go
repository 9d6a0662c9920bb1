package cart

import "github.com/viant/storefront/schema"

// State represents cart state; an empty Error means the last fetch succeeded.
type State struct {
	Items      []schema.CartItem
	Loading    bool
	Error      string
	HasFetched bool
}

// ItemCount returns the sum of item quantities
func (s State) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// Item returns the item for productID
func (s State) Item(productID schema.ID) (schema.CartItem, bool) {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return schema.CartItem{}, false
}

func (s State) clone() State {
	s.Items = copyItems(s.Items)
	return s
}

func copyItems(items []schema.CartItem) []schema.CartItem {
	ret := make([]schema.CartItem, len(items))
	copy(ret, items)
	return ret
}

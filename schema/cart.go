package schema

import "fmt"

type (
	// CartItem represents a product quantity held in the cart
	CartItem struct {
		ProductID ID  `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	AddCartItemRequest struct {
		ProductID ID  `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity"`
	}
)

// ValidateCart checks items are unique by product id and carry a positive quantity.
func ValidateCart(items []CartItem) error {
	seen := make(map[ID]bool, len(items))
	for i, item := range items {
		if item.ProductID.IsZero() {
			return NewMalformedError(fmt.Sprintf("item %d: missing product_id", i), nil)
		}
		if item.Quantity <= 0 {
			return NewMalformedError(fmt.Sprintf("item %v: invalid quantity %d", item.ProductID, item.Quantity), nil)
		}
		if seen[item.ProductID] {
			return NewMalformedError(fmt.Sprintf("duplicate product_id %v", item.ProductID), nil)
		}
		seen[item.ProductID] = true
	}
	return nil
}

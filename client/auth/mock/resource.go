package mock

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/viant/storefront/schema"
)

func (s *Service) cartHandler(w http.ResponseWriter, r *http.Request) {
	if s.CartHandler != nil {
		s.CartHandler(w, r)
		return
	}
	// an empty cart is encoded as null, as the backend does
	writeJSON(w, http.StatusOK, s.Cart(userID(r)))
}

func (s *Service) addItemHandler(w http.ResponseWriter, r *http.Request) {
	var request schema.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := s.products.Get(request.ProductID); !ok {
		http.Error(w, "product does not exist", http.StatusBadRequest)
		return
	}
	if request.Quantity <= 0 {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	s.carts.Compute(userID(r), func(items []schema.CartItem, _ bool) []schema.CartItem {
		items = append([]schema.CartItem(nil), items...)
		for i := range items {
			if items[i].ProductID == request.ProductID {
				items[i].Quantity += request.Quantity
				return items
			}
		}
		return append(items, schema.CartItem{ProductID: request.ProductID, Quantity: request.Quantity})
	})
	writeJSON(w, http.StatusCreated, &schema.Message{Message: "Item added to cart successfully"})
}

func (s *Service) updateItemHandler(w http.ResponseWriter, r *http.Request) {
	id := schema.ID(mux.Vars(r)["id"])
	var request schema.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.Quantity <= 0 {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	found := false
	s.carts.Compute(userID(r), func(items []schema.CartItem, _ bool) []schema.CartItem {
		items = append([]schema.CartItem(nil), items...)
		for i := range items {
			if items[i].ProductID == id {
				items[i].Quantity = request.Quantity
				found = true
			}
		}
		return items
	})
	if !found {
		http.Error(w, "cart item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, &schema.Message{Message: "Cart item updated successfully"})
}

func (s *Service) removeItemHandler(w http.ResponseWriter, r *http.Request) {
	id := schema.ID(mux.Vars(r)["id"])
	s.carts.Compute(userID(r), func(items []schema.CartItem, _ bool) []schema.CartItem {
		var result []schema.CartItem
		for _, item := range items {
			if item.ProductID != id {
				result = append(result, item)
			}
		}
		return result
	})
	writeJSON(w, http.StatusOK, &schema.Message{Message: "Cart item removed successfully"})
}

func (s *Service) productsHandler(w http.ResponseWriter, r *http.Request) {
	products := s.products.Values()
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	writeJSON(w, http.StatusOK, products)
}

func (s *Service) productHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := s.products.Get(schema.ID(mux.Vars(r)["id"]))
	if !ok {
		writeJSON(w, http.StatusNotFound, &schema.Message{Message: "Product not found"})
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (s *Service) ordersHandler(w http.ResponseWriter, r *http.Request) {
	orders, _ := s.orders.Get(userID(r))
	if orders == nil {
		orders = []*schema.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Service) orderHandler(w http.ResponseWriter, r *http.Request) {
	id := schema.ID(mux.Vars(r)["id"])
	orders, _ := s.orders.Get(userID(r))
	for _, order := range orders {
		if order.ID == id {
			writeJSON(w, http.StatusOK, order)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, &schema.Message{Message: "Order not found"})
}

// createOrderHandler checks out the current cart
func (s *Service) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	items := s.Cart(user)
	if len(items) == 0 {
		http.Error(w, "cart is empty", http.StatusBadRequest)
		return
	}
	total := 0.0
	for _, item := range items {
		if product, ok := s.products.Get(item.ProductID); ok {
			total += product.Price * float64(item.Quantity)
		}
	}
	now := time.Now().UTC()
	var order *schema.Order
	s.orders.Compute(user, func(orders []*schema.Order, _ bool) []*schema.Order {
		order = &schema.Order{
			ID:         schema.ID(strconv.Itoa(len(orders) + 1)),
			CustomerID: schema.ID(formatInt(user)),
			TotalPrice: total,
			Status:     "pending",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return append(orders, order)
	})
	s.carts.Put(user, nil)
	writeJSON(w, http.StatusCreated, order)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

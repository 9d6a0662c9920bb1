package mock

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/viant/storefront/schema"
)

type userKey struct{}

func (s *Service) newRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.countMiddleware)
	router.HandleFunc(schema.PathLogin, s.loginHandler).Methods(http.MethodPost)
	router.HandleFunc(schema.PathRegister, s.registerHandler).Methods(http.MethodPost)
	router.HandleFunc(schema.PathRefresh, s.refreshHandler).Methods(http.MethodPost)

	protected := router.NewRoute().Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc(schema.PathCart, s.cartHandler).Methods(http.MethodGet)
	protected.HandleFunc(schema.PathCartItems, s.addItemHandler).Methods(http.MethodPost)
	protected.HandleFunc(schema.PathCartItems+"/{id}", s.updateItemHandler).Methods(http.MethodPut)
	protected.HandleFunc(schema.PathCartItems+"/{id}", s.removeItemHandler).Methods(http.MethodDelete)
	protected.HandleFunc(schema.PathProducts, s.productsHandler).Methods(http.MethodGet)
	protected.HandleFunc(schema.PathProducts+"/{id}", s.productHandler).Methods(http.MethodGet)
	protected.HandleFunc(schema.PathOrders, s.ordersHandler).Methods(http.MethodGet)
	protected.HandleFunc(schema.PathOrders, s.createOrderHandler).Methods(http.MethodPost)
	protected.HandleFunc(schema.PathOrders+"/{id}", s.orderHandler).Methods(http.MethodGet)
	return router
}

func (s *Service) countMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.count(r)
		next.ServeHTTP(w, r)
	})
}

func (s *Service) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		accessGen, _ := s.generations()
		userID, err := s.verify(tokenString, accessType, accessGen)
		if err != nil {
			http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, userID)))
	})
}

func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(userKey{}).(int64)
	return id
}

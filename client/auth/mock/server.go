package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/viant/storefront/internal/collection"
	"github.com/viant/storefront/schema"
)

type account struct {
	ID       int64
	Username string
	Email    string
	Password string
}

// Service is a storefront backend
type Service struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// optional handler overrides
	RefreshHandler http.HandlerFunc
	CartHandler    http.HandlerFunc

	mu                sync.Mutex
	accounts          map[string]*account
	nextID            int64
	accessGeneration  int64
	refreshGeneration int64
	calls             map[string]int

	products *collection.SyncMap[schema.ID, *schema.Product]
	carts    *collection.SyncMap[int64, []schema.CartItem]
	orders   *collection.SyncMap[int64, []*schema.Order]
	router   *mux.Router
}

// Server wraps an httptest server running the Service
type Server struct {
	*httptest.Server
	*Service
}

// AddAccount registers a user that can log in
func (s *Service) AddAccount(username, password, email string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.accounts[username] = &account{ID: s.nextID, Username: username, Password: password, Email: email}
	return s.nextID
}

// AddProduct adds a product to the catalog
func (s *Service) AddProduct(product *schema.Product) {
	s.products.Put(product.ID, product)
}

// SetCart replaces the cart of userID
func (s *Service) SetCart(userID int64, items []schema.CartItem) {
	s.carts.Put(userID, items)
}

// Cart returns the cart of userID
func (s *Service) Cart(userID int64) []schema.CartItem {
	items, _ := s.carts.Get(userID)
	return items
}

// ExpireAccessTokens makes every issued access token answer 401.
func (s *Service) ExpireAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessGeneration++
}

// RevokeRefreshTokens makes every issued refresh token fail to refresh.
func (s *Service) RevokeRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshGeneration++
}

// Calls returns number of requests received for method and path
func (s *Service) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+path]
}

func (s *Service) count(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[r.Method+" "+r.URL.Path]++
}

func (s *Service) generations() (int64, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessGeneration, s.refreshGeneration
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// New creates a backend with a small default catalog
func New() *Service {
	ret := &Service{
		Secret:     []byte("storefront-test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		accounts:   map[string]*account{},
		calls:      map[string]int{},
		products:   collection.NewSyncMap[schema.ID, *schema.Product](),
		carts:      collection.NewSyncMap[int64, []schema.CartItem](),
		orders:     collection.NewSyncMap[int64, []*schema.Order](),
	}
	ret.AddProduct(&schema.Product{ID: "1", Name: "Keyboard", Price: 49.5})
	ret.AddProduct(&schema.Product{ID: "2", Name: "Mouse", Price: 19.99})
	ret.AddProduct(&schema.Product{ID: "3", Name: "Monitor", Price: 199})
	ret.router = ret.newRouter()
	return ret
}

// NewHTTPTestServer starts the backend on a local listener
func NewHTTPTestServer() *Server {
	service := New()
	return &Server{Server: httptest.NewServer(service), Service: service}
}

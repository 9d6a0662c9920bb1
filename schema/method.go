package schema

const (
	PathLogin      = "/api/auth/login"
	PathRegister   = "/api/auth/register"
	PathRefresh    = "/api/auth/refresh"
	PathCart       = "/api/cart"
	PathCartItems  = "/api/cart/items"
	PathProducts   = "/api/products"
	PathOrders     = "/api/orders"
	HeaderRequest  = "X-Request-ID"
	ContentTypeKey = "Content-Type"
	ContentJSON    = "application/json"
)

// CartItemPath returns the item resource path for productID.
func CartItemPath(productID ID) string {
	return PathCartItems + "/" + productID.PathSegment()
}

// ProductPath returns the product resource path.
func ProductPath(id ID) string {
	return PathProducts + "/" + id.PathSegment()
}

// OrderPath returns the order resource path.
func OrderPath(id ID) string {
	return PathOrders + "/" + id.PathSegment()
}

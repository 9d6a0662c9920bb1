package cart

import (
	"context"

	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLookups = 8

// Catalog represents product lookup
type Catalog interface {
	Product(ctx context.Context, id schema.ID) (*schema.Product, error)
}

// Line represents a cart item joined with its product
type Line struct {
	Product  *schema.Product
	Quantity int
	Subtotal float64
}

// Summary represents a priced cart
type Summary struct {
	Lines []*Line
	// Skipped lists items whose product could not be looked up
	Skipped []schema.ID
	Total   float64
}

// ItemCount returns the sum of priced quantities
func (s *Summary) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

// Summarize looks up products of items concurrently and prices the cart. Items
// whose product lookup fails are skipped; only context cancellation is an error.
func Summarize(ctx context.Context, catalog Catalog, items []schema.CartItem, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	products := make([]*schema.Product, len(items))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentLookups)
	for i, item := range items {
		group.Go(func() error {
			product, err := catalog.Product(groupCtx, item.ProductID)
			if err != nil {
				if isCanceled(err) {
					return err
				}
				logger.Warn("product lookup failed", zap.String("product_id", item.ProductID.String()), zap.Error(err))
				return nil
			}
			products[i] = product
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	ret := &Summary{Lines: make([]*Line, 0, len(items))}
	for i, item := range items {
		product := products[i]
		if product == nil {
			ret.Skipped = append(ret.Skipped, item.ProductID)
			continue
		}
		line := &Line{Product: product, Quantity: item.Quantity, Subtotal: product.Price * float64(item.Quantity)}
		ret.Total += line.Subtotal
		ret.Lines = append(ret.Lines, line)
	}
	return ret, nil
}

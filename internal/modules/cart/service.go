package cart

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
	"github.com/asadc0de/husnainatelier/internal/shared/pricing"
	"github.com/asadc0de/husnainatelier/pkg/view"
)

// Service is the storefront cart: identified by the signed cart cookie's id,
// resolved against the catalog at read time so price and image changes show
// up without cart migrations.
type Service struct {
	repo    *Repo
	catalog *catalog.Service
}

func NewService(repo *Repo, cat *catalog.Service) *Service {
	return &Service{repo: repo, catalog: cat}
}

// Ensure returns the cart for cartID, creating a fresh one when the id is
// empty or stale.
func (s *Service) Ensure(ctx context.Context, cartID string) (Cart, error) {
	if cartID != "" {
		c, err := s.repo.Get(ctx, cartID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Cart{}, err
		}
	}
	return s.repo.Create(ctx)
}

// Add puts qty of a product into the cart, accumulating onto an existing
// line. The product must exist.
func (s *Service) Add(ctx context.Context, cartID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	if _, err := s.catalog.Get(ctx, productID); err != nil {
		return err
	}
	return s.repo.AddItem(ctx, cartID, productID, qty)
}

// SetQty replaces a line's quantity. Quantities below one are ignored;
// removal is its own operation.
func (s *Service) SetQty(ctx context.Context, cartID, productID string, qty int) error {
	if qty < 1 {
		return nil
	}
	return s.repo.SetItemQty(ctx, cartID, productID, qty)
}

func (s *Service) Remove(ctx context.Context, cartID, productID string) error {
	return s.repo.RemoveItem(ctx, cartID, productID)
}

// Clear empties the cart without discarding the cart row itself, so the
// cookie id stays valid.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	return s.repo.Clear(ctx, cartID)
}

// Page assembles the cart view: lines joined with their catalog products,
// a total item count, and a numeric total parsed from the display prices.
// Lines whose product has been deleted are skipped.
func (s *Service) Page(ctx context.Context, cartID string) (view.CartPage, error) {
	c, err := s.repo.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return view.CartPage{Items: []view.CartItem{}}, nil
		}
		return view.CartPage{}, err
	}

	items := make([]view.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		p, err := s.catalog.Get(ctx, it.ProductID)
		if err != nil {
			if ae, ok := apperr.As(err); ok && ae.Kind == apperr.NotFound {
				continue
			}
			return view.CartPage{}, err
		}
		items = append(items, view.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Amount:    pricing.Amount(p.Price),
			ImageURL:  p.Image,
			Quantity:  it.Quantity,
		})
	}

	page := view.CartPage{Items: items}
	page.Count, page.Total = Totals(items)
	return page, nil
}

// Totals sums item count and price amounts the way the storefront badge and
// drawer do.
func Totals(items []view.CartItem) (count int, total float64) {
	for _, it := range items {
		count += it.Quantity
		total += it.Amount * float64(it.Quantity)
	}
	return count, total
}

package services

import (
	"context"
	"errors"
	"sort"

	"orchid-shop/models"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrOrchidNotFound   = errors.New("orchid not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not found in cart")
)

// CatalogLookup resolves an orchid id to its catalog record. Satisfied by
// *repositories.OrchidRepository.
type CatalogLookup interface {
	FindByID(ctx context.Context, id string) (*models.Orchid, error)
}

// CartService owns the cart operations. Line items snapshot the catalog's
// name, image and price at add time; the snapshot is never refreshed when the
// catalog changes later.
type CartService struct {
	store   *CartStore
	catalog CatalogLookup
}

func NewCartService(store *CartStore, catalog CatalogLookup) *CartService {
	return &CartService{store: store, catalog: catalog}
}

// GetCart returns the current snapshot, or an empty one if the owner has no
// cart. Never fails.
func (s *CartService) GetCart(ownerID string) models.ShoppingCart {
	entry, ok := s.store.get(ownerID)
	if !ok {
		return emptyCart(ownerID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return buildSnapshot(ownerID, entry.lines)
}

// AddToCart accumulates quantity onto an existing line, or creates a new line
// from a catalog snapshot. The catalog lookup happens before the owner's cart
// is locked so no I/O runs inside the critical section.
func (s *CartService) AddToCart(ctx context.Context, ownerID, orchidID string, quantity int) (models.ShoppingCart, error) {
	if quantity <= 0 {
		return models.ShoppingCart{}, ErrInvalidQuantity
	}

	orchid, err := s.catalog.FindByID(ctx, orchidID)
	if err != nil {
		return models.ShoppingCart{}, ErrOrchidNotFound
	}

	for {
		entry := s.store.getOrCreate(ownerID)
		entry.mu.Lock()
		if entry.gone {
			// lost a race with clearCart; the entry left the store
			entry.mu.Unlock()
			continue
		}

		if item, ok := entry.lines[orchidID]; ok {
			item.Quantity += quantity
			item.Subtotal = item.UnitPrice * float64(item.Quantity)
		} else {
			entry.lines[orchidID] = &models.CartItem{
				OrchidID:   orchidID,
				OrchidName: orchid.OrchidName,
				OrchidURL:  orchid.OrchidURL,
				UnitPrice:  orchid.Price,
				Quantity:   quantity,
				Subtotal:   orchid.Price * float64(quantity),
			}
		}

		snapshot := buildSnapshot(ownerID, entry.lines)
		entry.mu.Unlock()
		return snapshot, nil
	}
}

// UpdateCartItem overwrites the line's quantity. A quantity of zero or less
// removes the line; this differs from AddToCart, which accumulates.
func (s *CartService) UpdateCartItem(ownerID, orchidID string, quantity int) (models.ShoppingCart, error) {
	entry, ok := s.store.get(ownerID)
	if !ok {
		return models.ShoppingCart{}, ErrCartNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.gone {
		return models.ShoppingCart{}, ErrCartNotFound
	}

	item, ok := entry.lines[orchidID]
	if !ok {
		return models.ShoppingCart{}, ErrCartItemNotFound
	}

	if quantity <= 0 {
		delete(entry.lines, orchidID)
	} else {
		item.Quantity = quantity
		item.Subtotal = item.UnitPrice * float64(quantity)
	}

	return buildSnapshot(ownerID, entry.lines), nil
}

// RemoveFromCart deletes the line if present. Idempotent: a missing cart or
// line is not an error.
func (s *CartService) RemoveFromCart(ownerID, orchidID string) models.ShoppingCart {
	entry, ok := s.store.get(ownerID)
	if !ok {
		return emptyCart(ownerID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	delete(entry.lines, orchidID)
	return buildSnapshot(ownerID, entry.lines)
}

// ClearCart drops the owner's entire cart. Idempotent.
func (s *CartService) ClearCart(ownerID string) {
	s.store.remove(ownerID)
}

func emptyCart(ownerID string) models.ShoppingCart {
	return models.ShoppingCart{
		AccountID:   ownerID,
		Items:       []models.CartItem{},
		TotalAmount: 0.0,
		TotalItems:  0,
	}
}

// buildSnapshot copies the lines and recomputes both totals. Caller must hold
// the entry lock.
func buildSnapshot(ownerID string, lines map[string]*models.CartItem) models.ShoppingCart {
	if len(lines) == 0 {
		return emptyCart(ownerID)
	}

	items := make([]models.CartItem, 0, len(lines))
	totalAmount := 0.0
	totalItems := 0
	for _, item := range lines {
		items = append(items, *item)
		totalAmount += item.Subtotal
		totalItems += item.Quantity
	}
	sort.Slice(items, func(i, j int) bool { return items[i].OrchidID < items[j].OrchidID })

	return models.ShoppingCart{
		AccountID:   ownerID,
		Items:       items,
		TotalAmount: totalAmount,
		TotalItems:  totalItems,
	}
}

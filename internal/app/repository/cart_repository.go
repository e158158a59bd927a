package repository

import (
	"errors"
	"sync"

	"github.com/ikkim/chorokshop-backend/internal/app/model"
	"github.com/ikkim/chorokshop-backend/pkg/logger"
)

var (
	// ErrEntryExists is returned by Add when the product already has a cart
	// entry. Adding twice never bumps the quantity; the increment command does.
	ErrEntryExists = errors.New("cart entry already exists")
	// ErrQuantityAtMinimum is returned by Decrement when the entry already sits
	// at quantity 1. The entry stays in the cart until removed explicitly.
	ErrQuantityAtMinimum = errors.New("cart entry quantity already at minimum")
)

// CartRepository owns the cart state for the lifetime of the process. Every
// mutation runs as one atomic command under the repository lock, so the
// invariants (quantity >= 1, one entry per product id) hold after each call.
// Reads return copies; callers never see live state.
type CartRepository interface {
	Add(product model.Product) error
	Increment(productID string) error
	Decrement(productID string) error
	Remove(productID string) error
	FindAll() []model.CartEntry
	FindByProductID(productID string) (*model.CartEntry, error)
}

type cartRepository struct {
	mu      sync.RWMutex
	entries map[string]*model.CartEntry
	order   []string
}

func NewCartRepository() CartRepository {
	return &cartRepository{
		entries: make(map[string]*model.CartEntry),
	}
}

func (r *cartRepository) Add(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger.Debug("Adding cart entry", map[string]interface{}{
		"product_id": product.ID,
	})

	if _, ok := r.entries[product.ID]; ok {
		logger.Debug("Cart entry already present", map[string]interface{}{
			"product_id": product.ID,
		})
		return ErrEntryExists
	}

	r.entries[product.ID] = &model.CartEntry{Product: product, Quantity: 1}
	r.order = append(r.order, product.ID)

	logger.Debug("Cart entry added", map[string]interface{}{
		"product_id":  product.ID,
		"entry_count": len(r.entries),
	})
	return nil
}

func (r *cartRepository) Increment(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger.Debug("Incrementing cart entry quantity", map[string]interface{}{
		"product_id": productID,
	})

	entry, ok := r.entries[productID]
	if !ok {
		return ErrRecordNotFound
	}

	entry.Quantity++

	logger.Debug("Cart entry quantity incremented", map[string]interface{}{
		"product_id": productID,
		"quantity":   entry.Quantity,
	})
	return nil
}

func (r *cartRepository) Decrement(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger.Debug("Decrementing cart entry quantity", map[string]interface{}{
		"product_id": productID,
	})

	entry, ok := r.entries[productID]
	if !ok {
		return ErrRecordNotFound
	}
	if entry.Quantity <= 1 {
		return ErrQuantityAtMinimum
	}

	entry.Quantity--

	logger.Debug("Cart entry quantity decremented", map[string]interface{}{
		"product_id": productID,
		"quantity":   entry.Quantity,
	})
	return nil
}

func (r *cartRepository) Remove(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger.Debug("Removing cart entry", map[string]interface{}{
		"product_id": productID,
	})

	if _, ok := r.entries[productID]; !ok {
		return ErrRecordNotFound
	}

	delete(r.entries, productID)
	for i, id := range r.order {
		if id == productID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	logger.Debug("Cart entry removed", map[string]interface{}{
		"product_id":  productID,
		"entry_count": len(r.entries),
	})
	return nil
}

// FindAll returns a snapshot copy of the cart in first-add order.
func (r *cartRepository) FindAll() []model.CartEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]model.CartEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, *r.entries[id])
	}
	return entries
}

func (r *cartRepository) FindByProductID(productID string) (*model.CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[productID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	snapshot := *entry
	return &snapshot, nil
}

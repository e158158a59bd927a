package service

import (
	"errors"

	"github.com/ikkim/chorokshop-backend/internal/app/model"
	"github.com/ikkim/chorokshop-backend/internal/app/repository"
	"github.com/ikkim/chorokshop-backend/pkg/logger"
)

// CartService runs the cart commands and answers the derived queries. The
// four commands are total: commands aimed at ids with no matching entry are
// absorbed as no-ops instead of surfacing errors, so none of them can fail.
// AddToCart is the one exception, and only because it resolves the product
// against the catalog before the command runs.
//
// AddToCart is deliberately idempotent: re-adding a product that is already
// in the cart leaves its quantity untouched. Quantity moves only through the
// increment and decrement commands.
type CartService interface {
	AddToCart(productID string) error
	IncrementQuantity(productID string)
	DecrementQuantity(productID string)
	RemoveFromCart(productID string)
	Snapshot() []model.CartEntry
	TotalQuantity() int
	TotalCost() int64
	Summary() model.CartSummary
}

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
}

func NewCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *cartService) AddToCart(productID string) error {
	logger.Info("Adding product to cart", map[string]interface{}{
		"product_id": productID,
	})

	product, err := s.catalogRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"product_id": productID,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to resolve product for cart", err, map[string]interface{}{
			"product_id": productID,
		})
		return err
	}

	if err := s.cartRepo.Add(*product); err != nil {
		if errors.Is(err, repository.ErrEntryExists) {
			logger.Info("Product already in cart, quantity unchanged", map[string]interface{}{
				"product_id": productID,
			})
			return nil
		}
		logger.Error("Failed to add product to cart", err, map[string]interface{}{
			"product_id": productID,
		})
		return err
	}

	logger.Info("Product added to cart", map[string]interface{}{
		"product_id": productID,
	})
	return nil
}

func (s *cartService) IncrementQuantity(productID string) {
	logger.Debug("Incrementing cart quantity", map[string]interface{}{
		"product_id": productID,
	})

	if err := s.cartRepo.Increment(productID); err != nil {
		logger.Warn("Increment ignored: product not in cart", map[string]interface{}{
			"product_id": productID,
		})
		return
	}

	logger.Info("Cart quantity incremented", map[string]interface{}{
		"product_id": productID,
	})
}

func (s *cartService) DecrementQuantity(productID string) {
	logger.Debug("Decrementing cart quantity", map[string]interface{}{
		"product_id": productID,
	})

	if err := s.cartRepo.Decrement(productID); err != nil {
		if errors.Is(err, repository.ErrQuantityAtMinimum) {
			logger.Warn("Decrement ignored: quantity already at minimum", map[string]interface{}{
				"product_id": productID,
			})
			return
		}
		logger.Warn("Decrement ignored: product not in cart", map[string]interface{}{
			"product_id": productID,
		})
		return
	}

	logger.Info("Cart quantity decremented", map[string]interface{}{
		"product_id": productID,
	})
}

func (s *cartService) RemoveFromCart(productID string) {
	logger.Debug("Removing product from cart", map[string]interface{}{
		"product_id": productID,
	})

	if err := s.cartRepo.Remove(productID); err != nil {
		logger.Warn("Remove ignored: product not in cart", map[string]interface{}{
			"product_id": productID,
		})
		return
	}

	logger.Info("Product removed from cart", map[string]interface{}{
		"product_id": productID,
	})
}

// Snapshot returns a copy of the cart entries in first-add order. Mutating
// the returned slice has no effect on the cart.
func (s *cartService) Snapshot() []model.CartEntry {
	return s.cartRepo.FindAll()
}

func (s *cartService) TotalQuantity() int {
	total := 0
	for _, entry := range s.cartRepo.FindAll() {
		total += entry.Quantity
	}
	return total
}

func (s *cartService) TotalCost() int64 {
	var total int64
	for _, entry := range s.cartRepo.FindAll() {
		total += entry.Product.Price * int64(entry.Quantity)
	}
	return total
}

// Summary derives the totals from a single snapshot so the items and the
// sums always agree with each other.
func (s *cartService) Summary() model.CartSummary {
	logger.Debug("Building cart summary", nil)

	entries := s.cartRepo.FindAll()

	summary := model.CartSummary{Items: entries}
	for _, entry := range entries {
		summary.TotalQuantity += entry.Quantity
		summary.TotalCost += entry.Product.Price * int64(entry.Quantity)
	}
	return summary
}

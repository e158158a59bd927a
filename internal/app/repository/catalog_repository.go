package repository

import (
	"errors"
	"fmt"

	"github.com/ikkim/chorokshop-backend/internal/app/model"
	"github.com/ikkim/chorokshop-backend/pkg/logger"
)

// ErrRecordNotFound is returned by repository lookups when no entry matches
// the given key. Services map it to their own not-found sentinels.
var ErrRecordNotFound = errors.New("record not found")

type CatalogRepository interface {
	FindAll() []model.Product
	FindByID(id string) (*model.Product, error)
	GroupByCategory() []model.CategoryGroup
}

type catalogRepository struct {
	products []model.Product
	byID     map[string]int
}

// NewCatalogRepository builds the read-only catalog from the given product
// list. The list order is the presentation order and never changes afterwards.
func NewCatalogRepository(products []model.Product) (CatalogRepository, error) {
	byID := make(map[string]int, len(products))
	for i, product := range products {
		if product.ID == "" {
			return nil, fmt.Errorf("catalog product at position %d has an empty id", i)
		}
		if _, exists := byID[product.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q in catalog", product.ID)
		}
		if product.Price < 0 {
			return nil, fmt.Errorf("product %q has a negative price %d", product.ID, product.Price)
		}
		byID[product.ID] = i
	}

	logger.Debug("Catalog repository initialized", map[string]interface{}{
		"product_count": len(products),
	})

	return &catalogRepository{
		products: products,
		byID:     byID,
	}, nil
}

func (r *catalogRepository) FindAll() []model.Product {
	logger.Debug("Listing catalog products", map[string]interface{}{
		"count": len(r.products),
	})

	// Hand out a copy so callers can never reorder or edit the catalog.
	products := make([]model.Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *catalogRepository) FindByID(id string) (*model.Product, error) {
	logger.Debug("Finding product by ID in catalog", map[string]interface{}{
		"product_id": id,
	})

	idx, ok := r.byID[id]
	if !ok {
		logger.Debug("Product not found in catalog", map[string]interface{}{
			"product_id": id,
		})
		return nil, ErrRecordNotFound
	}

	product := r.products[idx]
	return &product, nil
}

func (r *catalogRepository) GroupByCategory() []model.CategoryGroup {
	logger.Debug("Grouping catalog products by category", nil)

	groups := make([]model.CategoryGroup, 0)
	index := make(map[model.ProductCategory]int)
	for _, product := range r.products {
		i, ok := index[product.Category]
		if !ok {
			i = len(groups)
			index[product.Category] = i
			groups = append(groups, model.CategoryGroup{Category: product.Category})
		}
		groups[i].Products = append(groups[i].Products, product)
	}

	logger.Debug("Catalog products grouped", map[string]interface{}{
		"category_count": len(groups),
	})
	return groups
}

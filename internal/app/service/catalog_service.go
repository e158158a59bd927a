package service

import (
	"errors"

	"github.com/ikkim/chorokshop-backend/internal/app/model"
	"github.com/ikkim/chorokshop-backend/internal/app/repository"
	"github.com/ikkim/chorokshop-backend/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogService exposes the fixed product list. Listing and grouping cannot
// fail; only lookups by id carry a not-found case.
type CatalogService interface {
	GetAllProducts() []model.Product
	GetProductByID(id string) (*model.Product, error)
	GetProductsGroupedByCategory() []model.CategoryGroup
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) GetAllProducts() []model.Product {
	logger.Debug("Fetching all products", nil)

	products := s.catalogRepo.FindAll()

	logger.Info("Products fetched successfully", map[string]interface{}{
		"count": len(products),
	})
	return products
}

func (s *catalogService) GetProductByID(id string) (*model.Product, error) {
	logger.Debug("Fetching product by ID", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.catalogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetProductsGroupedByCategory() []model.CategoryGroup {
	logger.Debug("Fetching products grouped by category", nil)

	groups := s.catalogRepo.GroupByCategory()

	logger.Info("Products grouped by category", map[string]interface{}{
		"category_count": len(groups),
	})
	return groups
}

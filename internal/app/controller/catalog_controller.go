package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/chorokshop-backend/internal/app/service"
	apperrors "github.com/ikkim/chorokshop-backend/internal/errors"
	"github.com/ikkim/chorokshop-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetAllProducts returns the full catalog in display order
// GET /api/v1/products
func (ctrl *CatalogController) GetAllProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products := ctrl.catalogService.GetAllProducts()

	log.Info("Products fetched successfully", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProductsGrouped returns the catalog grouped by category, with the
// categories listed in the order they first appear in the catalog
// GET /api/v1/products/grouped
func (ctrl *CatalogController) GetProductsGrouped(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	groups := ctrl.catalogService.GetProductsGroupedByCategory()

	log.Info("Grouped products fetched successfully", map[string]interface{}{
		"category_count": len(groups),
	})

	c.JSON(http.StatusOK, gin.H{
		"categories": groups,
		"count":      len(groups),
	})
}

// GetProductByID returns a single product
// GET /api/v1/products/:id
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	product, err := ctrl.catalogService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			apperrors.NotFound(c, apperrors.CatalogProductNotFound, "상품을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Product fetched successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

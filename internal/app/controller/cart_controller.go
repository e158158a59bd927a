package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/chorokshop-backend/internal/app/service"
	apperrors "github.com/ikkim/chorokshop-backend/internal/errors"
	"github.com/ikkim/chorokshop-backend/internal/middleware"
)

// CartController translates HTTP calls into cart commands. The increment,
// decrement and remove commands are total, so their handlers always answer
// 200 with the refreshed cart summary, whether or not the command changed
// anything.
type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetCart returns the cart snapshot with derived totals
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	summary := ctrl.cartService.Summary()

	log.Info("Cart fetched successfully", map[string]interface{}{
		"count":          len(summary.Items),
		"total_quantity": summary.TotalQuantity,
		"total_cost":     summary.TotalCost,
	})

	c.JSON(http.StatusOK, summary)
}

// AddToCart puts a catalog product into the cart with quantity 1. Adding a
// product that is already in the cart leaves its quantity untouched.
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "상품 정보가 올바르지 않습니다")
		return
	}

	log.Debug("Adding product to cart", map[string]interface{}{
		"product_id": req.ProductID,
	})

	if err := ctrl.cartService.AddToCart(req.ProductID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for cart", map[string]interface{}{
				"product_id": req.ProductID,
			})
			apperrors.NotFound(c, apperrors.CatalogProductNotFound, "상품을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to add product to cart", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		apperrors.InternalError(c, "")
		return
	}

	summary := ctrl.cartService.Summary()

	log.Info("Add to cart handled", map[string]interface{}{
		"product_id":     req.ProductID,
		"total_quantity": summary.TotalQuantity,
	})

	c.JSON(http.StatusOK, summary)
}

// IncrementQuantity raises a cart entry's quantity by one
// POST /api/v1/cart/:id/increment
func (ctrl *CartController) IncrementQuantity(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("id")

	log.Debug("Incrementing cart quantity", map[string]interface{}{
		"product_id": productID,
	})

	ctrl.cartService.IncrementQuantity(productID)

	c.JSON(http.StatusOK, ctrl.cartService.Summary())
}

// DecrementQuantity lowers a cart entry's quantity by one, stopping at 1.
// The entry leaves the cart only through an explicit remove.
// POST /api/v1/cart/:id/decrement
func (ctrl *CartController) DecrementQuantity(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("id")

	log.Debug("Decrementing cart quantity", map[string]interface{}{
		"product_id": productID,
	})

	ctrl.cartService.DecrementQuantity(productID)

	c.JSON(http.StatusOK, ctrl.cartService.Summary())
}

// RemoveFromCart deletes a cart entry
// DELETE /api/v1/cart/:id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID := c.Param("id")

	log.Debug("Removing product from cart", map[string]interface{}{
		"product_id": productID,
	})

	ctrl.cartService.RemoveFromCart(productID)

	c.JSON(http.StatusOK, ctrl.cartService.Summary())
}

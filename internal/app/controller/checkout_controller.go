package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/chorokshop-backend/internal/app/service"
	"github.com/ikkim/chorokshop-backend/internal/middleware"
	"github.com/ikkim/chorokshop-backend/pkg/util"
)

// CheckoutController answers the checkout button. Payment is not wired up in
// this demo: the handler reports the current totals and must leave the cart
// exactly as it found it.
type CheckoutController struct {
	cartService service.CartService
}

func NewCheckoutController(cartService service.CartService) *CheckoutController {
	return &CheckoutController{
		cartService: cartService,
	}
}

// Checkout returns the would-be order totals without placing an order
// POST /api/v1/checkout
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	summary := ctrl.cartService.Summary()

	log.Info("Checkout requested", map[string]interface{}{
		"entry_count":    len(summary.Items),
		"total_quantity": summary.TotalQuantity,
		"total_cost":     summary.TotalCost,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":        "결제 기능은 준비 중입니다",
		"total_quantity": summary.TotalQuantity,
		"total_cost":     summary.TotalCost,
		"total_display":  util.FormatKRW(summary.TotalCost),
	})
}

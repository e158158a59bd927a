package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/chorokshop-backend/config"
	"github.com/ikkim/chorokshop-backend/internal/app/controller"
	"github.com/ikkim/chorokshop-backend/internal/middleware"
)

type Router struct {
	catalogController  *controller.CatalogController
	cartController     *controller.CartController
	checkoutController *controller.CheckoutController
	config             *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	checkoutController *controller.CheckoutController,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController:  catalogController,
		cartController:     cartController,
		checkoutController: checkoutController,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "CHOROKSHOP API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", r.catalogController.GetAllProducts)
			products.GET("/grouped", r.catalogController.GetProductsGrouped)
			products.GET("/:id", r.catalogController.GetProductByID)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.POST("/:id/increment", r.cartController.IncrementQuantity)
			cart.POST("/:id/decrement", r.cartController.DecrementQuantity)
			cart.DELETE("/:id", r.cartController.RemoveFromCart)
		}

		v1.POST("/checkout", r.checkoutController.Checkout)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

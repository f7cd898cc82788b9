package routes

import (
	"bhumi_back_end/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(cors.Default())

	api := r.Group("/api")

	// Catalogue
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProduct)

	// Avis
	api.GET("/products/:id/reviews", h.GetProductReviews)
	api.POST("/products/:id/reviews", h.CreateReview)

	// Panier
	api.GET("/cart", h.GetCart)
	api.POST("/cart/add", h.AddToCart)
	api.DELETE("/cart", h.ClearCart)

	// Wishlist
	api.GET("/wishlist", h.GetWishlist)
	api.POST("/wishlist/toggle", h.ToggleWishlist)

	// Checkout
	api.GET("/checkout/quote", h.GetQuote)
	api.POST("/checkout/pay", h.Pay)
	api.POST("/checkout/confirm", h.ConfirmPayment)
}

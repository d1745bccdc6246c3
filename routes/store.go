package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/config"
	cartControllers "github.com/sayan01/groceri/controllers/cart"
	catalogControllers "github.com/sayan01/groceri/controllers/catalog"
	checkoutControllers "github.com/sayan01/groceri/controllers/checkout"
	orderControllers "github.com/sayan01/groceri/controllers/orders"
	userControllers "github.com/sayan01/groceri/controllers/user"
	"github.com/sayan01/groceri/middleware"
)

func SetupStoreRoutes(r *gin.Engine, db *gorm.DB, cfg *config.ServerConfig) {
	store := r.Group("/")
	store.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		// Catalog browsing and search
		store.GET("/categories", catalogControllers.ListCategoriesHandler(db))
		store.GET("/categories/:id", catalogControllers.GetCategoryHandler(db))
		store.GET("/products", catalogControllers.ListProductsHandler(db))
		store.GET("/products/:id", catalogControllers.GetProductHandler(db))

		// Cart
		store.GET("/cart", cartControllers.ListCartHandler(db))
		store.POST("/cart", cartControllers.AddToCartHandler(db))
		store.DELETE("/cart/:product_id", cartControllers.RemoveFromCartHandler(db))

		// Checkout and history
		store.POST("/checkout", checkoutControllers.PlaceOrderHandler(db))
		store.GET("/orders", orderControllers.ListOrdersHandler(db))

		// Profile
		store.GET("/profile", userControllers.GetProfileHandler(db))
		store.PUT("/profile", userControllers.UpdateProfileHandler(db))
	}
}

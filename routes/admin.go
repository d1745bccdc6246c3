package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/config"
	catalogControllers "github.com/sayan01/groceri/controllers/catalog"
	checkoutControllers "github.com/sayan01/groceri/controllers/checkout"
	orderControllers "github.com/sayan01/groceri/controllers/orders"
	"github.com/sayan01/groceri/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.ServerConfig) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.POST("/categories", catalogControllers.CreateCategoryHandler(db))
		admin.PUT("/categories/:id", catalogControllers.UpdateCategoryHandler(db))
		admin.DELETE("/categories/:id", catalogControllers.DeleteCategoryHandler(db))

		admin.POST("/products", catalogControllers.CreateProductHandler(db))
		admin.PUT("/products/:id", catalogControllers.UpdateProductHandler(db))
		admin.DELETE("/products/:id", catalogControllers.DeleteProductHandler(db))
		admin.GET("/products/export", catalogControllers.ExportProductsHandler(db))

		admin.GET("/orders", orderControllers.ListAllOrdersHandler(db))
		admin.GET("/orders/feed", checkoutControllers.FeedHandler)
	}
}

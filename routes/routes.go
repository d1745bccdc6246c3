package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/config"
)

// SetupRoutes is the single entry-point that wires up the Auth, Store, and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.ServerConfig) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// Customer routes (JWT-protected)
	SetupStoreRoutes(r, db, cfg)

	// Admin routes (JWT + admin claim)
	SetupAdminRoutes(r, db, cfg)
}

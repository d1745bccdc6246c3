package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/config"
	userControllers "github.com/sayan01/groceri/controllers/user"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.ServerConfig) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", userControllers.RegisterHandler(db))
		auth.POST("/login", userControllers.LoginHandler(
			db, cfg.JWTSecret, time.Duration(cfg.ExpirationMinutes)*time.Minute))
	}
}

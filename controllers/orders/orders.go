package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/middleware"
	"github.com/sayan01/groceri/models"
)

// ListOrders returns the user's transactions newest first, each with its
// nested orders preloaded. Read-only.
func ListOrders(db *gorm.DB, userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := db.Preload("Orders").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListAllOrders returns every user's transactions newest first.
func ListAllOrders(db *gorm.DB) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := db.Preload("Orders").
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		transactions, err := ListOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

// GET /admin/orders
func ListAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, err := ListAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

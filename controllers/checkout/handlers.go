package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/middleware"
	"github.com/sayan01/groceri/models"
)

// POST /checkout
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		trx, err := PlaceOrder(db, userID)

		// One retry on a detected racing writer, then surface the failure.
		var conflict *models.ConcurrencyConflictError
		if errors.As(err, &conflict) {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"op":      conflict.Op,
			}).Warn("checkout conflict, retrying once")
			trx, err = PlaceOrder(db, userID)
		}

		if err != nil {
			respondCheckoutError(c, err)
			return
		}

		Broadcast(trx)
		c.JSON(http.StatusCreated, trx)
	}
}

func respondCheckoutError(c *gin.Context, err error) {
	var (
		notFoundErr *models.NotFoundError
		stockErr    *models.InsufficientStockError
		conflictErr *models.ConcurrencyConflictError
	)
	switch {
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     stockErr.Error(),
			"product":   stockErr.ProductID,
			"available": stockErr.Available,
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": "Checkout conflicted with a concurrent update, try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
	}
}

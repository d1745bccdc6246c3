package checkoutControllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sayan01/groceri/models"
)

// generateReference builds a unique human-facing receipt reference.
func generateReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder converts the user's cart into a Transaction and its Orders,
// decrementing stock, in a single atomic unit. Per cart line, in insertion
// order: lock the product row FOR UPDATE, re-check stock, decrement, snapshot
// the price into an Order, accumulate the total, delete the line. Any failure
// rolls the whole unit back: no partial stock decrements, no orphaned
// transaction, no partially-drained cart.
func PlaceOrder(db *gorm.DB, userID uint) (*models.Transaction, error) {
	var lines []models.CartLine
	if err := db.Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	// Best-effort guard before opening the transaction. Stock can still move
	// between here and the locked re-check below, so the re-check is the one
	// that counts.
	if err := prevalidate(db, lines); err != nil {
		return nil, err
	}

	trx := models.Transaction{
		UserID:    userID,
		Reference: generateReference(),
		Total:     decimal.Zero,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		for _, line := range lines {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &models.NotFoundError{Entity: "product", ID: line.ProductID}
				}
				return err
			}

			if product.Quantity < line.Quantity {
				return &models.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Quantity,
				}
			}

			product.Quantity -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			// Price is read under the lock and frozen into the order so
			// later catalog edits never rewrite history.
			order := models.Order{
				TransactionID: trx.ID,
				ProductID:     product.ID,
				Quantity:      line.Quantity,
				Price:         product.Price,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			trx.Orders = append(trx.Orders, order)
			trx.Total = trx.Total.Add(order.Price.Mul(decimal.NewFromInt(int64(order.Quantity))))

			// The line was loaded before the transaction opened; a racing
			// removal must abort the unit, not silently charge for it.
			res := tx.Delete(&models.CartLine{}, line.ID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &models.ConcurrencyConflictError{
					Op:  "checkout",
					Err: errors.New("cart line removed during checkout"),
				}
			}
		}

		return tx.Model(&models.Transaction{}).
			Where("id = ?", trx.ID).
			Update("total", trx.Total).Error
	})
	if err != nil {
		return nil, classifyConflict("checkout", err)
	}
	return &trx, nil
}

func prevalidate(db *gorm.DB, lines []models.CartLine) error {
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return &models.NotFoundError{Entity: "product", ID: line.ProductID}
		}
		if line.Quantity > product.Quantity {
			return &models.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   line.Quantity,
				Available:   product.Quantity,
			}
		}
	}
	return nil
}

// classifyConflict maps Postgres serialization and deadlock failures, and
// check-constraint violations raced past the row lock, to
// ConcurrencyConflictError so callers know a retry may succeed.
func classifyConflict(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "23514":
			return &models.ConcurrencyConflictError{Op: op, Err: err}
		}
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return &models.ConcurrencyConflictError{Op: op, Err: err}
	}
	return err
}

package cartControllers

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sayan01/groceri/models"
)

// CartLineView is one cart line joined with live product data.
type CartLineView struct {
	LineID      uint            `json:"line_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Available   int             `json:"available"`
}

type CartView struct {
	Lines []CartLineView  `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// AddToCart creates a cart line for (userID, productID) or increments the
// existing one. The stock check and the line write happen in one transaction
// holding a FOR UPDATE lock on the product row, so two concurrent adds can
// never cart more than the available stock between them. A second check runs
// again at checkout time since stock can change between add and checkout.
func AddToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.CartLine, error) {
	if quantity <= 0 {
		return nil, &models.ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}

	var line models.CartLine
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "product", ID: productID}
			}
			return err
		}

		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if quantity > product.Quantity {
				return &models.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   quantity,
					Available:   product.Quantity,
				}
			}
			line = models.CartLine{UserID: userID, ProductID: productID, Quantity: quantity}
			return tx.Create(&line).Error
		case err != nil:
			return err
		default:
			if line.Quantity+quantity > product.Quantity {
				return &models.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   quantity,
					Available:   product.Quantity - line.Quantity,
				}
			}
			line.Quantity += quantity
			return tx.Save(&line).Error
		}
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// RemoveFromCart deletes the user's line for the product.
func RemoveFromCart(db *gorm.DB, userID, productID uint) error {
	result := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartLine{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "cart line for product", ID: productID}
	}
	return nil
}

// ListCart returns the user's cart lines in insertion order joined with
// product data, plus the computed total. Read-only.
func ListCart(db *gorm.DB, userID uint) (*CartView, error) {
	var lines []CartLineView
	err := db.Model(&models.CartLine{}).
		Select("cart_lines.id as line_id, cart_lines.product_id, products.name as product_name, cart_lines.quantity, products.price, products.quantity as available").
		Joins("join products on products.id = cart_lines.product_id").
		Where("cart_lines.user_id = ?", userID).
		Order("cart_lines.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return &CartView{Lines: lines, Total: total}, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one completed checkout. Immutable once committed; the total
// is accumulated only during its own construction inside the checkout engine.
type Transaction struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Reference string          `gorm:"size:64;uniqueIndex;not null" json:"reference"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Orders    []Order         `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"orders"`
	CreatedAt time.Time       `gorm:"index" json:"created_at"`
}

// Order is a single line of a transaction. Price is the product price
// captured at the moment of sale, deliberately decoupled from Product.Price
// so later catalog edits never rewrite history.
type Order struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID uint            `gorm:"not null;index" json:"transaction_id"`
	ProductID     uint            `gorm:"not null" json:"product_id"`
	Quantity      int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

package models

import "time"

// CartLine is one pending (user, product, quantity) entry prior to checkout.
// The composite unique index keeps a single line per user/product pair; the
// cart service increments the existing line on repeat adds.
type CartLine struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"size:64;not null" json:"name"`
	CategoryID      uint            `gorm:"not null;index" json:"category_id"`
	Quantity        int             `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	ManufactureDate time.Time       `gorm:"type:date;not null" json:"manufacture_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

package model

import (
	"time"
)

// Product represents the database model for redeemable products
type Product struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Name           string    `gorm:"not null;size:200"`
	Description    string    `gorm:"type:text"`
	PointsRequired int64     `gorm:"not null"`
	StockAvailable int       `gorm:"not null;default:0"`
	Active         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

package model

import (
	"time"
)

// Redemption represents the database model for redemptions
type Redemption struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	ProductID   uint64    `gorm:"not null;index"`
	PointsSpent int64     `gorm:"not null"`
	RedeemedAt  time.Time `gorm:"not null"`
	Delivered   bool      `gorm:"not null;default:false"`
	DeliveredAt *time.Time

	// Define relationships
	User    User    `gorm:"foreignKey:UserID;references:ID"`
	Product Product `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName specifies the table name for Redemption
func (Redemption) TableName() string {
	return "redemptions"
}

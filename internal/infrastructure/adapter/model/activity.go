package model

import (
	"time"
)

// Activity represents the database model for activities
type Activity struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Title          string    `gorm:"not null;size:200"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"not null;size:30;index"`
	ScheduledAt    time.Time `gorm:"not null;index"`
	Location       string    `gorm:"size:200"`
	TotalSeats     int       `gorm:"not null"`
	AvailableSeats int       `gorm:"not null"`
	PointsAward    int64     `gorm:"not null;default:10"`
	Active         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

package model

import (
	"time"
)

// Enrollment represents the database model for enrollments
type Enrollment struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_enrollments_user_activity,priority:1"`
	ActivityID    uint64    `gorm:"not null;uniqueIndex:idx_enrollments_user_activity,priority:2;index"`
	Status        string    `gorm:"not null;size:20;index"`
	PointsAwarded int64     `gorm:"not null;default:0"`
	EnrolledAt    time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Activity Activity `gorm:"foreignKey:ActivityID;references:ID"`
}

// TableName specifies the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}

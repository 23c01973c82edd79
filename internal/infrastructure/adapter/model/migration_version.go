package model

import "time"

// MigrationVersion is one row per schema version the migrator has applied
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	Details   string    `gorm:"type:text"`
	AppliedAt time.Time `gorm:"not null;index"`
}

func (MigrationVersion) TableName() string {
	return "schema_versions"
}

package model

import (
	"time"
)

// LedgerEntry represents the database model for the append-only ledger.
// Unpublished rows double as the outbox for the event stream.
type LedgerEntry struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement"`
	UserID        uint64     `gorm:"not null;index"`
	Kind          string     `gorm:"not null;size:20"`
	PointsDelta   int64      `gorm:"not null"`
	BalanceAfter  int64      `gorm:"not null"`
	ReferenceType string     `gorm:"not null;size:20"`
	ReferenceID   uint64     `gorm:"not null"`
	CreatedAt     time.Time  `gorm:"not null;index"`
	PublishedAt   *time.Time `gorm:"index"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
)

// EntryKind names the transition a ledger entry records
type EntryKind string

// Entry kinds
const (
	EntryEnrolled  EntryKind = "enrolled"
	EntryCancelled EntryKind = "cancelled"
	EntryAttended  EntryKind = "attended"
	EntryAbsent    EntryKind = "absent"
	EntryRedeemed  EntryKind = "redeemed"
	EntryDelivered EntryKind = "delivered"
)

// ReferenceType names the record a ledger entry points at
type ReferenceType string

// Reference types
const (
	ReferenceEnrollment ReferenceType = "enrollment"
	ReferenceRedemption ReferenceType = "redemption"
)

// LedgerEntry is the append-only audit record of one successful transition
type LedgerEntry struct {
	ID            uint64
	UserID        uint64
	Kind          EntryKind
	PointsDelta   int64 // Signed change applied to the user balance
	BalanceAfter  int64
	ReferenceType ReferenceType
	ReferenceID   uint64
	CreatedAt     time.Time
	PublishedAt   *time.Time // Set once the entry has been delivered to the event stream
}

// NewLedgerEntry creates an unpublished entry
func NewLedgerEntry(
	userID uint64,
	kind EntryKind,
	pointsDelta int64,
	balanceAfter int64,
	referenceType ReferenceType,
	referenceID uint64,
	timeProvider coreport.TimeProvider,
) *LedgerEntry {
	return &LedgerEntry{
		UserID:        userID,
		Kind:          kind,
		PointsDelta:   pointsDelta,
		BalanceAfter:  balanceAfter,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		CreatedAt:     timeProvider.Now(),
	}
}

// IsCredit returns true if this entry increased the user's balance
func (e *LedgerEntry) IsCredit() bool {
	return e.PointsDelta > 0
}

// IsDebit returns true if this entry decreased the user's balance
func (e *LedgerEntry) IsDebit() bool {
	return e.PointsDelta < 0
}

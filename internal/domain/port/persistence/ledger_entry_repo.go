package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
)

// LedgerEntryRepository defines methods to interact with the append-only ledger
type LedgerEntryRepository interface {
	// Append stores a new entry and fills in its ID
	// Called inside the same transaction as the transition it records
	Append(ctx context.Context, entry *entity.LedgerEntry) error

	// ListByUser returns the most recent entries of a user, newest first
	ListByUser(ctx context.Context, userID uint64, limit int) ([]*entity.LedgerEntry, error)

	// ClaimUnpublished returns up to limit unpublished entries, oldest first,
	// skipping rows already locked by another dispatcher
	ClaimUnpublished(ctx context.Context, limit int) ([]*entity.LedgerEntry, error)

	// MarkPublished stamps the given entries as delivered
	MarkPublished(ctx context.Context, ids []uint64, publishedAt time.Time) error
}

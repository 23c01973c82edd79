package outbox

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	"github.com/segmentio/kafka-go"
)

// Event is the wire form of a ledger entry
type Event struct {
	EntryID       uint64    `json:"entry_id"`
	UserID        uint64    `json:"user_id"`
	Kind          string    `json:"kind"`
	PointsDelta   int64     `json:"points_delta"`
	BalanceAfter  int64     `json:"balance_after"`
	ReferenceType string    `json:"reference_type"`
	ReferenceID   uint64    `json:"reference_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewEvent converts a ledger entry to its event
func NewEvent(entry *entity.LedgerEntry) Event {
	return Event{
		EntryID:       entry.ID,
		UserID:        entry.UserID,
		Kind:          string(entry.Kind),
		PointsDelta:   entry.PointsDelta,
		BalanceAfter:  entry.BalanceAfter,
		ReferenceType: string(entry.ReferenceType),
		ReferenceID:   entry.ReferenceID,
		OccurredAt:    entry.CreatedAt.UTC(),
	}
}

// toMessage encodes the event keyed by user
func (e Event) toMessage(now time.Time) (kafka.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatUint(e.UserID, 10)),
		Value: payload,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("ledger." + e.Kind)},
		},
	}, nil
}

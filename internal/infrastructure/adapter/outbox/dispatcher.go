// Package outbox delivers committed ledger entries to Kafka.
package outbox

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/metrics"
	"github.com/segmentio/kafka-go"
)

const opPublish = "outbox_publish"

type messageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

// Dispatcher polls unpublished ledger entries and delivers them at least once.
// Claiming, writing and stamping share one unit of work, so a failed write leaves
// the batch unpublished for the next poll.
type Dispatcher struct {
	uow              persistence.UnitOfWork
	producer         messageWriter
	topic            string
	pollInterval     time.Duration
	batchSize        int
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
	metrics          metrics.Recorder
	shutdownComplete chan struct{}
}

// NewDispatcher constructs a Dispatcher
func NewDispatcher(
	uow persistence.UnitOfWork,
	producer messageWriter,
	topic string,
	pollInterval time.Duration,
	batchSize int,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	recorder metrics.Recorder,
) *Dispatcher {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if recorder == nil {
		recorder = metrics.NewNoopMetrics()
	}
	return &Dispatcher{
		uow:              uow,
		producer:         producer,
		topic:            topic,
		pollInterval:     pollInterval,
		batchSize:        batchSize,
		timeProvider:     timeProvider,
		logger:           logger,
		metrics:          recorder,
		shutdownComplete: make(chan struct{}),
	}
}

// Start launches the polling loop. It should be called in a goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer func() {
		ticker.Stop()
		close(d.shutdownComplete)
	}()

	d.logger.Info("Outbox dispatcher started", map[string]any{
		"topic":         d.topic,
		"poll_interval": d.pollInterval.String(),
		"batch_size":    d.batchSize,
	})

	for {
		if _, err := d.ProcessBatch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("Outbox dispatcher error", map[string]any{
				"error": err.Error(),
			})
		}

		select {
		case <-ctx.Done():
			d.logger.Info("Outbox dispatcher stopped", nil)
			return
		case <-ticker.C:
		}
	}
}

// Wait waits until the dispatcher stops
func (d *Dispatcher) Wait() {
	<-d.shutdownComplete
}

// ProcessBatch delivers one batch and returns how many entries were published
func (d *Dispatcher) ProcessBatch(ctx context.Context) (int, error) {
	start := d.timeProvider.Now()
	delivered := 0

	err := d.uow.Execute(ctx, opPublish, func(txCtx context.Context) error {
		delivered = 0
		repo := d.uow.GetLedgerEntryRepository(txCtx)

		entries, err := repo.ClaimUnpublished(txCtx, d.batchSize)
		if err != nil || len(entries) == 0 {
			return err
		}

		now := d.timeProvider.Now().UTC()
		messages := make([]kafka.Message, 0, len(entries))
		ids := make([]uint64, 0, len(entries))
		for _, entry := range entries {
			msg, err := NewEvent(entry).toMessage(now)
			if err != nil {
				return err
			}
			messages = append(messages, msg)
			ids = append(ids, entry.ID)
		}

		if err := d.producer.WriteMessages(txCtx, d.topic, messages...); err != nil {
			d.metrics.ObserveOutboxBatch(0, len(entries), d.timeProvider.Now().Sub(start))
			return err
		}

		if err := repo.MarkPublished(txCtx, ids, now); err != nil {
			return err
		}
		delivered = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if delivered > 0 {
		d.metrics.ObserveOutboxBatch(delivered, 0, d.timeProvider.Now().Sub(start))
		d.logger.Debug("Ledger entries published", map[string]any{
			"count": delivered,
			"topic": d.topic,
		})
	}
	return delivered, nil
}

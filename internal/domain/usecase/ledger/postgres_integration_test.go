//go:build integration

package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"
)

// newPostgresFixture runs the ledger against a throwaway PostgreSQL server so
// the row locks and lock_timeout behave as they do in production.
func newPostgresFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("community_ledger"),
		postgrescontainer.WithUsername("ledger"),
		postgrescontainer.WithPassword("ledger"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	config := &database.Config{
		Driver:          database.DriverPostgres,
		Host:            host,
		Port:            port.Int(),
		Username:        "ledger",
		Password:        "ledger",
		Database:        "community_ledger",
		SSLMode:         "disable",
		MaxOpenConns:    32,
		MaxIdleConns:    8,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
		QueryTimeout:    10 * time.Second,
		LockTimeout:     2 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   5,
		RetryDelay:      time.Second,
	}

	testDB := database.NewTestDBManagerWithConfig(t, config, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	return fixtureFor(t, testDB)
}

func TestPostgres_ConcurrentEnrollNeverOverbooks(t *testing.T) {
	f := newPostgresFixture(t)

	const (
		callers = 30
		seats   = 4
		award   = 15
	)
	activityID := f.db.CreateTestActivity(t, "Basketball", seats, award)

	users := make([]uint64, callers)
	for i := range users {
		users[i] = f.db.CreateTestUser(t, fmt.Sprintf("player%02d", i), 0)
	}

	results := make([]error, callers)
	var g errgroup.Group
	for i := range users {
		g.Go(func() error {
			_, results[i] = f.service.Enroll(f.ctx, users[i], activityID)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	winners, conflicts := 0, 0
	for _, err := range results {
		switch Outcome(err) {
		case "ok":
			winners++
		case "conflict":
			conflicts++
		default:
			assert.ErrorIs(t, err, errs.ErrNoSeatsAvailable)
		}
	}
	assert.LessOrEqual(t, winners, seats)
	if conflicts == 0 {
		assert.Equal(t, seats, winners)
	}
	assert.Equal(t, seats-winners, f.seats(activityID))

	awarded := int64(0)
	for _, userID := range users {
		awarded += f.points(userID)
	}
	assert.Equal(t, int64(winners*award), awarded)
}

func TestPostgres_ConcurrentRedeemNeverOverdraws(t *testing.T) {
	f := newPostgresFixture(t)

	userID := f.db.CreateTestUser(t, "ana", 50)
	productID := f.db.CreateTestProduct(t, "Bottle", 20, 10)

	const callers = 8
	results := make([]error, callers)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			_, results[i] = f.service.Redeem(f.ctx, userID, productID)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.Contains(t, []string{"insufficient_points", "conflict"}, Outcome(err))
	}
	assert.LessOrEqual(t, winners, 2)
	assert.Equal(t, int64(50-20*winners), f.points(userID))
	assert.Equal(t, 10-winners, f.stock(productID))
	assert.GreaterOrEqual(t, f.points(userID), int64(0))
}

func TestPostgres_LedgerReplaysToBalance(t *testing.T) {
	f := newPostgresFixture(t)

	const players = 6
	users := make([]uint64, players)
	for i := range users {
		users[i] = f.db.CreateTestUser(t, fmt.Sprintf("member%d", i), 0)
	}
	football := f.db.CreateTestActivity(t, "Football", 3, 10)
	music := f.db.CreateTestActivity(t, "Choir", 3, 25)
	productID := f.db.CreateTestProduct(t, "Sticker", 10, 5)

	// Mixed traffic on shared activities and stock
	var g errgroup.Group
	for i := range users {
		g.Go(func() error {
			userID := users[i]
			enrollment, err := f.service.Enroll(f.ctx, userID, football)
			if err == nil && i%2 == 0 {
				_, _ = f.service.Cancel(f.ctx, userID, enrollment.ID)
			}
			_, _ = f.service.Enroll(f.ctx, userID, music)
			_, _ = f.service.Redeem(f.ctx, userID, productID)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, userID := range users {
		entries := f.entries(userID)

		sum := int64(0)
		for _, entry := range entries {
			sum += entry.PointsDelta
		}
		assert.Equal(t, f.points(userID), sum, "user %d balance must equal the sum of its entries", userID)
		if len(entries) > 0 {
			assert.Equal(t, f.points(userID), entries[0].BalanceAfter)
		}
	}

	assert.GreaterOrEqual(t, f.seats(football), 0)
	assert.GreaterOrEqual(t, f.seats(music), 0)
	assert.GreaterOrEqual(t, f.stock(productID), 0)
}

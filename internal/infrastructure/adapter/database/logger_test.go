package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/community-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestStatementShape(t *testing.T) {
	tests := []struct {
		sql   string
		kind  string
		table string
	}{
		{`SELECT * FROM "activities" WHERE "activities"."id" = $1 FOR UPDATE`, "SELECT", "activities"},
		{`INSERT INTO "ledger_entries" ("user_id","kind") VALUES ($1,$2)`, "INSERT", "ledger_entries"},
		{`UPDATE "users" SET "points"=$1 WHERE "id" = $2`, "UPDATE", "users"},
		{`DELETE FROM enrollments WHERE id = 1`, "DELETE", "enrollments"},
		{`select count(*) from products`, "SELECT", "products"},
		{`SET LOCAL lock_timeout = '2000ms'`, "", ""},
		{``, "", ""},
	}

	for _, tt := range tests {
		kind, table := statementShape(tt.sql)
		assert.Equal(t, tt.kind, kind, tt.sql)
		assert.Equal(t, tt.table, table, tt.sql)
	}
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	statement := func() (string, int64) { return `SELECT * FROM "users"`, 1 }

	t.Run("Failure is logged as error", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(3 * coreport.Millisecond)
		mockLogger.EXPECT().Error("SQL statement failed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["table"] == "users" && fields["error"] == "boom" && fields["elapsed_ms"] == int64(3)
		})).Return()

		NewDatabaseLogger(mockLogger, mockTime, "error").Trace(context.Background(), begin, statement, errors.New("boom"))
	})

	t.Run("Missing row is not an error", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		NewDatabaseLogger(mockLogger, mockTime, "warn").Trace(context.Background(), begin, statement, gorm.ErrRecordNotFound)
	})

	t.Run("Info level traces every statement at debug", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(coreport.Millisecond)
		mockLogger.EXPECT().Debug("SQL statement", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["statement"] == "SELECT" && fields["rows"] == int64(1) && fields["source"] == "database"
		})).Return()

		NewDatabaseLogger(mockLogger, mockTime, "info").Trace(context.Background(), begin, statement, nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		NewDatabaseLogger(mockLogger, nil, "silent").Trace(context.Background(), begin, statement, errors.New("boom"))
	})
}

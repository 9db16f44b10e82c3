package store

import (
	"context"
	"testing"

	"ledger_api/internal/db"
	"ledger_api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestLedger opens a fresh in-memory SQLite store with the migrated
// schema. Open connections are capped at one so the in-memory database is
// shared by every query in the test.
func newTestLedger(t *testing.T) *GormLedger {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(conn))
	return NewLedger(conn)
}

func mustAppend(t *testing.T, ledger *GormLedger, title string, amount float64, txType, sessionID string) *domain.Transaction {
	t.Helper()
	a := amount
	tx, err := domain.NewTransaction(title, &a, txType, sessionID)
	require.NoError(t, err)
	require.NoError(t, ledger.Append(context.Background(), tx))
	return tx
}

func TestListBySession_EmptySession(t *testing.T) {
	ledger := newTestLedger(t)

	rows, err := ledger.ListBySession(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows) // Empty list, not null, in the JSON response
}

func TestListBySession_IsolatesSessions(t *testing.T) {
	ledger := newTestLedger(t)
	mustAppend(t, ledger, "a1", 100, domain.TypeCredit, "session-a")
	mustAppend(t, ledger, "a2", 50, domain.TypeDebit, "session-a")
	mustAppend(t, ledger, "b1", 999, domain.TypeCredit, "session-b")

	rowsA, err := ledger.ListBySession(context.Background(), "session-a")
	require.NoError(t, err)
	rowsB, err := ledger.ListBySession(context.Background(), "session-b")
	require.NoError(t, err)

	require.Len(t, rowsA, 2)
	assert.Equal(t, "a1", rowsA[0].Title)
	assert.Equal(t, 100.0, rowsA[0].Amount)
	assert.Equal(t, "a2", rowsA[1].Title)
	assert.Equal(t, -50.0, rowsA[1].Amount)

	require.Len(t, rowsB, 1)
	assert.Equal(t, "b1", rowsB[0].Title)
}

func TestFindBySession_MatchesIdAndSession(t *testing.T) {
	ledger := newTestLedger(t)
	created := mustAppend(t, ledger, "groceries", 75, domain.TypeDebit, "session-a")

	found, err := ledger.FindBySession(context.Background(), created.ID, "session-a")

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "groceries", found.Title)
	assert.Equal(t, -75.0, found.Amount)
}

func TestFindBySession_OtherSessionIsAbsent(t *testing.T) {
	ledger := newTestLedger(t)
	created := mustAppend(t, ledger, "secret", 10, domain.TypeCredit, "session-a")

	// The identifier alone is never sufficient, session scoping always applies
	found, err := ledger.FindBySession(context.Background(), created.ID, "session-b")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindBySession_UnknownIdIsAbsent(t *testing.T) {
	ledger := newTestLedger(t)

	found, err := ledger.FindBySession(context.Background(), "a3bb189e-8bf9-3888-9912-ace4e6543002", "session-a")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSumBySession_EmptySessionIsZero(t *testing.T) {
	ledger := newTestLedger(t)

	total, err := ledger.SumBySession(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestSumBySession_SignedSum(t *testing.T) {
	ledger := newTestLedger(t)
	mustAppend(t, ledger, "pay", 5000, domain.TypeCredit, "session-a")
	mustAppend(t, ledger, "rent", 2000, domain.TypeDebit, "session-a")
	mustAppend(t, ledger, "noise", 7777, domain.TypeCredit, "session-b")

	total, err := ledger.SumBySession(context.Background(), "session-a")

	require.NoError(t, err)
	assert.Equal(t, 3000.0, total)
}

func TestSumBySession_LiveRecomputation(t *testing.T) {
	ledger := newTestLedger(t)
	mustAppend(t, ledger, "first", 100, domain.TypeCredit, "session-a")

	total, err := ledger.SumBySession(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)

	// A later write is reflected by the next aggregate read
	mustAppend(t, ledger, "second", 40, domain.TypeDebit, "session-a")

	total, err = ledger.SumBySession(context.Background(), "session-a")
	require.NoError(t, err)
	assert.Equal(t, 60.0, total)
}

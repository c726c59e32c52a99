package inmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qalifah/logistics/ledger"
	"github.com/Qalifah/logistics/order"
)

func entry(id order.ID) ledger.Entry {
	m := order.Truck{RouteMinutes: 50}
	return ledger.Entry{
		OrderID: id,
		Plan:    order.TransportPlan{Mode: m, ETADays: order.ETADays(m), Info: order.Info(m)},
	}
}

func TestAppendAndEntries(t *testing.T) {
	repo := NewLedgerRepository()

	require.NoError(t, repo.Append(entry(1)))
	require.NoError(t, repo.Append(entry(2)))
	// Duplicate ids are recorded as-is.
	require.NoError(t, repo.Append(entry(1)))

	entries := repo.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, order.ID(1), entries[0].OrderID)
	assert.Equal(t, order.ID(2), entries[1].OrderID)
	assert.Equal(t, order.ID(1), entries[2].OrderID)
}

func TestEntriesReturnsCopy(t *testing.T) {
	repo := NewLedgerRepository()
	require.NoError(t, repo.Append(entry(1)))

	entries := repo.Entries()
	entries[0].OrderID = 99

	assert.Equal(t, order.ID(1), repo.Entries()[0].OrderID)
}

func TestReset(t *testing.T) {
	repo := NewLedgerRepository()
	require.NoError(t, repo.Append(entry(1)))
	require.NoError(t, repo.Append(entry(2)))

	require.NoError(t, repo.Reset())
	assert.Empty(t, repo.Entries())

	// The ledger keeps working after a reset.
	require.NoError(t, repo.Append(entry(3)))
	assert.Len(t, repo.Entries(), 1)
}

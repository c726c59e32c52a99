package inmem

import (
	"sync"

	"github.com/Qalifah/logistics/ledger"
)

type ledgerRepository struct {
	mtx     sync.RWMutex
	entries []ledger.Entry
}

// NewLedgerRepository returns an empty in-memory ledger repository.
func NewLedgerRepository() ledger.Repository {
	return &ledgerRepository{}
}

func (r *ledgerRepository) Append(e ledger.Entry) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *ledgerRepository) Entries() []ledger.Entry {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	out := make([]ledger.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *ledgerRepository) Reset() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.entries = nil
	return nil
}

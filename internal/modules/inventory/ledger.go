package inventory

import (
	"strings"
	"sync"
)

// Ledger owns the mutable stock records. It is the single source of truth
// for quantities: readers take a snapshot, and the one mutating operation
// (ReserveOne) runs under the write lock so concurrent reservations against
// the same record are serialized.
type Ledger struct {
	mu      sync.RWMutex
	records []Record
}

// NewLedger copies the given records into a fresh ledger.
func NewLedger(records []Record) *Ledger {
	l := &Ledger{records: make([]Record, len(records))}
	copy(l.records, records)
	return l
}

// Snapshot returns a copy of all records, consistent at the time of the call.
func (l *Ledger) Snapshot() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// ReserveOne decrements the first record matching the SKU exactly and the
// store case-insensitively that still has stock. First fit in ledger order
// wins. It reports whether a unit was reserved; quantities never go below
// zero.
func (l *Ledger) ReserveOne(sku, store string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.records {
		r := &l.records[i]
		if r.SKU != sku || !strings.EqualFold(r.Store, store) || r.Qty <= 0 {
			continue
		}
		r.Qty--
		return true
	}
	return false
}

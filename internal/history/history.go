package history

import (
	"strings"
	"sync"

	"moviegrip/internal/domain"
	"moviegrip/internal/eventbus"
)

// DefaultLimit is the number of queries kept when no limit is given
const DefaultLimit = 20

// Recorder keeps the most recent successful searches
type Recorder interface {
	Record(query string, results int)
	Recent() []domain.HistoryEntry
	Last() (domain.HistoryEntry, bool)
	Close()
}

// recorder is the concrete implementation
type recorder struct {
	mu          sync.RWMutex
	limit       int
	entries     []domain.HistoryEntry // newest last
	unsubscribe func()
}

// NewRecorder creates a recorder that listens for successful fetches on bus.
// bus may be nil, in which case entries are only added through Record.
func NewRecorder(bus eventbus.EventBus, limit int) Recorder {
	if limit <= 0 {
		limit = DefaultLimit
	}
	r := &recorder{limit: limit}

	if bus != nil {
		r.unsubscribe = bus.Subscribe(eventbus.EventFetchSucceeded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.FetchSucceededEvent); ok {
				r.Record(event.Query, event.Results)
			}
		})
	}

	return r
}

// Record adds a query. Repeating a query moves it to the front.
func (r *recorder) Record(query string, results int) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.Query == query {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	r.entries = append(r.entries, domain.HistoryEntry{Query: query, Results: results})
	if len(r.entries) > r.limit {
		r.entries = r.entries[len(r.entries)-r.limit:]
	}
}

// Recent returns entries newest first
func (r *recorder) Recent() []domain.HistoryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(r.entries))
	for i, e := range r.entries {
		out[len(r.entries)-1-i] = e
	}
	return out
}

// Last returns the most recent entry
func (r *recorder) Last() (domain.HistoryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return domain.HistoryEntry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Close detaches the recorder from the bus
func (r *recorder) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}
}

// internal/history/history.go
package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one entry in the append-only operation history: the public
// operation that ran and the object it returned.
type Record struct {
	ID        string      `json:"id"`
	Action    string      `json:"action"`
	Result    interface{} `json:"result"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewRecord stamps a record with a fresh ID and timestamp.
func NewRecord(action string, result interface{}) Record {
	return Record{
		ID:        uuid.NewString(),
		Action:    action,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
}

// Sink receives history records. Implementations must be safe for
// sequential use; the advisor appends after each public operation.
type Sink interface {
	Append(ctx context.Context, record Record) error
}

// Store is a Sink that can also read records back, newest first.
type Store interface {
	Sink
	List(ctx context.Context, limit int) ([]Record, error)
}

// MultiSink fans one record out to several sinks. The first error wins but
// all sinks are attempted.
type MultiSink []Sink

func (m MultiSink) Append(ctx context.Context, record Record) error {
	var firstErr error
	for _, sink := range m {
		if err := sink.Append(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// MemoryStore keeps records in memory; used in tests and as a default sink.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.records[i])
	}
	return out, nil
}

// internal/history/file.go
package history

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	commonerrors "marketing-advisor/internal/common/errors"
)

// FileStore persists history records as JSON lines, one record per line,
// appended on every operation.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return commonerrors.NewHistoryAppendFailedError("file", err)
	}
	defer f.Close()

	line, err := json.Marshal(record)
	if err != nil {
		return commonerrors.NewHistoryAppendFailedError("file", err)
	}

	if _, err := fmt.Fprintln(f, string(line)); err != nil {
		return commonerrors.NewHistoryAppendFailedError("file", err)
	}

	return nil
}

func (s *FileStore) List(_ context.Context, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, commonerrors.NewHistoryReadFailedError("file", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var record Record
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return nil, commonerrors.NewHistoryReadFailedError("file", err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, commonerrors.NewHistoryReadFailedError("file", err)
	}

	// newest first
	out := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, records[i])
	}
	return out, nil
}

// internal/history/postgres.go
package history

import (
	"context"
	"encoding/json"

	"marketing-advisor/internal/common/database"
	commonerrors "marketing-advisor/internal/common/errors"
)

// PostgresStore persists history records in the advisor_history table.
// The table is insert-only; records are never updated or deleted.
//
//	CREATE TABLE advisor_history (
//	    id         UUID PRIMARY KEY,
//	    action     TEXT NOT NULL,
//	    result     JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	db *database.PostgresClient
}

func NewPostgresStore(db *database.PostgresClient) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, record Record) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return commonerrors.NewHistoryAppendFailedError("postgres", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO advisor_history (id, action, result, created_at) VALUES ($1, $2, $3, $4)`,
		record.ID, record.Action, result, record.CreatedAt,
	)
	if err != nil {
		return commonerrors.NewHistoryAppendFailedError("postgres", err)
	}

	return nil
}

func (s *PostgresStore) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, action, result, created_at FROM advisor_history ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, commonerrors.NewHistoryReadFailedError("postgres", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var result []byte
		if err := rows.Scan(&record.ID, &record.Action, &result, &record.CreatedAt); err != nil {
			return nil, commonerrors.NewHistoryReadFailedError("postgres", err)
		}

		var payload interface{}
		if err := json.Unmarshal(result, &payload); err != nil {
			return nil, commonerrors.NewHistoryReadFailedError("postgres", err)
		}
		record.Result = payload

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, commonerrors.NewHistoryReadFailedError("postgres", err)
	}

	return records, nil
}

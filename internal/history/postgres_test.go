// internal/history/postgres_test.go
package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-advisor/internal/common/database"
	commonerrors "marketing-advisor/internal/common/errors"
)

func TestPostgresStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	record := NewRecord("analyze_business", map[string]interface{}{"overall_score": 43.33})
	payload, err := json.Marshal(record.Result)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO advisor_history`).
		WithArgs(record.ID, record.Action, payload, record.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPostgresStore(&database.PostgresClient{DB: db})
	require.NoError(t, store.Append(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendWrapsDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO advisor_history`).
		WillReturnError(errors.New("connection refused"))

	store := NewPostgresStore(&database.PostgresClient{DB: db})
	appendErr := store.Append(context.Background(), NewRecord("analyze_business", nil))

	require.Error(t, appendErr)
	var se *commonerrors.StandardError
	require.ErrorAs(t, appendErr, &se)
	assert.Equal(t, commonerrors.ErrCodeHistoryAppendFailed, se.Code)
	assert.True(t, se.Retryable)
}

func TestPostgresStore_ListNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "action", "result", "created_at"}).
		AddRow("id-2", "generate_social_post", []byte(`{"platform":"twitter"}`), now).
		AddRow("id-1", "analyze_business", []byte(`{"rating":"POOR"}`), now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT id, action, result, created_at FROM advisor_history ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(rows)

	store := NewPostgresStore(&database.PostgresClient{DB: db})
	records, err := store.List(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "generate_social_post", records[0].Action)
	assert.Equal(t, "analyze_business", records[1].Action)

	result, ok := records[1].Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "POOR", result["rating"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListDefaultsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, action, result, created_at FROM advisor_history`).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "result", "created_at"}))

	store := NewPostgresStore(&database.PostgresClient{DB: db})
	records, err := store.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

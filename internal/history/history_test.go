// internal/history/history_test.go
package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_StampsIDAndTimestamp(t *testing.T) {
	record := NewRecord("analyze_business", map[string]interface{}{"overall_score": 43.33})

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "analyze_business", record.Action)
	assert.False(t, record.CreatedAt.IsZero())

	other := NewRecord("analyze_business", nil)
	assert.NotEqual(t, record.ID, other.ID)
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, NewRecord("first", nil)))
	require.NoError(t, store.Append(ctx, NewRecord("second", nil)))
	require.NoError(t, store.Append(ctx, NewRecord("third", nil)))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Action)
	assert.Equal(t, "first", records[2].Action)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "third", limited[0].Action)
	assert.Equal(t, "second", limited[1].Action)
}

func TestFileStore_AppendAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, NewRecord("analyze_business", map[string]interface{}{"rating": "POOR"})))
	require.NoError(t, store.Append(ctx, NewRecord("generate_social_post", map[string]interface{}{"platform": "twitter"})))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "generate_social_post", records[0].Action)
	assert.Equal(t, "analyze_business", records[1].Action)

	result, ok := records[1].Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "POOR", result["rating"])
}

func TestFileStore_MissingFileListsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	records, err := store.List(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStore_AppendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	ctx := context.Background()

	require.NoError(t, NewFileStore(path).Append(ctx, NewRecord("first", nil)))
	require.NoError(t, NewFileStore(path).Append(ctx, NewRecord("second", nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"action":"first"`)
	assert.Contains(t, string(data), `"action":"second"`)

	records, err := NewFileStore(path).List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

type failingSink struct{ err error }

func (f *failingSink) Append(context.Context, Record) error { return f.err }

func TestMultiSink_AttemptsAllSinksAndReturnsFirstError(t *testing.T) {
	primary := NewMemoryStore()
	secondary := NewMemoryStore()
	boom := errors.New("index down")

	sink := MultiSink{primary, &failingSink{err: boom}, secondary}
	err := sink.Append(context.Background(), NewRecord("analyze_business", nil))

	assert.ErrorIs(t, err, boom)

	records, listErr := secondary.List(context.Background(), 0)
	require.NoError(t, listErr)
	assert.Len(t, records, 1)
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stayai/facility-desk/internal/kv"
	"github.com/stayai/facility-desk/internal/model"
	"github.com/stayai/facility-desk/pkg/logger"
)

func openTestKV(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(id string) model.InquiryRecord {
	return model.InquiryRecord{
		ID:          id,
		CreatedAt:   "2024-05-01 10:00",
		PhoneNumber: "010-1111-2222",
		Channel:     model.ChannelGeneral,
		Summary:     "record " + id,
	}
}

func TestLoadOrSeed_InstallsSeedOnceOnly(t *testing.T) {
	db := openTestKV(t)

	logs := NewLogStore(db, logger.NewNop())
	require.NoError(t, logs.LoadOrSeed())
	require.Len(t, logs.List(), 2)
	require.Equal(t, "1", logs.List()[0].ID)
	require.Equal(t, "2", logs.List()[1].ID)

	// A second load over the same file must not duplicate the seed.
	logs2 := NewLogStore(db, logger.NewNop())
	require.NoError(t, logs2.LoadOrSeed())
	require.Len(t, logs2.List(), 2)
}

func TestLoadOrSeed_DoesNotReseedAfterAppend(t *testing.T) {
	db := openTestKV(t)

	logs := NewLogStore(db, logger.NewNop())
	require.NoError(t, logs.LoadOrSeed())
	logs.Append(testRecord("100"))

	reloaded := NewLogStore(db, logger.NewNop())
	require.NoError(t, reloaded.LoadOrSeed())
	require.Len(t, reloaded.List(), 3)
	require.Equal(t, "100", reloaded.List()[0].ID)
}

func TestAppend_NewestFirstOrder(t *testing.T) {
	db := openTestKV(t)

	logs := NewLogStore(db, logger.NewNop())
	require.NoError(t, logs.LoadOrSeed())

	logs.Append(testRecord("a"))
	logs.Append(testRecord("b"))
	logs.Append(testRecord("c"))

	got := logs.List()
	require.Equal(t, "c", got[0].ID)
	require.Equal(t, "b", got[1].ID)
	require.Equal(t, "a", got[2].ID)
}

func TestGet_FindsByID(t *testing.T) {
	db := openTestKV(t)

	logs := NewLogStore(db, logger.NewNop())
	require.NoError(t, logs.LoadOrSeed())
	logs.Append(testRecord("x"))

	rec, ok := logs.Get("x")
	require.True(t, ok)
	require.Equal(t, "record x", rec.Summary)

	_, ok = logs.Get("nope")
	require.False(t, ok)
}

func TestResetAll_EmptyStateSurvivesReload(t *testing.T) {
	db := openTestKV(t)

	logs := NewLogStore(db, logger.NewNop())
	require.NoError(t, logs.LoadOrSeed())
	logs.Append(testRecord("x"))
	require.NoError(t, logs.ResetAll())
	require.Empty(t, logs.List())

	// The empty list is a persisted state, not an absence; a reload must
	// not bring the seed back.
	reloaded := NewLogStore(db, logger.NewNop())
	require.NoError(t, reloaded.LoadOrSeed())
	require.Empty(t, reloaded.List())
}

func TestList_ReturnsSnapshot(t *testing.T) {
	db := openTestKV(t)

	logs := NewLogStore(db, logger.NewNop())
	require.NoError(t, logs.LoadOrSeed())

	snapshot := logs.List()
	snapshot[0].Summary = "mutated"

	require.NotEqual(t, "mutated", logs.List()[0].Summary)
}

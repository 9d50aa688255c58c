package scores_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/plus3/stardodge/scores"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestManager points gdata at a throwaway home directory.
func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("APPDATA", home)

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("stardodge_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return manager
}

func TestMemoryOnlyStore(t *testing.T) {
	store := scores.NewStore(nil)

	assert.False(t, store.Persistent())
	assert.Equal(t, 0, store.Best())

	improved, err := store.Submit(4)
	require.NoError(t, err)
	assert.True(t, improved)

	improved, err = store.Submit(2)
	require.NoError(t, err)
	assert.False(t, improved)

	assert.Equal(t, 4, store.Best())
	assert.Equal(t, 2, store.Runs())
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	manager := openTestManager(t)

	store := scores.NewStore(manager)
	require.True(t, store.Persistent())
	_, err := store.Submit(11)
	require.NoError(t, err)
	_, err = store.Submit(3)
	require.NoError(t, err)

	reopened := scores.NewStore(manager)
	assert.Equal(t, 11, reopened.Best())
	assert.Equal(t, 2, reopened.Runs())
}

func TestLoadRejectsCorruptRecord(t *testing.T) {
	manager := openTestManager(t)
	require.NoError(t, manager.SaveObjectProp("scores", "best", []byte("best: [not a number")))

	store := scores.NewStore(manager)
	assert.Equal(t, 0, store.Best(), "corrupt data falls back to zero")
	assert.Error(t, store.Load())
}

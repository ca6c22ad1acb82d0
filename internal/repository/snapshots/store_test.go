package snapshots_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-fxrates/internal/repository/snapshots"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store := snapshots.New(t.TempDir())

	name, err := store.Save(`{"quotes":{"USDTHB":31.17037}}`)
	require.NoError(t, err)
	assert.Equal(t, "exchange-rate-"+time.Now().Format("2006-01-02")+".txt", name)

	body, err := store.Load(name)
	require.NoError(t, err)
	assert.Equal(t, `{"quotes":{"USDTHB":31.17037}}`, body)
}

func TestStore_SaveOverwritesSameDay(t *testing.T) {
	store := snapshots.New(t.TempDir())

	first, err := store.Save("old body")
	require.NoError(t, err)

	second, err := store.Save("new body")
	require.NoError(t, err)
	require.Equal(t, first, second)

	body, err := store.Load(second)
	require.NoError(t, err)
	assert.Equal(t, "new body", body)
}

func TestStore_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")
	store := snapshots.New(dir)

	_, err := store.Save("body")
	require.NoError(t, err)
}

func TestStore_LoadMissing(t *testing.T) {
	store := snapshots.New(t.TempDir())

	_, err := store.Load("exchange-rate-2020-01-01.txt")
	require.Error(t, err)
}

func TestStore_Latest(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "exchange-rate-2026-08-19.txt", "oldest")
	writeSnapshot(t, dir, "exchange-rate-2026-08-20.txt", "newest")
	writeSnapshot(t, dir, "notes.txt", "not a snapshot")

	store := snapshots.New(dir)

	body, name, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "exchange-rate-2026-08-20.txt", name)
	assert.Equal(t, "newest", body)
}

func TestStore_LatestEmptyDir(t *testing.T) {
	store := snapshots.New(t.TempDir())

	_, _, err := store.Latest()
	require.Error(t, err)
}

func writeSnapshot(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

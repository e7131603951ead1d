package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-projects/pkg/catalog"
)

func newTestService(t *testing.T) (*Service, *catalog.Store) {
	t.Helper()
	store := catalog.NewStore(catalog.NewMemKV())
	logger, _ := logrustest.NewNullLogger()
	svc := New(&Config{DataDir: t.TempDir(), StaleAfter: 24 * time.Hour}, store, logger)
	return svc, store
}

func seedTree(t *testing.T, groups map[string][]string) string {
	t.Helper()
	base := t.TempDir()
	for g, projects := range groups {
		for _, p := range projects {
			require.NoError(t, os.MkdirAll(filepath.Join(base, g, p), 0755))
		}
	}
	return base
}

// seedStaleCatalog persists a catalog whose last scan is two days old.
func seedStaleCatalog(t *testing.T, store *catalog.Store, base string) {
	t.Helper()
	payload := fmt.Sprintf(`{"baseFolder":%q,"projectsData":{"Stale":[{"name":"ghost"}]},"lastScanTime":%d}`,
		base, time.Now().Add(-48*time.Hour).Unix())
	snap, err := catalog.ParseSnapshot([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, store.ImportSnapshot(snap))
}

func TestSnapshotAutoScansWhenStale(t *testing.T) {
	svc, store := newTestService(t)
	base := seedTree(t, map[string][]string{"Work": {"A"}})
	seedStaleCatalog(t, store, base)

	c, warn := svc.Snapshot(true)
	require.NoError(t, warn)

	assert.NotNil(t, c.Group("Work"), "stale catalog should have been rescanned")
	assert.Nil(t, c.Group("Stale"), "rescan replaces groups wholesale")
	assert.False(t, c.IsStale(svc.Config.StaleAfter))
}

func TestSnapshotSkipsScanWhenFresh(t *testing.T) {
	svc, store := newTestService(t)
	base := seedTree(t, map[string][]string{"Work": {"A"}})
	_, err := store.SetBaseFolder(base)
	require.NoError(t, err)
	_, err = store.FullScan()
	require.NoError(t, err)

	// Adding a project after the scan must not show up: fresh data is
	// served from the cache.
	require.NoError(t, os.MkdirAll(filepath.Join(base, "Work", "B"), 0755))

	c, warn := svc.Snapshot(true)
	require.NoError(t, warn)
	assert.Len(t, c.Group("Work").Projects, 1)
}

func TestSnapshotDegradesWhenBaseVanished(t *testing.T) {
	svc, store := newTestService(t)
	base := seedTree(t, map[string][]string{"Work": {"A"}})
	seedStaleCatalog(t, store, base)
	require.NoError(t, os.RemoveAll(base))

	c, warn := svc.Snapshot(true)
	assert.Error(t, warn, "failed auto-scan is surfaced")
	require.NotNil(t, c)
	assert.NotNil(t, c.Group("Stale"), "stale cached data is still served")
}

func TestSnapshotWithoutBaseFolder(t *testing.T) {
	svc, _ := newTestService(t)

	c, warn := svc.Snapshot(true)
	assert.NoError(t, warn)
	assert.Empty(t, c.Groups)
}

func TestToggleGroup(t *testing.T) {
	svc, _ := newTestService(t)

	expanded, err := svc.ToggleGroup("Work")
	require.NoError(t, err)
	assert.True(t, expanded)

	expanded, err = svc.ToggleGroup("Work")
	require.NoError(t, err)
	assert.False(t, expanded)
}

func TestProjectPath(t *testing.T) {
	svc, store := newTestService(t)

	assert.Empty(t, svc.ProjectPath("Work", "A"), "no base folder means no path")

	base := seedTree(t, map[string][]string{"Work": {"A"}})
	_, err := store.SetBaseFolder(base)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "Work", "A"), svc.ProjectPath("Work", "A"))
}

func TestOpenWithoutBaseFolderIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Config.OpenCommand = "/definitely/not/a/real/editor"

	// Silent no-op: the bogus command is never spawned.
	assert.NoError(t, svc.Open("Work", "A"))
}

func TestOpenSpawnFailureSurfaces(t *testing.T) {
	svc, store := newTestService(t)
	base := seedTree(t, map[string][]string{"Work": {"A"}})
	_, err := store.SetBaseFolder(base)
	require.NoError(t, err)

	svc.Config.OpenCommand = "/definitely/not/a/real/editor"
	assert.Error(t, svc.Open("Work", "A"))
}

func TestDefaultStaleAfterApplied(t *testing.T) {
	svc := New(&Config{}, catalog.NewStore(catalog.NewMemKV()), nil)
	assert.Equal(t, DefaultStaleAfter, svc.Config.StaleAfter)
}

func TestNewLoggerWiring(t *testing.T) {
	store := catalog.NewStore(catalog.NewMemKV())

	logger, _ := logrustest.NewNullLogger()
	svc := New(&Config{}, store, logger)
	assert.Same(t, logger, svc.log)

	// A nil logger must not leave the service without one.
	svc = New(&Config{}, store, nil)
	assert.NotNil(t, svc.log)
}

func TestSnapshotDegradeLogsWarning(t *testing.T) {
	store := catalog.NewStore(catalog.NewMemKV())
	logger, hook := logrustest.NewNullLogger()
	svc := New(&Config{StaleAfter: 24 * time.Hour}, store, logger)

	base := seedTree(t, map[string][]string{"Work": {"A"}})
	seedStaleCatalog(t, store, base)
	require.NoError(t, os.RemoveAll(base))

	_, warn := svc.Snapshot(true)
	assert.Error(t, warn)

	entry := hook.LastEntry()
	require.NotNil(t, entry, "failed auto-scan should be logged")
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, warn, entry.Data[logrus.ErrorKey])
}

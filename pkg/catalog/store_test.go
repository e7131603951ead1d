package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsolo1/grove-projects/pkg/models"
)

// makeTree creates base/<group>/<project> folders for the given layout.
func makeTree(t *testing.T, layout map[string][]string) string {
	t.Helper()
	base := t.TempDir()
	for group, projects := range layout {
		if err := os.MkdirAll(filepath.Join(base, group), 0755); err != nil {
			t.Fatalf("failed to create group dir: %v", err)
		}
		for _, p := range projects {
			if err := os.MkdirAll(filepath.Join(base, group, p), 0755); err != nil {
				t.Fatalf("failed to create project dir: %v", err)
			}
		}
	}
	return base
}

func newTestStore(t *testing.T, base string) *Store {
	t.Helper()
	s := NewStore(NewMemKV())
	if base != "" {
		if _, err := s.SetBaseFolder(base); err != nil {
			t.Fatalf("Failed to set base folder: %v", err)
		}
	}
	return s
}

func groupNameSet(c *models.Catalog) map[string][]string {
	out := map[string][]string{}
	for _, g := range c.Groups {
		names := []string{}
		for _, p := range g.Projects {
			names = append(names, p.Name)
		}
		out[g.Name] = names
	}
	return out
}

func sameNameSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	set := map[string]bool{}
	for _, n := range got {
		set[n] = true
	}
	for _, n := range want {
		if !set[n] {
			return false
		}
	}
	return true
}

func TestCatalogDefaultWhenEmpty(t *testing.T) {
	s := NewStore(NewMemKV())

	c := s.Catalog()
	if c.BaseFolder != "" || len(c.Groups) != 0 || !c.LastScanAt.IsZero() {
		t.Errorf("Expected all-empty default catalog, got %+v", c)
	}
}

func TestCatalogDefaultWhenCorrupt(t *testing.T) {
	kv := NewMemKV()
	if err := kv.Set("catalog", []byte("not json")); err != nil {
		t.Fatal(err)
	}

	c := NewStore(kv).Catalog()
	if len(c.Groups) != 0 {
		t.Error("Expected corrupt persisted data to read as the empty default")
	}
}

func TestSetBaseFolderValidates(t *testing.T) {
	s := NewStore(NewMemKV())

	_, err := s.SetBaseFolder(filepath.Join(t.TempDir(), "missing"))
	var pathErr *InvalidPathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("Expected InvalidPathError, got %v", err)
	}

	// A file is not a directory either.
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetBaseFolder(f); !errors.As(err, &pathErr) {
		t.Fatalf("Expected InvalidPathError for a regular file, got %v", err)
	}
}

func TestSetBaseFolderKeepsStaleGroups(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"A"}})
	s := newTestStore(t, base)
	if _, err := s.FullScan(); err != nil {
		t.Fatalf("Full scan failed: %v", err)
	}

	other := t.TempDir()
	if _, err := s.SetBaseFolder(other); err != nil {
		t.Fatalf("Failed to change base folder: %v", err)
	}

	c := s.Catalog()
	if c.BaseFolder != other {
		t.Errorf("Expected base folder %s, got %s", other, c.BaseFolder)
	}
	if len(c.Groups) != 1 {
		t.Error("Expected stale groups to survive a base-folder change until the next scan")
	}
}

func TestFullScanMirrorsTree(t *testing.T) {
	base := makeTree(t, map[string][]string{
		"Work": {"A", "B"},
		"Home": {"C"},
	})
	// Stray files at either level are not groups or projects.
	if err := os.WriteFile(filepath.Join(base, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "Work", "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestStore(t, base)
	c, err := s.FullScan()
	if err != nil {
		t.Fatalf("Full scan failed: %v", err)
	}

	got := groupNameSet(c)
	if len(got) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(got))
	}
	if !sameNameSet(got["Work"], []string{"A", "B"}) {
		t.Errorf("Expected Work projects {A,B}, got %v", got["Work"])
	}
	if !sameNameSet(got["Home"], []string{"C"}) {
		t.Errorf("Expected Home projects {C}, got %v", got["Home"])
	}
	if c.LastScanAt.IsZero() {
		t.Error("Expected full scan to stamp the scan time")
	}

	// And the result is persisted, not just returned.
	if len(s.Catalog().Groups) != 2 {
		t.Error("Expected scan result to be persisted")
	}
}

func TestFullScanRequiresBaseFolder(t *testing.T) {
	s := NewStore(NewMemKV())
	if _, err := s.FullScan(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestFullScanFailsWhenBaseRemoved(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"A"}})
	s := newTestStore(t, base)
	if _, err := s.FullScan(); err != nil {
		t.Fatalf("Full scan failed: %v", err)
	}

	if err := os.RemoveAll(base); err != nil {
		t.Fatal(err)
	}

	_, err := s.FullScan()
	var pathErr *InvalidPathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("Expected InvalidPathError after base removal, got %v", err)
	}

	// Read access to the stale cached data must still succeed.
	if len(s.Catalog().Groups) != 1 {
		t.Error("Expected stale catalog to remain readable after failed scan")
	}
}

func TestRefreshGroupLeavesOthersUntouched(t *testing.T) {
	base := makeTree(t, map[string][]string{
		"Work": {"A", "B"},
		"Home": {"C"},
	})
	s := newTestStore(t, base)
	before, err := s.FullScan()
	if err != nil {
		t.Fatalf("Full scan failed: %v", err)
	}

	// B disappears from disk; refreshing Work must drop it.
	if err := os.RemoveAll(filepath.Join(base, "Work", "B")); err != nil {
		t.Fatal(err)
	}

	projects, err := s.RefreshGroup("Work")
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "A" {
		t.Errorf("Expected Work to refresh to {A}, got %v", projects)
	}

	after := s.Catalog()
	got := groupNameSet(after)
	if !sameNameSet(got["Home"], []string{"C"}) {
		t.Errorf("Expected Home untouched, got %v", got["Home"])
	}
	if !after.LastScanAt.Equal(before.LastScanAt) {
		t.Error("Expected refresh not to touch the full-scan timestamp")
	}
}

func TestRefreshGroupMissingOnDisk(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"A"}})
	s := newTestStore(t, base)
	if _, err := s.FullScan(); err != nil {
		t.Fatalf("Full scan failed: %v", err)
	}

	_, err := s.RefreshGroup("Gone")
	var notFound *GroupNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected GroupNotFoundError, got %v", err)
	}
}

func TestRefreshGroupNeverScanned(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"A"}})
	s := newTestStore(t, base)

	// No full scan yet; refreshing a group that exists on disk records it.
	if _, err := s.RefreshGroup("Work"); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	c := s.Catalog()
	if c.Group("Work") == nil {
		t.Error("Expected refreshed group to be recorded")
	}
	if !c.LastScanAt.IsZero() {
		t.Error("Expected per-group refresh not to stamp the full-scan time")
	}
}

func TestSetGroupExpandedNoValidation(t *testing.T) {
	s := NewStore(NewMemKV())

	// A group that does not exist in the catalog is still recorded.
	if err := s.SetGroupExpanded("Phantom", true); err != nil {
		t.Fatalf("SetGroupExpanded failed: %v", err)
	}
	if !s.Catalog().IsExpanded("Phantom") {
		t.Error("Expected phantom group expand state to be recorded")
	}
}

func TestFailedPersistLeavesStateUntouched(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"A"}})
	kv := NewMemKV()
	s := NewStore(kv)
	if _, err := s.SetBaseFolder(base); err != nil {
		t.Fatal(err)
	}
	if _, err := s.FullScan(); err != nil {
		t.Fatal(err)
	}

	kv.FailSet = errors.New("disk full")
	if err := s.SetGroupExpanded("Work", true); err == nil {
		t.Fatal("Expected persist failure to surface")
	}
	kv.FailSet = nil

	if s.Catalog().IsExpanded("Work") {
		t.Error("Expected failed mutation to leave persisted state untouched")
	}
}

func TestSetSortModePersists(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"bravo", "alpha"}})
	s := newTestStore(t, base)
	if _, err := s.FullScan(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.SetSortMode(models.SortNameDesc); err != nil {
		t.Fatalf("SetSortMode failed: %v", err)
	}

	c := s.Catalog()
	if c.SortMode != models.SortNameDesc {
		t.Errorf("Expected persisted sort mode name-desc, got %s", c.SortMode)
	}
	names := groupNameSet(c)["Work"]
	if len(names) != 2 || names[0] != "bravo" || names[1] != "alpha" {
		t.Errorf("Expected bravo before alpha, got %v", names)
	}

	if _, err := s.SetSortMode(models.SortMode("nope")); err == nil {
		t.Error("Expected unknown sort mode to be rejected")
	}
}

func TestFullScanReappliesSortMode(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"bravo", "alpha"}})
	s := newTestStore(t, base)
	if _, err := s.FullScan(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetSortMode(models.SortNameDesc); err != nil {
		t.Fatal(err)
	}

	c, err := s.FullScan()
	if err != nil {
		t.Fatal(err)
	}
	names := groupNameSet(c)["Work"]
	if names[0] != "bravo" {
		t.Errorf("Expected rescan to re-apply name-desc, got %v", names)
	}
}

func TestReset(t *testing.T) {
	base := makeTree(t, map[string][]string{"Work": {"A"}})
	s := newTestStore(t, base)
	if _, err := s.FullScan(); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	c := s.Catalog()
	if c.BaseFolder != "" || len(c.Groups) != 0 {
		t.Error("Expected reset to drop back to the empty default")
	}
}

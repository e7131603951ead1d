package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mattsolo1/grove-projects/pkg/models"
)

// catalogKey is the single key the whole catalog lives under.
const catalogKey = "catalog"

// Store owns the persisted catalog. Every mutation reads the current
// catalog, rewrites the whole value, and persists it with one Set, so an
// operation either fully succeeds or leaves the persisted state alone.
type Store struct {
	kv KV
}

// NewStore wraps a KV in a catalog store.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Catalog returns the current persisted snapshot, or the all-empty
// default if nothing has been persisted yet. Unreadable or corrupt
// persisted data also yields the default; read access never fails.
func (s *Store) Catalog() *models.Catalog {
	data, ok, err := s.kv.Get(catalogKey)
	if err != nil || !ok {
		return models.NewCatalog()
	}

	var c models.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return models.NewCatalog()
	}
	if c.Groups == nil {
		c.Groups = []models.Group{}
	}
	if c.Expanded == nil {
		c.Expanded = map[string]bool{}
	}
	return &c
}

// SetBaseFolder validates and persists the scan root. Existing groups
// are left in place (stale until the next scan).
func (s *Store) SetBaseFolder(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &InvalidPathError{Path: path}
	}
	if !isDir(abs) {
		return "", &InvalidPathError{Path: abs}
	}

	c := s.Catalog()
	c.BaseFolder = abs
	if err := s.persist(c); err != nil {
		return "", err
	}
	return abs, nil
}

// FullScan re-derives every group from disk, replacing the groups list
// wholesale and stamping the scan time. Requires a configured, existing
// base folder. The prior sort mode is re-applied so an explicit ordering
// survives a rescan.
func (s *Store) FullScan() (*models.Catalog, error) {
	c := s.Catalog()
	if c.BaseFolder == "" {
		return nil, ErrNotConfigured
	}
	if !isDir(c.BaseFolder) {
		return nil, &InvalidPathError{Path: c.BaseFolder}
	}

	groups, err := scanGroups(c.BaseFolder)
	if err != nil {
		return nil, err
	}

	c.Groups = groups
	c.LastScanAt = time.Now()
	if c.SortMode != "" {
		SortGroups(c.Groups, c.SortMode)
	}
	if err := s.persist(c); err != nil {
		return nil, err
	}
	return c, nil
}

// RefreshGroup re-lists a single group's projects, leaving every other
// group and the last-scan time untouched.
func (s *Store) RefreshGroup(name string) ([]models.Project, error) {
	c := s.Catalog()
	if c.BaseFolder == "" {
		return nil, ErrNotConfigured
	}

	groupPath := filepath.Join(c.BaseFolder, name)
	if !isDir(groupPath) {
		return nil, &GroupNotFoundError{Group: name, Path: groupPath}
	}

	projects, err := scanProjects(groupPath)
	if err != nil {
		return nil, &GroupNotFoundError{Group: name, Path: groupPath}
	}

	if g := c.Group(name); g != nil {
		g.Projects = projects
	} else {
		// Group exists on disk but was never scanned; record it.
		c.Groups = append(c.Groups, models.Group{Name: name, Projects: projects})
	}
	if err := s.persist(c); err != nil {
		return nil, err
	}
	return projects, nil
}

// SetGroupExpanded records advisory expand state. No validation: a name
// with no matching group is still recorded, so toggling a group that was
// deleted upstream is harmless.
func (s *Store) SetGroupExpanded(name string, expanded bool) error {
	c := s.Catalog()
	c.Expanded[name] = expanded
	return s.persist(c)
}

// SetSortMode applies a sort mode to the catalog and persists both the
// reordered groups and the mode itself.
func (s *Store) SetSortMode(mode models.SortMode) (*models.Catalog, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("unknown sort mode: %s", mode)
	}

	c := s.Catalog()
	SortGroups(c.Groups, mode)
	c.SortMode = mode
	if err := s.persist(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ExportSnapshot serializes the full persisted state for round-tripping.
func (s *Store) ExportSnapshot() ([]byte, error) {
	return ExportSnapshot(s.Catalog())
}

// ImportSnapshot replaces the entire persisted catalog with the snapshot,
// verbatim — no merge with existing state. Callers resolve a missing base
// folder (Snapshot.BaseFolderMissing) before committing.
func (s *Store) ImportSnapshot(snap *Snapshot) error {
	return s.persist(snap.Catalog())
}

// Reset drops the persisted catalog back to the empty default.
func (s *Store) Reset() error {
	return s.persist(models.NewCatalog())
}

func (s *Store) persist(c *models.Catalog) error {
	c.Version = models.SchemaVersion
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := s.kv.Set(catalogKey, data); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

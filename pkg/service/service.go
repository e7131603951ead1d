package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-projects/pkg/catalog"
	"github.com/mattsolo1/grove-projects/pkg/models"
)

// DefaultStaleAfter is the freshness window past which a view-open
// triggers an automatic full scan.
const DefaultStaleAfter = 24 * time.Hour

// Service is the core catalog service wired into every command and the
// panel TUI.
type Service struct {
	Store  *catalog.Store
	Config *Config
	log    *logrus.Logger
}

// Config holds service configuration
type Config struct {
	DataDir     string
	OpenCommand string
	StaleAfter  time.Duration
}

// New creates a new catalog service. A nil logger falls back to a
// fresh default logger.
func New(config *Config, store *catalog.Store, logger *logrus.Logger) *Service {
	if config.StaleAfter <= 0 {
		config.StaleAfter = DefaultStaleAfter
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{Store: store, Config: config, log: logger}
}

// Snapshot returns the current catalog. With autoScan, a stale catalog
// (never scanned, or older than the freshness window) is re-scanned
// first when a base folder is configured. A failed auto-scan degrades to
// the stale snapshot; the error is returned alongside it so callers can
// surface a message without losing cached data.
func (s *Service) Snapshot(autoScan bool) (*models.Catalog, error) {
	c := s.Store.Catalog()
	if !autoScan || c.BaseFolder == "" || !c.IsStale(s.Config.StaleAfter) {
		return c, nil
	}

	scanned, err := s.Store.FullScan()
	if err != nil {
		s.log.WithError(err).Warn("auto-scan failed, serving cached catalog")
		return c, err
	}
	return scanned, nil
}

// RefreshGroup re-scans a single group.
func (s *Service) RefreshGroup(name string) ([]models.Project, error) {
	return s.Store.RefreshGroup(name)
}

// ToggleGroup flips and persists a group's expand state, returning the
// new state.
func (s *Service) ToggleGroup(name string) (bool, error) {
	c := s.Store.Catalog()
	expanded := !c.IsExpanded(name)
	if err := s.Store.SetGroupExpanded(name, expanded); err != nil {
		return false, err
	}
	return expanded, nil
}

// Export serializes the full persisted state.
func (s *Service) Export() ([]byte, error) {
	return s.Store.ExportSnapshot()
}

// PrepareImport parses an import payload without applying it. Callers
// check Snapshot.BaseFolderMissing and may substitute a path before
// committing.
func (s *Service) PrepareImport(data []byte) (*catalog.Snapshot, error) {
	return catalog.ParseSnapshot(data)
}

// CommitImport replaces the persisted catalog with the snapshot.
func (s *Service) CommitImport(snap *catalog.Snapshot) error {
	return s.Store.ImportSnapshot(snap)
}

package models

import "time"

// SortMode identifies one of the persisted catalog orderings.
type SortMode string

const (
	// SortNameAsc orders every group's projects by name, ascending.
	SortNameAsc SortMode = "name-asc"

	// SortNameDesc orders every group's projects by name, descending.
	SortNameDesc SortMode = "name-desc"

	// SortGroupAsc orders the groups themselves alphabetically.
	SortGroupAsc SortMode = "group-asc"

	// SortGroupDesc orders the groups themselves reverse-alphabetically.
	SortGroupDesc SortMode = "group-desc"

	// SortColor puts projects with a color hint first, ties by name.
	SortColor SortMode = "color"
)

// ValidSortModes lists every mode accepted by the sort command and the panel.
var ValidSortModes = []SortMode{SortNameAsc, SortNameDesc, SortGroupAsc, SortGroupDesc, SortColor}

// IsValid reports whether m is one of the recognized sort modes.
func (m SortMode) IsValid() bool {
	for _, v := range ValidSortModes {
		if m == v {
			return true
		}
	}
	return false
}

// Project is one openable second-level folder under a group.
type Project struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Group is one first-level folder under the base folder, with its
// projects in the order they were last scanned or sorted.
type Group struct {
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

// Catalog is the persisted project inventory plus UI preferences.
// Groups is an ordered slice rather than a map so that an explicit
// sort survives the round trip through persistence.
type Catalog struct {
	Version    int             `json:"version"`
	BaseFolder string          `json:"base_folder,omitempty"`
	Groups     []Group         `json:"groups"`
	LastScanAt time.Time       `json:"last_scan_at,omitzero"`
	Expanded   map[string]bool `json:"expanded,omitempty"`
	SortMode   SortMode        `json:"sort_mode,omitempty"`
}

// SchemaVersion is written into every persisted catalog and export file.
const SchemaVersion = 1

// NewCatalog returns the all-empty default catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Version:  SchemaVersion,
		Groups:   []Group{},
		Expanded: map[string]bool{},
	}
}

// Group returns the group with the given name, or nil.
func (c *Catalog) Group(name string) *Group {
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return &c.Groups[i]
		}
	}
	return nil
}

// GroupNames returns the group names in catalog order.
func (c *Catalog) GroupNames() []string {
	names := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		names[i] = g.Name
	}
	return names
}

// IsExpanded reports the advisory expand state for a group.
// A missing entry means collapsed.
func (c *Catalog) IsExpanded(group string) bool {
	return c.Expanded[group]
}

// IsStale reports whether the catalog has never been scanned, or whether
// its last scan is older than the given freshness window.
func (c *Catalog) IsStale(window time.Duration) bool {
	if c.LastScanAt.IsZero() {
		return true
	}
	return time.Since(c.LastScanAt) > window
}

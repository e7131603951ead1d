package catalog

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/mattsolo1/grove-projects/pkg/models"
)

// exportFile is the interchange format written by export and read by
// import. Group order is not part of the format; projectsData is a plain
// JSON object.
type exportFile struct {
	Version      int                         `json:"version" mapstructure:"version"`
	BaseFolder   string                      `json:"baseFolder" mapstructure:"baseFolder"`
	ProjectsData map[string][]models.Project `json:"projectsData" mapstructure:"projectsData"`
	GroupStates  map[string]bool             `json:"groupStates,omitempty" mapstructure:"groupStates"`
	LastScanTime int64                       `json:"lastScanTime,omitempty" mapstructure:"lastScanTime"`
}

// Snapshot is a parsed import payload, held until the caller commits it.
// The base folder may not exist on disk at parse time; that is a
// recoverable condition the caller resolves (by substituting a path)
// before the import is applied.
type Snapshot struct {
	BaseFolder string
	Groups     []models.Group
	Expanded   map[string]bool
	LastScanAt time.Time
}

// BaseFolderMissing reports whether the snapshot's base folder does not
// currently exist as a directory.
func (s *Snapshot) BaseFolderMissing() bool {
	return !isDir(s.BaseFolder)
}

// Catalog converts the snapshot into a full catalog value.
func (s *Snapshot) Catalog() *models.Catalog {
	c := models.NewCatalog()
	c.BaseFolder = s.BaseFolder
	c.Groups = s.Groups
	c.LastScanAt = s.LastScanAt
	for k, v := range s.Expanded {
		c.Expanded[k] = v
	}
	return c
}

// ExportSnapshot serializes a catalog into the interchange format.
func ExportSnapshot(c *models.Catalog) ([]byte, error) {
	out := exportFile{
		Version:     models.SchemaVersion,
		BaseFolder:  c.BaseFolder,
		GroupStates: c.Expanded,
	}
	out.ProjectsData = make(map[string][]models.Project, len(c.Groups))
	for _, g := range c.Groups {
		out.ProjectsData[g.Name] = g.Projects
	}
	if !c.LastScanAt.IsZero() {
		out.LastScanTime = c.LastScanAt.Unix()
	}
	return json.MarshalIndent(out, "", "  ")
}

// ParseSnapshot validates and decodes an import payload. baseFolder and
// projectsData must both be present; everything else is optional and
// defaults. The payload is decoded through its raw map form so missing
// keys can be told apart from zero values.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidImportError{Reason: "not a JSON object"}
	}

	if _, ok := raw["baseFolder"]; !ok {
		return nil, &InvalidImportError{Reason: "missing required key baseFolder"}
	}
	if _, ok := raw["projectsData"]; !ok {
		return nil, &InvalidImportError{Reason: "missing required key projectsData"}
	}

	var file exportFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, &InvalidImportError{Reason: err.Error()}
	}

	snap := &Snapshot{
		BaseFolder: file.BaseFolder,
		Expanded:   file.GroupStates,
	}
	if snap.Expanded == nil {
		snap.Expanded = map[string]bool{}
	}
	if file.LastScanTime > 0 {
		snap.LastScanAt = time.Unix(file.LastScanTime, 0)
	}

	// The interchange object carries no group order; sort names so the
	// resulting catalog order is at least deterministic.
	names := make([]string, 0, len(file.ProjectsData))
	for name := range file.ProjectsData {
		names = append(names, name)
	}
	sort.Strings(names)

	snap.Groups = make([]models.Group, 0, len(names))
	for _, name := range names {
		projects := file.ProjectsData[name]
		if projects == nil {
			projects = []models.Project{}
		}
		snap.Groups = append(snap.Groups, models.Group{Name: name, Projects: projects})
	}

	return snap, nil
}

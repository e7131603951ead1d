package catalog

import (
	"os"
	"path/filepath"

	"github.com/mattsolo1/grove-projects/pkg/models"
)

// scanGroups lists the first-level directories of base and scans each as
// a group. Enumeration order is whatever ReadDir yields; nothing
// downstream may rely on it.
func scanGroups(base string) ([]models.Group, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, &InvalidPathError{Path: base}
	}

	groups := []models.Group{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		projects, err := scanProjects(filepath.Join(base, entry.Name()))
		if err != nil {
			// A group that vanished mid-scan is skipped, not fatal.
			continue
		}
		groups = append(groups, models.Group{Name: entry.Name(), Projects: projects})
	}
	return groups, nil
}

// scanProjects lists the second-level directories of one group folder and
// reads each project's color hint.
func scanProjects(groupPath string) ([]models.Project, error) {
	entries, err := os.ReadDir(groupPath)
	if err != nil {
		return nil, err
	}

	projects := []models.Project{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		projects = append(projects, models.Project{
			Name:  entry.Name(),
			Color: readColorHint(filepath.Join(groupPath, entry.Name())),
		})
	}
	return projects, nil
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

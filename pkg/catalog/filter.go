package catalog

import (
	"strings"

	"github.com/mattsolo1/grove-projects/pkg/models"
)

// FilterGroups returns the groups visible under a case-insensitive
// substring query. A project is visible iff its name contains the query;
// a group is visible iff at least one of its projects is. The match runs
// against project names only — a group whose own name matches but whose
// projects all miss is hidden. The empty query shows everything.
// The input is never mutated.
func FilterGroups(groups []models.Group, query string) []models.Group {
	if query == "" {
		return groups
	}

	q := strings.ToLower(query)
	out := []models.Group{}
	for _, g := range groups {
		var visible []models.Project
		for _, p := range g.Projects {
			if strings.Contains(strings.ToLower(p.Name), q) {
				visible = append(visible, p)
			}
		}
		if len(visible) > 0 {
			out = append(out, models.Group{Name: g.Name, Projects: visible})
		}
	}
	return out
}

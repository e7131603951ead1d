package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mattsolo1/grove-projects/pkg/models"
)

// collator is the case-sensitive comparator behind every sort mode.
var collator = collate.New(language.Und)

// SortGroups reorders groups in place according to mode. Project-name
// modes reorder within every group and leave group order alone; group
// modes reorder the groups themselves and leave project order alone.
// Every mode is idempotent, and the desc modes produce the exact reverse
// of their asc counterparts (names are unique per group, group names are
// unique per catalog).
func SortGroups(groups []models.Group, mode models.SortMode) {
	switch mode {
	case models.SortNameAsc:
		for i := range groups {
			sortProjects(groups[i].Projects, false)
		}
	case models.SortNameDesc:
		for i := range groups {
			sortProjects(groups[i].Projects, true)
		}
	case models.SortGroupAsc:
		sort.SliceStable(groups, func(i, j int) bool {
			return collator.CompareString(groups[i].Name, groups[j].Name) < 0
		})
	case models.SortGroupDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			return collator.CompareString(groups[i].Name, groups[j].Name) > 0
		})
	case models.SortColor:
		for i := range groups {
			sortProjectsByColor(groups[i].Projects)
		}
	}
}

func sortProjects(projects []models.Project, desc bool) {
	sort.SliceStable(projects, func(i, j int) bool {
		cmp := collator.CompareString(projects[i].Name, projects[j].Name)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// sortProjectsByColor puts projects with a color hint before those
// without, ties broken by name ascending.
func sortProjectsByColor(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		iColored := projects[i].Color != ""
		jColored := projects[j].Color != ""
		if iColored != jColored {
			return iColored
		}
		return collator.CompareString(projects[i].Name, projects[j].Name) < 0
	})
}

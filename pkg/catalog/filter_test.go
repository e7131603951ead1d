package catalog

import (
	"reflect"
	"testing"

	"github.com/mattsolo1/grove-projects/pkg/models"
)

func TestFilterGroups(t *testing.T) {
	groups := []models.Group{
		{Name: "Work", Projects: []models.Project{{Name: "Alpha"}, {Name: "workbench"}}},
		{Name: "Home", Projects: []models.Project{{Name: "Beta"}}},
	}

	tests := []struct {
		name  string
		query string
		want  map[string][]string
	}{
		{
			name:  "empty query shows everything",
			query: "",
			want:  map[string][]string{"Work": {"Alpha", "workbench"}, "Home": {"Beta"}},
		},
		{
			name:  "substring match is case-insensitive",
			query: "ALPH",
			want:  map[string][]string{"Work": {"Alpha"}},
		},
		{
			name:  "group visible only through its projects",
			query: "wo",
			// "Work" the group name contains "wo", but only project
			// names are matched — workbench is the sole hit.
			want: map[string][]string{"Work": {"workbench"}},
		},
		{
			name:  "no project match hides the group entirely",
			query: "home",
			want:  map[string][]string{},
		},
		{
			name:  "no matches at all",
			query: "zzz",
			want:  map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string][]string{}
			for _, g := range FilterGroups(groups, tt.query) {
				names := []string{}
				for _, p := range g.Projects {
					names = append(names, p.Name)
				}
				got[g.Name] = names
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterGroups(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterNeverMutates(t *testing.T) {
	groups := []models.Group{
		{Name: "Work", Projects: []models.Project{{Name: "Alpha"}, {Name: "Beta"}}},
	}

	FilterGroups(groups, "alp")

	if len(groups[0].Projects) != 2 {
		t.Error("Expected filtering to leave the input untouched")
	}
}

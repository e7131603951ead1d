package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// projectConfig is the optional per-project .pj.yml file. Only the color
// key is recognized today.
type projectConfig struct {
	Color string `yaml:"color"`
}

// readColorHint extracts a display color for a project, checking in
// order: the project's own .pj.yml, then the nested and flat forms of
// workbench.colorCustomizations in .vscode/settings.json. Every failure
// mode (missing file, malformed YAML/JSON, wrong value type) degrades to
// "no color"; nothing here ever surfaces an error.
func readColorHint(projectPath string) string {
	if c := readProjectConfigColor(filepath.Join(projectPath, ".pj.yml")); c != "" {
		return c
	}
	return readVSCodeColor(filepath.Join(projectPath, ".vscode", "settings.json"))
}

func readProjectConfigColor(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var cfg projectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ""
	}
	return cfg.Color
}

func readVSCodeColor(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return ""
	}

	switch v := settings["workbench.colorCustomizations"].(type) {
	case map[string]any:
		// Nested form wins over the flat string form.
		if c, ok := v["activityBar.background"].(string); ok {
			return c
		}
	case string:
		return v
	}
	return ""
}

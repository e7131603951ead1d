package service

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultOpenCommand opens a path in a new editor window.
const DefaultOpenCommand = "code --new-window"

// ProjectPath resolves a group/project pair against the configured base
// folder. Returns "" when no base folder is set.
func (s *Service) ProjectPath(group, project string) string {
	c := s.Store.Catalog()
	if c.BaseFolder == "" {
		return ""
	}
	return filepath.Join(c.BaseFolder, group, project)
}

// Open launches the project in a new editor window, fire-and-forget.
// With no base folder configured this is a silent no-op.
func (s *Service) Open(group, project string) error {
	path := s.ProjectPath(group, project)
	if path == "" {
		return nil
	}

	openCmd := s.Config.OpenCommand
	if openCmd == "" {
		openCmd = DefaultOpenCommand
	}

	parts := strings.Fields(openCmd)
	parts = append(parts, path)

	cmd := exec.Command(parts[0], parts[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s/%s: %w", group, project, err)
	}

	// Detach; the editor outlives us and we never wait on it.
	if err := cmd.Process.Release(); err != nil {
		s.log.WithError(err).Warn("failed to release opened editor process")
	}
	return nil
}

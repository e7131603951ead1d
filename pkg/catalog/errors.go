package catalog

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by operations that need a base folder
// before one has been set.
var ErrNotConfigured = errors.New("no base folder configured")

// InvalidPathError reports a path that is missing or not a directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path: %s is not an existing directory", e.Path)
}

// GroupNotFoundError reports a group folder that no longer exists on disk.
type GroupNotFoundError struct {
	Group string
	Path  string
}

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("group not found: %s (%s)", e.Group, e.Path)
}

// InvalidImportError reports an import payload that is unparsable or is
// missing a required key.
type InvalidImportError struct {
	Reason string
}

func (e *InvalidImportError) Error() string {
	return fmt.Sprintf("invalid import data: %s", e.Reason)
}

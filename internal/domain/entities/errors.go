package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutdatedModels is returned when a scan finds deprecated or end-of-life models.
var ErrOutdatedModels = errors.New("deprecated or end-of-life models found")

// ConfigurationError is returned when no registry candidate could be loaded.
type ConfigurationError struct {
	Candidates []string
	Err        error
}

func (e *ConfigurationError) Error() string {
	msg := "registry.yaml not found. reinstall model-graveyard"
	if len(e.Candidates) > 0 {
		msg += " (tried: " + strings.Join(e.Candidates, ", ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// FileAccessError wraps a failure to read or write a single file.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

package repositories

import (
	"context"
)

// FileQuery selects which files under Root are considered for scanning.
// Patterns use gitignore syntax and are matched against paths relative to Root.
type FileQuery struct {
	Root    string
	Include []string
	Exclude []string
}

// FileRepository abstracts access to the scanned source tree.
type FileRepository interface {
	// List returns the absolute paths of all files selected by the query.
	List(ctx context.Context, query FileQuery) ([]string, error)

	// Read returns the content of a file. Failures are *entities.FileAccessError.
	Read(path string) (string, error)

	// Write replaces the content of an existing file. Failures are *entities.FileAccessError.
	Write(path string, content string) error
}

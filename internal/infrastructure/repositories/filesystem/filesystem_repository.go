package filesystem

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	logger "github.com/sirupsen/logrus"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	"github.com/safetnsr/model-graveyard/internal/domain/repositories"
)

// binarySniffLen is how many leading bytes are inspected for NUL bytes.
const binarySniffLen = 8000

var errBinaryContent = errors.New("binary content")

// FileRepository reads and writes files on the local disk.
type FileRepository struct{}

// NewFileRepository creates a new FileRepository.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// List walks query.Root and returns the files that match an include
// pattern and no exclude pattern. Excluded directories are not descended.
// Unreadable subdirectories are skipped; an unreadable root is an error.
func (it *FileRepository) List(ctx context.Context, query repositories.FileQuery) ([]string, error) {
	info, err := os.Stat(query.Root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "scan", Path: query.Root, Err: errors.New("not a directory")}
	}

	includeMatcher := ignore.CompileIgnoreLines(query.Include...)
	excludeMatcher := ignore.CompileIgnoreLines(query.Exclude...)

	var files []string
	walkErr := filepath.WalkDir(query.Root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == query.Root {
				return err
			}
			logger.Debugf("Skipping %s: %v", path, err)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(query.Root, path)
		if relErr != nil || relPath == "." {
			return nil //nolint:nilerr // the root itself is never a candidate
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			// trailing slash so that "dir/" patterns match
			if excludeMatcher.MatchesPath(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}
		if excludeMatcher.MatchesPath(relPath) || !includeMatcher.MatchesPath(relPath) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return files, nil
}

// Read returns the content of a text file. Files that look binary are
// reported as unreadable.
func (it *FileRepository) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &entities.FileAccessError{Op: "read", Path: path, Err: err}
	}
	if bytes.IndexByte(data[:min(len(data), binarySniffLen)], 0) >= 0 {
		return "", &entities.FileAccessError{Op: "read", Path: path, Err: errBinaryContent}
	}
	return string(data), nil
}

// Write replaces the file through a temporary sibling and a rename, keeping
// the original permissions.
func (it *FileRepository) Write(path string, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &entities.FileAccessError{Op: "write", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".graveyard-*")
	if err != nil {
		return &entities.FileAccessError{Op: "write", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, writeErr := tmp.WriteString(content); writeErr != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &entities.FileAccessError{Op: "write", Path: path, Err: writeErr}
	}
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmpPath)
		return &entities.FileAccessError{Op: "write", Path: path, Err: closeErr}
	}
	if chmodErr := os.Chmod(tmpPath, info.Mode().Perm()); chmodErr != nil {
		_ = os.Remove(tmpPath)
		return &entities.FileAccessError{Op: "write", Path: path, Err: chmodErr}
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return &entities.FileAccessError{Op: "write", Path: path, Err: renameErr}
	}

	return nil
}

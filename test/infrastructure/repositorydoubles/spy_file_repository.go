//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	"github.com/safetnsr/model-graveyard/internal/domain/repositories"
)

// SpyFileRepository implements repositories.FileRepository over an in-memory
// map of absolute path -> content.
type SpyFileRepository struct {
	mu sync.Mutex

	// --- List ---
	Files   map[string]string
	ListErr error
	Queries []repositories.FileQuery

	// --- Read ---
	ReadErrs  map[string]error
	ReadCalls []string

	// --- Write ---
	WriteErr error
	Writes   map[string][]string // path -> every content written, in order
}

var _ repositories.FileRepository = (*SpyFileRepository)(nil)

func (s *SpyFileRepository) List(_ context.Context, query repositories.FileQuery) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Queries = append(s.Queries, query)
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	paths := make([]string, 0, len(s.Files))
	for path := range s.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *SpyFileRepository) Read(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ReadCalls = append(s.ReadCalls, path)
	if err, ok := s.ReadErrs[path]; ok {
		return "", &entities.FileAccessError{Op: "read", Path: path, Err: err}
	}
	content, ok := s.Files[path]
	if !ok {
		return "", &entities.FileAccessError{Op: "read", Path: path, Err: errors.New("file not found")}
	}
	return content, nil
}

func (s *SpyFileRepository) Write(path string, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return &entities.FileAccessError{Op: "write", Path: path, Err: s.WriteErr}
	}
	if s.Writes == nil {
		s.Writes = make(map[string][]string)
	}
	s.Writes[path] = append(s.Writes[path], content)
	if s.Files == nil {
		s.Files = make(map[string]string)
	}
	s.Files[path] = content
	return nil
}

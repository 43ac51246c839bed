package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	"github.com/safetnsr/model-graveyard/internal/domain/repositories"
)

// DefaultInclude selects source code, structured config, and env files.
var DefaultInclude = []string{ //nolint:gochecknoglobals // immutable pattern list
	"*.ts", "*.tsx",
	"*.js", "*.jsx", "*.mjs", "*.cjs",
	"*.py",
	"*.go",
	"*.yaml", "*.yml",
	"*.json",
	"*.toml",
	"*.env",
	".env",
	".env.*",
}

// DefaultExclude skips dependency, build, and VCS directories plus generated files.
var DefaultExclude = []string{ //nolint:gochecknoglobals // immutable pattern list
	"node_modules/",
	".git/",
	"dist/",
	"build/",
	"*.min.js",
	"*.lock",
}

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, registry *entities.Registry, opts ScanOptions) (*entities.ScanReport, error)
}

// ScanOptions holds runtime options for a scan.
type ScanOptions struct {
	Root    string
	Include []string // Appended to DefaultInclude
	Exclude []string // Appended to DefaultExclude
	Workers int      // 0 means GOMAXPROCS
}

// ScanCommand walks a directory tree and reports every model identifier it finds.
type ScanCommand struct {
	fileRepository repositories.FileRepository
	rules          []entities.ExtractionRule
	now            func() time.Time
}

// NewScanCommand creates a new ScanCommand using the given extraction rules.
func NewScanCommand(
	fileRepository repositories.FileRepository,
	rules []entities.ExtractionRule,
) *ScanCommand {
	return &ScanCommand{
		fileRepository: fileRepository,
		rules:          rules,
		now:            time.Now,
	}
}

// Execute scans opts.Root. Unreadable files contribute no matches; only a
// failure to enumerate the tree is returned as an error.
func (it *ScanCommand) Execute(
	ctx context.Context,
	registry *entities.Registry,
	opts ScanOptions,
) (*entities.ScanReport, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	scannedAt := it.now().UTC()

	files, err := it.fileRepository.List(ctx, repositories.FileQuery{
		Root:    root,
		Include: append(append([]string{}, DefaultInclude...), opts.Include...),
		Exclude: append(append([]string{}, DefaultExclude...), opts.Exclude...),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate files in %s: %w", root, err)
	}
	logger.Debugf("Discovered %d files under %s", len(files), root)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns results[i], no locking needed
	results := make([][]entities.Match, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(workers, len(files))))

	for i, path := range files {
		g.Go(func() error {
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}

			content, readErr := it.fileRepository.Read(path)
			if readErr != nil {
				logger.Debugf("Skipping unreadable file: %v", readErr)
				return nil
			}

			results[i] = extractMatches(content, relativePath(root, path), registry, it.rules)
			return nil
		})
	}

	if waitErr := g.Wait(); waitErr != nil {
		return nil, waitErr
	}

	var matches []entities.Match
	for _, fileMatches := range results {
		matches = append(matches, fileMatches...)
	}

	report := entities.NewScanReport(scannedAt, root, len(files), matches)
	logger.Debugf(
		"Scan complete: %d files, %d matches (%d deprecated, %d eol)",
		report.FilesScanned, report.Summary.Total, report.Summary.Deprecated, report.Summary.EOL,
	)
	return report, nil
}

// relativePath returns path relative to root using forward slashes.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

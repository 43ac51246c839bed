package entities

import (
	"cmp"
	"slices"
	"time"
)

// Summary tallies matches by status. Total always equals the sum of the
// other four counters.
type Summary struct {
	Total      int `json:"total"`
	Deprecated int `json:"deprecated"`
	EOL        int `json:"eol"`
	Active     int `json:"active"`
	Unknown    int `json:"unknown"`
}

// HasIssues is true when any deprecated or end-of-life model was found.
func (s Summary) HasIssues() bool {
	return s.Deprecated > 0 || s.EOL > 0
}

// ScanReport is the result of scanning a directory tree.
type ScanReport struct {
	ScannedAt    time.Time `json:"scannedAt"`
	RootPath     string    `json:"rootPath"`
	FilesScanned int       `json:"filesScanned"`
	Matches      []Match   `json:"matches"`
	Summary      Summary   `json:"summary"`
}

// NewScanReport sorts the matches by file then line and computes the summary.
func NewScanReport(scannedAt time.Time, rootPath string, filesScanned int, matches []Match) *ScanReport {
	sorted := slices.Clone(matches)
	if sorted == nil {
		sorted = []Match{}
	}
	slices.SortStableFunc(sorted, func(a, b Match) int {
		return cmp.Or(cmp.Compare(a.File, b.File), cmp.Compare(a.Line, b.Line))
	})

	return &ScanReport{
		ScannedAt:    scannedAt,
		RootPath:     rootPath,
		FilesScanned: filesScanned,
		Matches:      sorted,
		Summary:      Summarize(sorted),
	}
}

// Summarize counts matches per status.
func Summarize(matches []Match) Summary {
	summary := Summary{Total: len(matches)}
	for _, m := range matches {
		if m.Model == nil {
			summary.Unknown++
			continue
		}
		switch m.Model.Status {
		case StatusDeprecated:
			summary.Deprecated++
		case StatusEOL:
			summary.EOL++
		case StatusActive:
			summary.Active++
		}
	}
	return summary
}

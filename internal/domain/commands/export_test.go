package commands

import "time"

// ExtractMatches exports extractMatches for testing.
var ExtractMatches = extractMatches //nolint:gochecknoglobals // test export

// ReplaceQuoted exports replaceQuoted for testing.
var ReplaceQuoted = replaceQuoted //nolint:gochecknoglobals // test export

// RenderDiff exports renderDiff for testing.
var RenderDiff = renderDiff //nolint:gochecknoglobals // test export

// SetClock overrides the scan timestamp source for testing.
func (it *ScanCommand) SetClock(now func() time.Time) {
	it.now = now
}

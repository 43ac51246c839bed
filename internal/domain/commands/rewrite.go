package commands

import (
	"regexp"

	"github.com/pmezard/go-difflib/difflib"
	logger "github.com/sirupsen/logrus"
)

// replaceQuoted replaces the first occurrence of from wrapped in matching
// single, double, or back quotes with to wrapped in the same quote.
func replaceQuoted(line, from, to string) (string, bool) {
	quoted := regexp.QuoteMeta(from)
	pattern := regexp.MustCompile(`'` + quoted + `'|"` + quoted + `"|` + "`" + quoted + "`")

	loc := pattern.FindStringIndex(line)
	if loc == nil {
		return line, false
	}

	quote := line[loc[0] : loc[0]+1]
	return line[:loc[0]] + quote + to + quote + line[loc[1]:], true
}

// renderDiff returns a zero-context unified diff between two file contents.
func renderDiff(file, original, modified string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: "a/" + file,
		ToFile:   "b/" + file,
		Context:  0,
	})
	if err != nil {
		logger.Debugf("Failed to render diff for %s: %v", file, err)
		return ""
	}
	return diff
}

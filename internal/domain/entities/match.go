package entities

// Match is a single occurrence of a candidate model identifier.
type Match struct {
	File    string      `json:"file"`
	Line    int         `json:"line"`   // 1-based
	Column  int         `json:"column"` // 0-based
	Raw     string      `json:"raw"`
	Context string      `json:"context"`
	Model   *ModelEntry `json:"model"` // nil when the identifier is not in the registry
}

// Status returns the resolved status, or "unknown" for unresolved matches.
func (m Match) Status() string {
	if m.Model == nil {
		return "unknown"
	}
	return string(m.Model.Status)
}

// matchKey identifies a match for de-duplication purposes.
type matchKey struct {
	file string
	line int
	raw  string
}

// DedupMatches keeps the first match for every (file, line, raw) triple,
// preserving input order.
func DedupMatches(matches []Match) []Match {
	seen := make(map[matchKey]bool, len(matches))
	result := make([]Match, 0, len(matches))
	for _, m := range matches {
		key := matchKey{file: m.File, line: m.Line, raw: m.Raw}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, m)
	}
	return result
}

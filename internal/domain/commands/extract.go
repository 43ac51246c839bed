package commands

import (
	"slices"
	"strings"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

const modelGroup = "model"

// extractMatches applies every rule over the whole content and returns the
// de-duplicated matches of a single file. Rules do not short-circuit each
// other, so the same occurrence may be produced more than once before dedup.
func extractMatches(
	content, file string,
	registry *entities.Registry,
	rules []entities.ExtractionRule,
) []entities.Match {
	lines := strings.Split(content, "\n")
	lineStarts := lineOffsets(content)

	var matches []entities.Match
	for _, rule := range rules {
		group := rule.Pattern.SubexpIndex(modelGroup)
		if group < 0 {
			continue
		}

		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(content, -1) {
			if loc[2*group] < 0 {
				continue
			}
			raw := content[loc[2*group]:loc[2*group+1]]
			if raw == "" {
				continue
			}

			model := registry.Resolve(raw)
			if rule.RequireKnown && model == nil {
				continue
			}

			start := loc[0]
			lineIndex := lineIndexAt(lineStarts, start)
			matches = append(matches, entities.Match{
				File:    file,
				Line:    lineIndex + 1,
				Column:  start - lineStarts[lineIndex],
				Raw:     raw,
				Context: strings.TrimSpace(lines[lineIndex]),
				Model:   model,
			})
		}
	}

	return entities.DedupMatches(matches)
}

// lineOffsets returns the byte offset at which every line starts.
func lineOffsets(content string) []int {
	offsets := []int{0}
	for i := range len(content) {
		if content[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func lineIndexAt(lineStarts []int, offset int) int {
	pos, found := slices.BinarySearch(lineStarts, offset)
	if found {
		return pos
	}
	return pos - 1
}

package entities

import "regexp"

// ExtractionRule is one text pattern used to locate model identifiers.
// Every pattern captures the identifier in the named group "model".
type ExtractionRule struct {
	Name    string
	Pattern *regexp.Regexp

	// RequireKnown drops matches that do not resolve against the registry.
	RequireKnown bool
}

const (
	identifierChars = `[a-zA-Z0-9._/:-]`
	configPrefixes  = `(?:claude|gpt|gemini|o\d|text-davinci|mistral|llama)`
	literalPrefixes = `(?:claude|gpt|gemini|o\d|text-davinci|text-curie|text-babbage|text-ada)`
)

// DefaultExtractionRules returns the rules in priority order.
func DefaultExtractionRules() []ExtractionRule {
	return []ExtractionRule{
		{
			// model="gpt-4", model: 'claude-opus-3'
			Name:    "keyword",
			Pattern: regexp.MustCompile(`\bmodel\s*[=:]\s*["'](?P<model>` + identifierChars + `+)["']`),
		},
		{
			Name:    "keyword-name-id",
			Pattern: regexp.MustCompile(`\bmodel_(?:name|id)\s*[=:]\s*["'](?P<model>` + identifierChars + `+)["']`),
		},
		{
			// model: gpt-3.5-turbo
			Name: "config-bare",
			Pattern: regexp.MustCompile(
				`\bmodel(?:_name|_id)?\s*:\s*(?P<model>` + configPrefixes + identifierChars + `+)`,
			),
		},
		{
			// MODEL=claude-instant-1
			Name: "env",
			Pattern: regexp.MustCompile(
				`(?m)^MODEL(?:_NAME|_ID)?\s*=\s*(?P<model>` + identifierChars + `+)\s*$`,
			),
		},
		{
			Name:         "string-literal",
			Pattern:      regexp.MustCompile(`["'](?P<model>` + literalPrefixes + identifierChars + `*)["']`),
			RequireKnown: true,
		},
	}
}

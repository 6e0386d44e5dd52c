package parser

import "strings"

// DefaultTruthy and DefaultFalsy are the default token sets BooleanParser
// matches against a trimmed, case-folded response.
var (
	DefaultTruthy = []string{"yes", "true", "1", "y"}
	DefaultFalsy  = []string{"no", "false", "0", "n"}
)

// BooleanParser maps a response to true or false against configurable
// truthy/falsy token sets.
type BooleanParser struct {
	// Truthy overrides DefaultTruthy when non-nil.
	Truthy []string
	// Falsy overrides DefaultFalsy when non-nil.
	Falsy []string
	// DeclineKeywords overrides the default decline keyword set.
	DeclineKeywords []string
}

// Parse implements Parser[bool].
func (p BooleanParser) Parse(response string) Result[bool] {
	if declined(response, declineKeywordsOrDefault(p.DeclineKeywords)) {
		return Decline[bool]()
	}

	normalized := strings.ToLower(strings.TrimSpace(response))

	for _, t := range orDefault(p.Truthy, DefaultTruthy) {
		if normalized == t {
			return Value(true)
		}
	}
	for _, f := range orDefault(p.Falsy, DefaultFalsy) {
		if normalized == f {
			return Value(false)
		}
	}
	return Failure[bool]()
}

func orDefault(set, def []string) []string {
	if set == nil {
		return def
	}
	return set
}

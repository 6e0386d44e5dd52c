package parser

import (
	"strconv"
	"strings"

	"github.com/sells-group/winnow/estimator"
)

// OptionalBoundedIntParser parses a bounded integer that may be declared
// inapplicable via the literal token "none".
type OptionalBoundedIntParser struct {
	Min, Max int

	// DeclineKeywords overrides the default decline keyword set.
	DeclineKeywords []string
}

// Parse implements Parser[estimator.OptionalIntValue].
func (p OptionalBoundedIntParser) Parse(response string) Result[estimator.OptionalIntValue] {
	if declined(response, declineKeywordsOrDefault(p.DeclineKeywords)) {
		return Decline[estimator.OptionalIntValue]()
	}

	trimmed := strings.TrimSpace(response)
	if strings.EqualFold(trimmed, "none") {
		return Value(estimator.OptionalIntValue{Present: false})
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return Failure[estimator.OptionalIntValue]()
	}
	if n < p.Min || n > p.Max {
		return Failure[estimator.OptionalIntValue]()
	}

	return Value(estimator.OptionalIntValue{Present: true, Value: n})
}

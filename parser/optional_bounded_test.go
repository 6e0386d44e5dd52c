package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/winnow/estimator"
)

func TestOptionalBoundedIntParser_None(t *testing.T) {
	p := OptionalBoundedIntParser{Min: 0, Max: 10}
	r := p.Parse(" NoNe ")
	assert.Equal(t, OutcomeValue, r.Outcome)
	assert.False(t, r.Value.Present)
}

func TestOptionalBoundedIntParser_InRange(t *testing.T) {
	p := OptionalBoundedIntParser{Min: 0, Max: 10}
	r := p.Parse("7")
	assert.Equal(t, OutcomeValue, r.Outcome)
	assert.Equal(t, estimator.OptionalIntValue{Present: true, Value: 7}, r.Value)
}

func TestOptionalBoundedIntParser_OutOfRange(t *testing.T) {
	p := OptionalBoundedIntParser{Min: 0, Max: 10}
	r := p.Parse("11")
	assert.Equal(t, OutcomeParseFailure, r.Outcome)
}

func TestOptionalBoundedIntParser_NonInteger(t *testing.T) {
	p := OptionalBoundedIntParser{Min: 0, Max: 10}
	r := p.Parse("seven")
	assert.Equal(t, OutcomeParseFailure, r.Outcome)
}

func TestOptionalBoundedIntParser_Decline(t *testing.T) {
	p := OptionalBoundedIntParser{Min: 0, Max: 10}
	r := p.Parse("UNKNOWN")
	assert.Equal(t, OutcomeDecline, r.Outcome)
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanParser_DefaultTruthy(t *testing.T) {
	p := BooleanParser{}
	for _, in := range []string{"yes", "TRUE", " 1 ", "y"} {
		r := p.Parse(in)
		assert.Equal(t, OutcomeValue, r.Outcome, in)
		assert.True(t, r.Value, in)
	}
}

func TestBooleanParser_DefaultFalsy(t *testing.T) {
	p := BooleanParser{}
	for _, in := range []string{"no", "FALSE", "0", "n"} {
		r := p.Parse(in)
		assert.Equal(t, OutcomeValue, r.Outcome, in)
		assert.False(t, r.Value, in)
	}
}

func TestBooleanParser_CustomSets(t *testing.T) {
	p := BooleanParser{Truthy: []string{"si"}, Falsy: []string{"no"}}
	r := p.Parse("si")
	assert.Equal(t, OutcomeValue, r.Outcome)
	assert.True(t, r.Value)
}

func TestBooleanParser_Unrecognized_ParseFailure(t *testing.T) {
	p := BooleanParser{}
	r := p.Parse("maybe")
	assert.Equal(t, OutcomeParseFailure, r.Outcome)
}

func TestBooleanParser_Decline(t *testing.T) {
	p := BooleanParser{}
	r := p.Parse("INSUFFICIENT_DATA")
	assert.Equal(t, OutcomeDecline, r.Outcome)
}

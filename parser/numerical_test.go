package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatParser_PlainNumber(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("31")
	assert.Equal(t, OutcomeValue, r.Outcome)
	assert.Equal(t, 31.0, r.Value)
}

func TestFloatParser_SignedDecimal(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("the answer is -3.5 grams")
	assert.Equal(t, OutcomeValue, r.Outcome)
}

func TestFloatParser_UnitDeclaredAndKnown_AppliesMultiplier(t *testing.T) {
	p := FloatParser{Units: map[string]float64{"kg": 1000, "g": 1}}
	r := p.Parse("2 kg")
	assert.Equal(t, OutcomeValue, r.Outcome)
	assert.Equal(t, 2000.0, r.Value)
}

func TestFloatParser_UnitDeclaredAndUnknown_ParseFailure(t *testing.T) {
	p := FloatParser{Units: map[string]float64{"kg": 1000}}
	r := p.Parse("2 lbs")
	assert.Equal(t, OutcomeParseFailure, r.Outcome)
}

func TestFloatParser_NoUnitTableDeclared_IgnoresUnit(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("2 lbs")
	assert.Equal(t, OutcomeValue, r.Outcome)
	assert.Equal(t, 2.0, r.Value)
}

func TestFloatParser_Empty_ParseFailure(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("")
	assert.Equal(t, OutcomeParseFailure, r.Outcome)
}

func TestFloatParser_NonNumeric_ParseFailure(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("no idea at all")
	assert.Equal(t, OutcomeParseFailure, r.Outcome)
}

func TestFloatParser_DeclineTakesPrecedence(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("UNKNOWN 42")
	assert.Equal(t, OutcomeDecline, r.Outcome)
}

func TestFloatParser_DeclineKeywordSubstring(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("I don't know — UNKNOWN")
	assert.Equal(t, OutcomeDecline, r.Outcome)
}

func TestFloatParser_InsufficientDataDeclines(t *testing.T) {
	p := FloatParser{}
	r := p.Parse("insufficient_data")
	assert.Equal(t, OutcomeDecline, r.Outcome)
}

package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorical_Estimate_Mode(t *testing.T) {
	c := Categorical[string]{N: 4}
	samples := []string{"breast", "gram", "breast", "breast", "breast"}
	assert.Equal(t, "breast", c.Estimate(samples))
}

func TestCategorical_Estimate_TieBreaksFirstAppearance(t *testing.T) {
	c := Categorical[string]{N: 3}
	samples := []string{"b", "a", "a", "b"}
	assert.Equal(t, "b", c.Estimate(samples))
}

func TestCategorical_Confidence_MatchesSpecExample(t *testing.T) {
	c := Categorical[string]{N: 4}
	samples := []string{"breast", "gram", "breast", "breast", "breast"}
	estimate := c.Estimate(samples)
	conf := c.Confidence(samples, estimate)
	assert.InDelta(t, 11.0/15.0, conf, 0.001)
}

func TestCategorical_Confidence_SingleOption(t *testing.T) {
	c := Categorical[string]{N: 1}
	assert.Equal(t, 1.0, c.Confidence([]string{"only"}, "only"))
}

func TestCategorical_Confidence_Empty(t *testing.T) {
	c := Categorical[string]{N: 4}
	assert.Equal(t, 0.0, c.Confidence(nil, "x"))
}

func TestCategorical_Confidence_BelowBaseline_ClampsToZero(t *testing.T) {
	c := Categorical[string]{N: 2}
	samples := []string{"a", "b", "b"}
	conf := c.Confidence(samples, "a")
	assert.Equal(t, 0.0, conf)
}

func TestCategorical_Idempotence_DuplicatingSamples(t *testing.T) {
	c := Categorical[string]{N: 4}
	samples := []string{"breast", "gram", "breast", "breast", "breast"}
	doubled := append(append([]string{}, samples...), samples...)

	estimate1 := c.Estimate(samples)
	estimate2 := c.Estimate(doubled)
	assert.Equal(t, estimate1, estimate2)

	conf1 := c.Confidence(samples, estimate1)
	conf2 := c.Confidence(doubled, estimate2)
	assert.InDelta(t, conf1, conf2, 1e-9)
}

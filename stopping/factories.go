package stopping

// StandardNumericalConfig overrides the defaults used by StandardNumerical.
type StandardNumericalConfig struct {
	MinSamples          int
	Theta               float64
	MaxQueries          int
	ConsecutiveDeclines int
}

// StandardNumerical builds (MinSamples(5) ∧ ConfidenceReached(0.90)) ∨
// MaxQueries(20) ∨ ConsecutiveDeclines(5), with every field overridable.
func StandardNumerical(cfg StandardNumericalConfig) Predicate[float64] {
	cfg = applyStandardNumericalDefaults(cfg)
	return NewAny[float64](
		NewAll[float64](
			MinSamples[float64]{N: cfg.MinSamples},
			ConfidenceReached[float64]{Theta: cfg.Theta},
		),
		MaxQueries[float64]{N: cfg.MaxQueries},
		ConsecutiveDeclines[float64]{N: cfg.ConsecutiveDeclines},
	)
}

func applyStandardNumericalDefaults(cfg StandardNumericalConfig) StandardNumericalConfig {
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = 5
	}
	if cfg.Theta <= 0 {
		cfg.Theta = 0.90
	}
	if cfg.MaxQueries <= 0 {
		cfg.MaxQueries = 20
	}
	if cfg.ConsecutiveDeclines <= 0 {
		cfg.ConsecutiveDeclines = 5
	}
	return cfg
}

// CategoricalStoppingConfig overrides the defaults used by CategoricalStopping.
type CategoricalStoppingConfig struct {
	UnanimousAfter int
	MinSamples     int
	Theta          float64
	MaxQueries     int
}

// CategoricalStopping builds UnanimousAgreement(3) ∨ (MinSamples(5) ∧
// ConfidenceReached(0.85)) ∨ MaxQueries(15), with every field overridable.
func CategoricalStopping[T comparable](cfg CategoricalStoppingConfig) Predicate[T] {
	cfg = applyCategoricalDefaults(cfg)
	return NewAny[T](
		UnanimousAgreement[T]{K: cfg.UnanimousAfter},
		NewAll[T](
			MinSamples[T]{N: cfg.MinSamples},
			ConfidenceReached[T]{Theta: cfg.Theta},
		),
		MaxQueries[T]{N: cfg.MaxQueries},
	)
}

func applyCategoricalDefaults(cfg CategoricalStoppingConfig) CategoricalStoppingConfig {
	if cfg.UnanimousAfter <= 0 {
		cfg.UnanimousAfter = 3
	}
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = 5
	}
	if cfg.Theta <= 0 {
		cfg.Theta = 0.85
	}
	if cfg.MaxQueries <= 0 {
		cfg.MaxQueries = 15
	}
	return cfg
}

// RelaxedNumericalConfig overrides the defaults used by RelaxedNumerical.
type RelaxedNumericalConfig struct {
	MinSamples          int
	Theta               float64
	MaxQueries          int
	ConsecutiveDeclines int
}

// RelaxedNumerical is StandardNumerical with a lower confidence threshold
// (0.75) and tighter budgets, for questions where a rough answer suffices.
func RelaxedNumerical(cfg RelaxedNumericalConfig) Predicate[float64] {
	cfg = applyRelaxedDefaults(cfg)
	return NewAny[float64](
		NewAll[float64](
			MinSamples[float64]{N: cfg.MinSamples},
			ConfidenceReached[float64]{Theta: cfg.Theta},
		),
		MaxQueries[float64]{N: cfg.MaxQueries},
		ConsecutiveDeclines[float64]{N: cfg.ConsecutiveDeclines},
	)
}

func applyRelaxedDefaults(cfg RelaxedNumericalConfig) RelaxedNumericalConfig {
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = 3
	}
	if cfg.Theta <= 0 {
		cfg.Theta = 0.75
	}
	if cfg.MaxQueries <= 0 {
		cfg.MaxQueries = 12
	}
	if cfg.ConsecutiveDeclines <= 0 {
		cfg.ConsecutiveDeclines = 4
	}
	return cfg
}

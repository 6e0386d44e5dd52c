package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/winnow"
	"github.com/sells-group/winnow/estimator"
	"github.com/sells-group/winnow/internal/oracle"
	"github.com/sells-group/winnow/parser"
	"github.com/sells-group/winnow/pkg/anthropic"
	"github.com/sells-group/winnow/stopping"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Run a small demo battery against the Anthropic oracle",
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := anthropic.NewClient(cfg.Anthropic.Key)
	o := oracle.New(client, oracle.Config{
		Model:             cfg.Anthropic.Model,
		MaxTokens:         cfg.Anthropic.MaxTokens,
		Temperature:       &cfg.Anthropic.Temperature,
		RequestsPerSecond: cfg.Oracle.RequestsPerSecond,
		Burst:             cfg.Oracle.Burst,
		MaxAttempts:       cfg.Oracle.MaxAttempts,
		CircuitThreshold:  cfg.Oracle.CircuitThreshold,
	})

	bank, err := buildDemoBank()
	if err != nil {
		return err
	}

	estimates, err := winnow.Collect(cmd.Context(), bank, o.Func(), winnow.Options{
		Concurrency: cfg.Oracle.Concurrency,
		Progress: func(snapshots map[string]winnow.Snapshot) {
			for id, s := range snapshots {
				zap.L().Debug("progress",
					zap.String("question_id", id),
					zap.Int("query_count", s.QueryCount()),
				)
			}
		},
	})
	if err != nil {
		return err
	}

	for _, id := range bank.IDs() {
		est := estimates[id]
		fmt.Printf("%s: value=%v confidence=%.3f archetype=%s samples=%d declines=%d\n",
			id, est.Value, est.Confidence, est.Archetype, est.SampleCount, est.DeclineCount)
	}

	return nil
}

// buildDemoBank wires three questions exercising each built-in parser and
// estimator: how many grams of protein a menu item contains, whether it is
// vegan, and which serving unit its listing uses.
func buildDemoBank() (*winnow.Bank, error) {
	proteinGrams, err := winnow.NewQuestion(
		"protein_grams",
		"How many grams of protein does a standard serving of grilled chicken breast contain? Reply with a number.",
		parser.FloatParser{Units: map[string]float64{"g": 1, "grams": 1, "oz": 28.35}},
		estimator.Numerical{},
		stopping.StandardNumerical(stopping.StandardNumericalConfig{}),
	)
	if err != nil {
		return nil, err
	}

	isVegan, err := winnow.NewQuestion(
		"is_vegan",
		"Is seitan a vegan ingredient? Reply yes or no.",
		parser.BooleanParser{},
		estimator.Boolean{},
		stopping.CategoricalStopping[bool](stopping.CategoricalStoppingConfig{UnanimousAfter: 3}),
	)
	if err != nil {
		return nil, err
	}

	servingUnit, err := winnow.NewQuestion(
		"serving_unit",
		"A menu lists chicken by which unit: gram, piece, breast, or cup?",
		parser.LiteralParser[string]{Options: []string{"gram", "piece", "breast", "cup"}},
		estimator.Categorical[string]{N: 4},
		stopping.CategoricalStopping[string](stopping.CategoricalStoppingConfig{}),
	)
	if err != nil {
		return nil, err
	}

	return winnow.NewBank(proteinGrams, isVegan, servingUnit)
}

package main

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"shotnet/dataset"
	"shotnet/neuralnet"
)

func TestWriteSummarySections(t *testing.T) {
	rows := [][]string{
		{"6.0", "90.0", "-1.2", "1.7", "1"},
		{"10.0", "70.0", "0.3", "1.0", "0"},
		{"8.0", "95.0", "1.1", "0.4", "1"},
		{"12.0", "65.0", "-0.2", "0.9", "0"},
	}
	ds, _, stats, err := dataset.Prepare(rows)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	params := neuralnet.Params{Hidden: 2, LearningRate: 0.5, Epochs: 10}
	nn := neuralnet.New(ds.FeatureCount(), params.Hidden, 2, rand.New(rand.NewSource(1)))
	initial := nn.Weights()

	trace, err := neuralnet.Train(context.Background(), nn, ds.Inputs(), ds.Labels(), params)
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}
	records := neuralnet.Evaluate(nn, ds.Inputs(), ds.Labels())
	summary := summarize(records, ds.Raw)

	var report strings.Builder
	writeSummary(&report, ds, stats, params, initial, nn.Weights(), trace, records, summary)
	got := report.String()

	for _, want := range []string{
		"RAW INPUT PATTERNS",
		"[6.0,90.0,-1.2,1.7,1]",
		"MIN AND MAX VALUES PER INPUT FEATURE:",
		"feature 0: min=6 max=12",
		"NORMALIZED INPUT PATTERNS",
		// Row 0 normalized: distance and x sit at their column minima, y at
		// its maximum; the first-seen label "1" encodes to 0.
		"[0,0.8333333333333334,0,1,0]",
		" - Neurons in hidden layer: 2",
		" - Learning rate: 0.5",
		"INITIAL WEIGHTS",
		">>epoch=0, error=",
		">>epoch=9, error=",
		"FINAL WEIGHTS",
		"PREDICTIONS MADE BY THE NETWORK:",
		" ~ TOTAL SHOTS: 4",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q", want)
		}
	}
	if count := strings.Count(got, ">>epoch="); count != 10 {
		t.Errorf("report has %d epoch lines; want 10", count)
	}
}

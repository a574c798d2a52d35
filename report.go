package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"shotnet/dataset"
	"shotnet/neuralnet"
)

const rule = "----------------------------------------------------------------------------------------------------"

// writeSummary renders the full training summary: raw patterns, column
// stats, chosen parameters, initial and final weights, the per-epoch error
// trace, every prediction and the aggregate figures.
func writeSummary(w io.Writer, ds *dataset.Dataset, stats dataset.Stats,
	p neuralnet.Params, initial, final []*mat.Dense,
	trace []neuralnet.EpochMetric, records []neuralnet.PredictionRecord, s Summary) {

	fmt.Fprintf(w, "%s\nSHOT-PATTERN CLASSIFIER TRAINING SUMMARY\n%s\n\n", rule, rule)

	fmt.Fprintf(w, "RAW INPUT PATTERNS [DISTANCE(m), SPEED(km/h), x(m), y(m), OUTCOME]:\n")
	for i := 0; i < ds.Len(); i++ {
		fmt.Fprintf(w, "[%s]\n", strings.Join(ds.Raw(i), ","))
	}

	fmt.Fprintf(w, "\nMIN AND MAX VALUES PER INPUT FEATURE:\n")
	for j, r := range stats {
		fmt.Fprintf(w, "feature %d: min=%g max=%g\n", j, r.Min, r.Max)
	}

	fmt.Fprintf(w, "\nNORMALIZED INPUT PATTERNS [DISTANCE, SPEED, x, y, OUTCOME]:\n")
	labels := ds.Labels()
	for i, row := range ds.Inputs() {
		parts := make([]string, 0, len(row)+1)
		for _, v := range row {
			parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
		}
		parts = append(parts, strconv.Itoa(labels[i]))
		fmt.Fprintf(w, "[%s]\n", strings.Join(parts, ","))
	}

	fmt.Fprintf(w, "\nSPECIFIED PARAMETERS:\n")
	fmt.Fprintf(w, " - Neurons in input layer: %d\n", ds.FeatureCount())
	fmt.Fprintf(w, " - Neurons in hidden layer: %d\n", p.Hidden)
	fmt.Fprintf(w, " - Neurons in output layer: %d\n", ds.ClassCount())
	fmt.Fprintf(w, " - Learning rate: %g\n", p.LearningRate)
	fmt.Fprintf(w, " - Epochs: %d\n", p.Epochs)

	writeWeights(w, "INITIAL WEIGHTS - HIDDEN LAYER (Wij) & OUTPUT LAYER (Wjk):", initial)

	fmt.Fprintf(w, "\nERROR EVOLUTION PER EPOCH:\n")
	for _, m := range trace {
		fmt.Fprintf(w, ">>epoch=%d, error=%.3f\n", m.Epoch, m.SumSquaredError)
	}

	writeWeights(w, "FINAL WEIGHTS - HIDDEN LAYER (Wij) & OUTPUT LAYER (Wjk):", final)

	fmt.Fprintf(w, "\nPREDICTIONS MADE BY THE NETWORK:\n")
	for _, rec := range records {
		row := ds.Raw(rec.Row)
		mark := ""
		if !rec.Correct() {
			mark = "  <-- WRONG"
		}
		fmt.Fprintf(w, "(%d)--[x,y]: %s,%s  |  Distance: %s  |  Speed: %s  |  Expected: %d  |  Predicted: %d%s\n",
			rec.Row+1, row[2], row[3], row[0], row[1], rec.Expected, rec.Predicted, mark)
	}

	fmt.Fprintf(w, "\nFINAL RESULTS:\n")
	fmt.Fprintf(w, " ~ TOTAL SHOTS: %d\n", s.TotalShots)
	fmt.Fprintf(w, "    ~ MEAN DISTANCE: %.2f meters\n", s.MeanDistance)
	fmt.Fprintf(w, "    ~ MEAN SPEED: %.2f km/h\n", s.MeanSpeed)
	fmt.Fprintf(w, " ~ TOTAL PREDICTIONS: %d\n", s.TotalShots)
	fmt.Fprintf(w, "    ~ CORRECT: %d\n", s.Correct)
	fmt.Fprintf(w, "    ~ INCORRECT: %d\n", s.Incorrect)
	fmt.Fprintf(w, " ~ ACCURACY: %.2f%%\n", s.Accuracy)
	fmt.Fprintf(w, " ~ ERROR RATE: %.2f%%\n\n%s\n", s.ErrorRate, rule)
}

func writeWeights(w io.Writer, title string, layers []*mat.Dense) {
	fmt.Fprintf(w, "\n%s\n", title)
	for i, m := range layers {
		fmt.Fprintf(w, "layer %d:\n%v\n", i, mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"

	"shotnet/dataset"
	"shotnet/neuralnet"
)

// weightSeed fixes weight initialization so repeated runs over the same
// file and parameters produce identical traces and weights.
const weightSeed = 1

// Binary shot outcome: saved or scored.
const numOutputs = 2

// A shot row carries distance, speed, x and y ahead of the outcome label.
const numFeatures = 4

// checkShotSchema verifies the prepared dataset matches the shot-row shape
// the report and aggregate statistics hard-code: the training core itself
// handles any arity, but the presentation indexes the four shot columns by
// position.
func checkShotSchema(ds *dataset.Dataset) error {
	if ds.FeatureCount() != numFeatures {
		return errors.Errorf("expected %d feature columns (distance, speed, x, y), found %d", numFeatures, ds.FeatureCount())
	}
	if ds.ClassCount() > numOutputs {
		return errors.Errorf("expected at most %d outcome classes, found %d", numOutputs, ds.ClassCount())
	}
	return nil
}

func main() {
	dataPath := flag.String("data", "data/shots.csv", "Path to the shot-pattern CSV file")
	hidden := flag.Int("hidden", 3, "Number of hidden-layer neurons")
	rate := flag.Float64("rate", 0.5, "Learning rate in (0, 1]")
	epochs := flag.Int("epochs", 500, "Number of training epochs")
	outPath := flag.String("out", "outputs/training_summary.txt", "Path of the training summary report")

	flag.Parse()

	params := neuralnet.Params{
		Hidden:       *hidden,
		LearningRate: *rate,
		Epochs:       *epochs,
	}
	if err := params.Validate(); err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	rows, err := readRows(*dataPath)
	if err != nil {
		log.Fatalf("failed to load shots: %v", err)
	}

	ds, lookup, stats, err := dataset.Prepare(rows)
	if err != nil {
		log.Fatalf("failed to prepare dataset: %v", err)
	}
	if err := checkShotSchema(ds); err != nil {
		log.Fatalf("unsupported shot file %s: %v (classes: %v)", *dataPath, err, lookup)
	}
	log.Printf("rows=%d features=%d classes=%v", ds.Len(), ds.FeatureCount(), lookup)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(weightSeed))
	nn := neuralnet.New(ds.FeatureCount(), params.Hidden, numOutputs, rng)
	initial := nn.Weights()

	trace, err := neuralnet.Train(ctx, nn, ds.Inputs(), ds.Labels(), params)
	if err != nil {
		log.Fatalf("training failed after %d epochs: %v", len(trace), err)
	}
	if len(trace) > 0 {
		log.Printf("epochs=%d first_error=%.3f final_error=%.3f",
			len(trace), trace[0].SumSquaredError, trace[len(trace)-1].SumSquaredError)
	}

	records := neuralnet.Evaluate(nn, ds.Inputs(), ds.Labels())
	summary := summarize(records, ds.Raw)
	log.Printf("shots=%d correct=%d incorrect=%d accuracy=%.2f%%",
		summary.TotalShots, summary.Correct, summary.Incorrect, summary.Accuracy)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("failed to create report: %v", err)
	}
	defer out.Close()

	writeSummary(out, ds, stats, params, initial, nn.Weights(), trace, records, summary)
	log.Printf("report written to %s", *outPath)
}

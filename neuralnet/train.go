package neuralnet

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Params captures the training hyperparameters supplied by the caller.
type Params struct {
	Hidden       int
	LearningRate float64
	Epochs       int
}

// InvalidHyperparameterError reports a hyperparameter outside its allowed
// range. It is surfaced before any network state is touched.
type InvalidHyperparameterError struct {
	Param string
	Value float64
}

func (err InvalidHyperparameterError) Error() string {
	return fmt.Sprintf("hyperparameter %s out of range: %v", err.Param, err.Value)
}

// Validate verifies the params describe a runnable training: at least one
// hidden neuron, learning rate in (0, 1], at least one epoch.
func (p Params) Validate() error {
	if p.Hidden <= 0 {
		return InvalidHyperparameterError{Param: "hidden", Value: float64(p.Hidden)}
	}
	if p.LearningRate <= 0 || p.LearningRate > 1 {
		return InvalidHyperparameterError{Param: "learning rate", Value: p.LearningRate}
	}
	if p.Epochs <= 0 {
		return InvalidHyperparameterError{Param: "epochs", Value: float64(p.Epochs)}
	}
	return nil
}

// EpochMetric is one entry of the per-epoch error trace: the epoch index
// and the sum of squared output errors accumulated over the full sweep.
type EpochMetric struct {
	Epoch           int
	SumSquaredError float64
}

// PredictionRecord pairs a dataset row with its expected and predicted
// class, in row order.
type PredictionRecord struct {
	Row       int
	Expected  int
	Predicted int
}

// Correct reports whether the prediction matched the expected class.
func (r PredictionRecord) Correct() bool {
	return r.Expected == r.Predicted
}

// Train runs p.Epochs full sweeps of forward, backward and update over the
// rows, in dataset order with no shuffling and no early stopping, and
// returns the ordered per-epoch error trace. Rows are processed strictly
// one at a time; the trace and the row order are therefore deterministic
// for a given network and input.
//
// The context is checked between epochs only. On cancellation the trace of
// completed epochs is returned along with ctx.Err(); weight updates from
// those epochs stay applied.
func Train(ctx context.Context, nn *Network, inputs [][]float64, labels []int, p Params) ([]EpochMetric, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, errors.New("no training rows")
	}
	if len(labels) != len(inputs) {
		return nil, errors.Errorf("have %d rows but %d labels", len(inputs), len(labels))
	}

	classes := nn.OutputSize()
	expected, err := oneHotEncode(labels, classes)
	if err != nil {
		return nil, errors.Wrap(err, "encoding expected outputs")
	}

	trace := make([]EpochMetric, 0, p.Epochs)
	target := make([]float64, classes)
	for epoch := 0; epoch < p.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		var sumError float64
		for i, row := range inputs {
			for j := 0; j < classes; j++ {
				v, _ := expected.At(i, j)
				target[j] = v.(float64)
			}
			outputs := nn.Forward(row)
			for j := range outputs {
				diff := target[j] - outputs[j]
				sumError += diff * diff
			}
			nn.Backward(target)
			nn.Update(row, p.LearningRate)
		}
		trace = append(trace, EpochMetric{Epoch: epoch, SumSquaredError: sumError})
	}
	return trace, nil
}

// oneHotEncode builds the rows-by-classes one-hot target matrix. The
// training loop reads its expected vectors back out of the tensor row by
// row on every epoch.
func oneHotEncode(labels []int, numClasses int) (*tensor.Dense, error) {
	backing := make([]float64, len(labels)*numClasses)
	for i, label := range labels {
		if label < 0 || label >= numClasses {
			return nil, errors.Errorf("row %d: label %d outside [0, %d)", i, label, numClasses)
		}
		backing[i*numClasses+label] = 1.0
	}
	return tensor.New(tensor.Of(tensor.Float64), tensor.WithShape(len(labels), numClasses), tensor.WithBacking(backing)), nil
}

// Evaluate predicts every row with the trained network and returns one
// record per row, in row order. It reuses the network's forward-pass
// scratch state and so must not run concurrently with training.
func Evaluate(nn *Network, inputs [][]float64, labels []int) []PredictionRecord {
	records := make([]PredictionRecord, len(inputs))
	for i, row := range inputs {
		records[i] = PredictionRecord{
			Row:       i,
			Expected:  labels[i],
			Predicted: nn.Predict(row),
		}
	}
	return records
}

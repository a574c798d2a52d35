// Package neuralnet implements a small fully-connected feed-forward
// classifier trained by backpropagation and gradient descent. A Network is
// built once per run from a caller-supplied random source, mutated in place
// by training, and then reused for inference.
package neuralnet

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Neuron holds one weight vector. The last slot is the bias term, so a
// neuron fed by n inputs carries n+1 weights.
type Neuron struct {
	weights []float64
}

// Layer is an ordered set of neurons sharing the same input arity. outputs
// and deltas are per-pass scratch state: outputs is written by the forward
// pass, deltas by the backward pass, and both are overwritten on the next
// row. Sharing them across concurrently processed rows would race; a
// Network must be driven by one goroutine at a time.
type Layer struct {
	neurons    []*Neuron
	outputs    []float64
	deltas     []float64
	activation ActivationFunction
}

// Network is an ordered sequence of fully-connected layers. The constructor
// builds the usual hidden+output pair, but nothing else assumes a depth of
// two.
type Network struct {
	layers []*Layer
}

// New creates a network with nHidden hidden neurons over nInputs features
// and nOutputs output neurons, all weights drawn independently and
// uniformly from [0,1) using rng. Passing an explicit source keeps weight
// initialization reproducible: two calls with identically seeded sources
// yield bit-identical networks, and independent networks in one process
// never share generator state.
func New(nInputs, nHidden, nOutputs int, rng *rand.Rand) *Network {
	nn := &Network{
		layers: []*Layer{
			newLayer(nHidden, nInputs, rng),
			newLayer(nOutputs, nHidden, rng),
		},
	}
	return nn
}

func newLayer(size, fanIn int, rng *rand.Rand) *Layer {
	layer := &Layer{
		neurons:    make([]*Neuron, size),
		outputs:    make([]float64, size),
		deltas:     make([]float64, size),
		activation: Sigmoid{},
	}
	for j := range layer.neurons {
		weights := make([]float64, fanIn+1)
		for k := range weights {
			weights[k] = rng.Float64()
		}
		layer.neurons[j] = &Neuron{weights: weights}
	}
	return layer
}

// SetActivation replaces the transfer function of one layer.
func (nn *Network) SetActivation(layerIndex int, activation ActivationFunction) {
	nn.layers[layerIndex].activation = activation
}

// OutputSize returns the number of output-layer neurons.
func (nn *Network) OutputSize() int {
	return len(nn.layers[len(nn.layers)-1].neurons)
}

// activate computes the weighted sum of inputs plus the trailing bias
// weight. len(inputs) must equal len(weights)-1.
func activate(weights, inputs []float64) float64 {
	sum := weights[len(weights)-1]
	for i, in := range inputs {
		sum += weights[i] * in
	}
	return sum
}

// Forward propagates one row of features through the network, storing each
// neuron's activation as that layer's outputs and threading them forward as
// the next layer's inputs. It returns a copy of the output layer's
// activations, so the result survives later passes.
func (nn *Network) Forward(features []float64) []float64 {
	inputs := features
	for _, layer := range nn.layers {
		for j, neuron := range layer.neurons {
			layer.outputs[j] = layer.activation.Activate(activate(neuron.weights, inputs))
		}
		inputs = layer.outputs
	}
	out := make([]float64, len(inputs))
	copy(out, inputs)
	return out
}

// Backward propagates the error signal for the expected one-hot output back
// through the network, filling every layer's deltas. Layers are visited in
// strict reverse order: a hidden neuron's error is the sum of the next
// layer's deltas weighted by the current (not yet updated) weights that
// connect to it, so those deltas must already be in place.
func (nn *Network) Backward(expected []float64) {
	for i := len(nn.layers) - 1; i >= 0; i-- {
		layer := nn.layers[i]
		if i == len(nn.layers)-1 {
			for j := range layer.neurons {
				err := expected[j] - layer.outputs[j]
				layer.deltas[j] = err * layer.activation.Derivative(layer.outputs[j])
			}
			continue
		}
		next := nn.layers[i+1]
		for j := range layer.neurons {
			var err float64
			for k, neuron := range next.neurons {
				err += neuron.weights[j] * next.deltas[k]
			}
			layer.deltas[j] = err * layer.activation.Derivative(layer.outputs[j])
		}
	}
}

// Update applies the deltas computed by Backward to every weight, scaled by
// the learning rate. The first layer reads the sample's features; deeper
// layers read the outputs the forward pass stored on the layer below. It
// must only run after Forward and Backward have both seen the same row.
func (nn *Network) Update(features []float64, rate float64) {
	for i, layer := range nn.layers {
		inputs := features
		if i > 0 {
			inputs = nn.layers[i-1].outputs
		}
		for j, neuron := range layer.neurons {
			for k, in := range inputs {
				neuron.weights[k] += rate * layer.deltas[j] * in
			}
			neuron.weights[len(neuron.weights)-1] += rate * layer.deltas[j]
		}
	}
}

// Predict runs the forward pass and returns the index of the
// highest-activation output neuron. Ties resolve to the lowest index. The
// result is always in [0, OutputSize()).
func (nn *Network) Predict(features []float64) int {
	return floats.MaxIdx(nn.Forward(features))
}

// Weights exports every layer's weights as a dense matrix, one row per
// neuron with the bias in the last column, for logging and audit.
func (nn *Network) Weights() []*mat.Dense {
	out := make([]*mat.Dense, len(nn.layers))
	for i, layer := range nn.layers {
		rows := len(layer.neurons)
		cols := len(layer.neurons[0].weights)
		data := make([]float64, rows*cols)
		for j, neuron := range layer.neurons {
			copy(data[j*cols:(j+1)*cols], neuron.weights)
		}
		out[i] = mat.NewDense(rows, cols, data)
	}
	return out
}

// Debug
func (l *Layer) String() string {
	var sb strings.Builder
	for j, neuron := range l.neurons {
		sb.WriteString(fmt.Sprintf("Neuron %d: weights=%v output=%.4f delta=%.4f\n",
			j, neuron.weights, l.outputs[j], l.deltas[j]))
	}
	return sb.String()
}

func (nn *Network) String() string {
	var sb strings.Builder
	for i, layer := range nn.layers {
		sb.WriteString(fmt.Sprintf("Layer %d:\n%s", i, layer.String()))
	}
	return sb.String()
}

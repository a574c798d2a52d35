package neuralnet

import "math"

// ActivationFunction squashes a neuron's weighted input. Derivative is
// evaluated at the activation's stored output, not its input; for the
// transfers used here that form is exact and avoids recomputing the
// activation during backpropagation.
type ActivationFunction interface {
	Activate(x float64) float64
	Derivative(output float64) float64
}

type Sigmoid struct{}

// Activate computes the logistic function 1 / (1 + e^-x). The negative
// branch is rewritten as e^x / (1 + e^x) so large-magnitude inputs never
// overflow the exponential.
func (s Sigmoid) Activate(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

func (s Sigmoid) Derivative(output float64) float64 {
	return output * (1.0 - output)
}

type Tanh struct{}

func (t Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

func (t Tanh) Derivative(output float64) float64 {
	return 1.0 - output*output
}

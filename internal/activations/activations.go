// Package activations provides the activation functions of the fixed
// sigmoid-hidden, linear-output topology.
package activations

import "math"

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// Sigmoid activation function, applied to every hidden neuron.
type Sigmoid struct{}

// sigmoid computes the logistic function.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activate computes sigmoid(x)
func (s Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x))
func (s Sigmoid) Derivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}

// Identity activation function, applied to every output neuron. The output
// stage is linear, so activation and derivative are trivial.
type Identity struct{}

// Activate returns x unchanged.
func (i Identity) Activate(x float64) float64 {
	return x
}

// Derivative returns 1.
func (i Identity) Derivative(x float64) float64 {
	return 1
}

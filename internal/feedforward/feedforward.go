// Package feedforward implements the forward and gradient kernels of the
// fixed two-stage network: one sigmoid hidden layer feeding one linear
// output layer. Both kernels are plain nested loops over the packed
// parameter tensor with a fixed summation order; repeated calls on the same
// operands are bit-identical.
package feedforward

import (
	"fmt"

	"github.com/glassboxml/glassbox/internal/activations"
	"github.com/glassboxml/glassbox/internal/tensor"
)

// The two stages dispatch through the activation interface; the hidden
// stage is fixed to sigmoid and the output stage to identity.
var (
	hidden activations.Activation = activations.Sigmoid{}
	output activations.Activation = activations.Identity{}
)

// Outputs runs one forward pass with the given weights and returns the
// network outputs y together with the hidden activations z. Both slices are
// freshly allocated. Summation inside each neuron runs bias first, then the
// incoming links in ascending index order.
func Outputs(inputs []float64, w *tensor.Tensor) (y, z []float64) {
	topo := w.Topology()
	if len(inputs) != topo.In {
		panic(fmt.Sprintf("feedforward: got %d inputs for topology %s", len(inputs), topo))
	}

	z = make([]float64, topo.Hidden)
	for h := 0; h < topo.Hidden; h++ {
		sum := w.At(tensor.HiddenBias, h, 0)
		links := w.Row(tensor.InputHidden, h)
		for i := 0; i < topo.In; i++ {
			sum += links[i] * inputs[i]
		}
		z[h] = hidden.Activate(sum)
	}

	y = make([]float64, topo.Out)
	for k := 0; k < topo.Out; k++ {
		sum := w.At(tensor.OutputBias, 0, k)
		for h := 0; h < topo.Hidden; h++ {
			sum += w.At(tensor.HiddenOutput, h, k) * z[h]
		}
		y[k] = output.Activate(sum)
	}
	return y, z
}

// Gradient computes the full-network gradient of the halved squared error
// for one sample, consuming the outputs y and hidden activations z of the
// forward pass that ran against the same weights w. The returned tensor has
// the shape of w with zero padding intact.
//
// Hidden-side cells receive contributions from every output neuron; those
// contributions accumulate in ascending output order.
func Gradient(y, inputs, targets []float64, w *tensor.Tensor, z []float64) *tensor.Tensor {
	topo := w.Topology()
	if len(inputs) != topo.In || len(y) != topo.Out || len(targets) != topo.Out || len(z) != topo.Hidden {
		panic(fmt.Sprintf("feedforward: sample does not match topology %s", topo))
	}

	grad := tensor.New(topo)
	for k := 0; k < topo.Out; k++ {
		d := y[k] - targets[k]
		grad.Set(tensor.OutputBias, 0, k, d)
		for h := 0; h < topo.Hidden; h++ {
			grad.Set(tensor.HiddenOutput, h, k, d*z[h])

			// Error signal reaching hidden neuron h through output k,
			// with the sigmoid derivative written as z*(1-z).
			s := d * w.At(tensor.HiddenOutput, h, k) * z[h] * (1 - z[h])
			grad.Row(tensor.HiddenBias, h)[0] += s
			links := grad.Row(tensor.InputHidden, h)
			for i := 0; i < topo.In; i++ {
				links[i] += s * inputs[i]
			}
		}
	}
	return grad
}

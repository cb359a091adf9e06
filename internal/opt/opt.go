// Package opt provides the plain gradient-descent update applied between
// samples.
package opt

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/glassboxml/glassbox/internal/tensor"
)

// GradientDescent applies w = w - Alpha*g in place. There is no momentum,
// decay or per-cell scaling; the step touches only the meaningful cells of
// each slab, so padding stays zero even when the gradient carries stray
// values there.
type GradientDescent struct {
	Alpha float64
}

// Step updates the weights from one gradient. The weight and gradient
// tensors must share a topology and must not be the same tensor.
func (g GradientDescent) Step(w, grad *tensor.Tensor) {
	if w == grad {
		panic("opt: weights must not alias the gradient")
	}
	if w.Topology() != grad.Topology() {
		panic(fmt.Sprintf("opt: topology mismatch %s vs %s", w.Topology(), grad.Topology()))
	}

	topo := w.Topology()
	for h := 0; h < topo.Hidden; h++ {
		floats.AddScaled(w.Row(tensor.InputHidden, h)[:topo.In], -g.Alpha, grad.Row(tensor.InputHidden, h)[:topo.In])
		w.Row(tensor.HiddenBias, h)[0] -= g.Alpha * grad.Row(tensor.HiddenBias, h)[0]
		floats.AddScaled(w.Row(tensor.HiddenOutput, h)[:topo.Out], -g.Alpha, grad.Row(tensor.HiddenOutput, h)[:topo.Out])
	}
	floats.AddScaled(w.Row(tensor.OutputBias, 0)[:topo.Out], -g.Alpha, grad.Row(tensor.OutputBias, 0)[:topo.Out])
}

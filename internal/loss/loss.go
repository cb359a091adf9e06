// Package loss provides the per-sample error metric used by training and
// validation.
package loss

// SumSquared is the halved sum-of-squared-differences metric. It is summed
// over the outputs of one sample, not averaged, so single-output networks
// report exactly 0.5*(y-t)^2.
type SumSquared struct{}

// Sample computes sum over k of 0.5*(y[k]-targets[k])^2.
func (SumSquared) Sample(y, targets []float64) float64 {
	if len(y) != len(targets) {
		panic("loss: outputs and targets must have same length")
	}
	var sum float64
	for k := range y {
		d := y[k] - targets[k]
		sum += 0.5 * d * d
	}
	return sum
}

package trainer

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/glassboxml/glassbox/internal/dataset"
	"github.com/glassboxml/glassbox/internal/feedforward"
	"github.com/glassboxml/glassbox/internal/loss"
)

// Validate runs the trained weights over a held-out table without mutating
// them and summarizes the per-sample errors. The table must have the same
// row width as the table the network trained on. Validate may be called any
// number of times.
func (n *Network) Validate(data *dataset.Table) (*ValidationRun, error) {
	if n.state != Trained {
		return nil, ErrNotTrained
	}
	if data == nil || data.Len() == 0 {
		return nil, InvalidArgumentError{Field: "data", Reason: "no samples"}
	}
	if data.Cols() != n.cols {
		return nil, SchemaMismatchError{WantCols: n.cols, GotCols: data.Cols()}
	}

	switch n.cfg.Mode {
	case Online:
	case Batch:
		return nil, ErrBatchUnsupported
	default:
		return nil, InvalidArgumentError{Field: "mode", Reason: fmt.Sprintf("unknown mode %d", n.cfg.Mode)}
	}

	metric := loss.SumSquared{}
	run := &ValidationRun{}
	errs := make([]float64, 0, data.Len())
	for s := 0; s < data.Len(); s++ {
		inputs, targets := data.Sample(s, n.cfg.Inputs)
		y, _ := feedforward.Outputs(inputs, n.weights)
		errs = append(errs, metric.Sample(y, targets))
		if n.cfg.Record.Has(ValidationOutputs) {
			run.outputs = append(run.outputs, y)
		}
	}

	run.meanErr = stat.Mean(errs, nil)
	run.finalErr = errs[len(errs)-1]
	if n.cfg.Record.Has(ValidationErrors) {
		run.errs = errs
	}
	return run, nil
}

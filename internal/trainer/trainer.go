// Package trainer drives online backpropagation over a sample table and
// owns the public training surface: configuration, the network state
// machine, run artifacts and the error taxonomy.
package trainer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/glassboxml/glassbox/internal/dataset"
	"github.com/glassboxml/glassbox/internal/feedforward"
	"github.com/glassboxml/glassbox/internal/loss"
	"github.com/glassboxml/glassbox/internal/opt"
	"github.com/glassboxml/glassbox/internal/tensor"
)

// Mode selects the training regime. Only Online is implemented; requesting
// Batch fails with ErrBatchUnsupported at dispatch time.
type Mode int

const (
	Online Mode = iota
	Batch
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case Online:
		return "Online"
	case Batch:
		return "Batch"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// State tracks where a network is in its lifecycle. Validate requires
// Trained; a new Train call is accepted from Idle or Trained and replaces
// the previous result on success.
type State int

const (
	Idle State = iota
	Training
	Trained
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Training:
		return "Training"
	case Trained:
		return "Trained"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Config fixes everything about a training run except the data.
type Config struct {
	// Inputs is the number of leading input columns in each data row; the
	// remaining columns are targets.
	Inputs int
	// Hidden is the hidden layer width. Zero selects the default,
	// ceil((inputs+outputs)/2).
	Hidden int
	// Alpha is the learning rate.
	Alpha float64
	// Mode is the training regime.
	Mode Mode
	// Stop is the termination rule. The zero value runs forever.
	Stop StopRule
	// Record chooses which per-sample artifacts runs retain.
	Record Record
	// InitialWeights optionally replaces the deterministic starting
	// weights. The tensor is cloned at Train entry and never mutated.
	InitialWeights *tensor.Tensor
}

// Network is a single-hidden-layer feedforward network trained by online
// backpropagation. Methods must not be called concurrently.
type Network struct {
	cfg   Config
	state State

	topo    tensor.Topology
	weights *tensor.Tensor
	cols    int
}

// New returns an idle network with the given configuration.
func New(cfg Config) *Network {
	return &Network{cfg: cfg}
}

// State returns the lifecycle state.
func (n *Network) State() State { return n.state }

// Weights returns the trained weights, or nil before the first successful
// Train. The tensor is owned by the network; clone it before mutating.
func (n *Network) Weights() *tensor.Tensor { return n.weights }

// Train runs the configured regime over the table and returns a fresh
// TrainingRun. Each row of the table concatenates Config.Inputs input
// columns with at least one target column.
//
// Weight updates lag the gradient by exactly one sample step: the first
// sample of the first epoch runs on the starting weights, and every later
// sample first applies the gradient computed by its predecessor. The
// gradient of the final sample is computed, and recorded when asked for,
// but never applied.
//
// On error the network keeps whatever state it had before the call.
func (n *Network) Train(data *dataset.Table) (*TrainingRun, error) {
	if n.state == Training {
		return nil, InvalidArgumentError{Field: "network", Reason: "training already in progress"}
	}
	if data == nil || data.Len() == 0 {
		return nil, InvalidArgumentError{Field: "data", Reason: "no samples"}
	}
	if n.cfg.Inputs < 1 {
		return nil, InvalidArgumentError{Field: "inputs", Reason: "must be at least 1"}
	}
	outs := data.Cols() - n.cfg.Inputs
	if outs < 1 {
		return nil, InvalidArgumentError{
			Field:  "inputs",
			Reason: fmt.Sprintf("%d input columns leave no targets in %d-column rows", n.cfg.Inputs, data.Cols()),
		}
	}
	if n.cfg.Hidden < 0 {
		return nil, InvalidArgumentError{Field: "hidden", Reason: "must not be negative"}
	}
	if math.IsNaN(n.cfg.Alpha) || math.IsInf(n.cfg.Alpha, 0) {
		return nil, InvalidArgumentError{Field: "alpha", Reason: "must be finite"}
	}
	if !n.cfg.Stop.valid() {
		return nil, InvalidArgumentError{Field: "stop", Reason: fmt.Sprintf("unknown mode %d", n.cfg.Stop.Mode)}
	}

	hidden := n.cfg.Hidden
	if hidden == 0 {
		hidden = (n.cfg.Inputs + outs + 1) / 2
	}
	topo := tensor.Topology{In: n.cfg.Inputs, Hidden: hidden, Out: outs}

	var w *tensor.Tensor
	if n.cfg.InitialWeights != nil {
		if n.cfg.InitialWeights.Topology() != topo {
			return nil, ShapeMismatchError{Want: topo, Got: n.cfg.InitialWeights.Topology()}
		}
		w = n.cfg.InitialWeights.Clone()
	} else {
		w = tensor.Initial(topo)
	}

	switch n.cfg.Mode {
	case Online:
	case Batch:
		return nil, ErrBatchUnsupported
	default:
		return nil, InvalidArgumentError{Field: "mode", Reason: fmt.Sprintf("unknown mode %d", n.cfg.Mode)}
	}

	run := newTrainingRun(topo, n.cfg.Record, data.Len())
	n.state = Training
	n.trainOnline(data, w, run)

	n.topo = topo
	n.weights = run.weights
	n.cols = data.Cols()
	n.state = Trained
	return run, nil
}

// trainOnline walks the table sample by sample until the stop rule fires at
// an epoch boundary.
func (n *Network) trainOnline(data *dataset.Table, w *tensor.Tensor, run *TrainingRun) {
	step := opt.GradientDescent{Alpha: n.cfg.Alpha}
	metric := loss.SumSquared{}

	// grad trails the loop by one sample: it is nil only before the very
	// first sample, and afterwards always holds the previous sample's
	// gradient, still unapplied.
	var grad *tensor.Tensor
	lastErr := math.Inf(1)
	epochErrs := make([]float64, 0, data.Len())

	for epoch := 1; !n.cfg.Stop.Done(epoch, lastErr); epoch++ {
		epochErrs = epochErrs[:0]
		for s := 0; s < data.Len(); s++ {
			inputs, targets := data.Sample(s, n.cfg.Inputs)
			if grad != nil {
				step.Step(w, grad)
			}
			y, z := feedforward.Outputs(inputs, w)
			lastErr = metric.Sample(y, targets)
			grad = feedforward.Gradient(y, inputs, targets, w, z)
			epochErrs = append(epochErrs, lastErr)
			run.observe(w, y, lastErr, grad)
		}
		run.epochs = epoch
	}

	run.weights = w
	run.finalErr = lastErr
	if run.epochs == 0 {
		run.meanErr = math.Inf(1)
	} else {
		run.meanErr = stat.Mean(epochErrs, nil)
	}
}

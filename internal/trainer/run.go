package trainer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/glassboxml/glassbox/internal/tensor"
)

// TrainingRun is the immutable result of one Train call: the weights after
// the final sample, summary errors, and whatever per-sample history the
// Record flags retained. Histories are indexed sample-step by sample-step,
// epoch after epoch, so entry e*samples+s belongs to sample s of epoch e.
type TrainingRun struct {
	topo    tensor.Topology
	record  Record
	samples int
	epochs  int

	weights  *tensor.Tensor
	finalErr float64
	meanErr  float64

	outputs     [][]float64
	errs        []float64
	weightSnaps []*tensor.Tensor
	gradSnaps   []*tensor.Tensor
}

func newTrainingRun(topo tensor.Topology, record Record, samples int) *TrainingRun {
	return &TrainingRun{topo: topo, record: record, samples: samples}
}

// observe retains the artifacts of one completed sample step. The weights
// have not been touched since the sample's forward pass, so cloning them
// here still captures the values the sample used.
func (r *TrainingRun) observe(w *tensor.Tensor, y []float64, sampleErr float64, grad *tensor.Tensor) {
	if r.record.Has(TrainingOutputs) {
		r.outputs = append(r.outputs, y)
	}
	if r.record.Has(TrainingErrors) {
		r.errs = append(r.errs, sampleErr)
	}
	if r.record.Has(WeightSnapshots) {
		r.weightSnaps = append(r.weightSnaps, w.Clone())
	}
	if r.record.Has(GradientSnapshots) {
		r.gradSnaps = append(r.gradSnaps, grad)
	}
}

// Topology returns the dimensions the run trained.
func (r *TrainingRun) Topology() tensor.Topology { return r.topo }

// Epochs returns the number of full epochs that ran.
func (r *TrainingRun) Epochs() int { return r.epochs }

// Weights returns the weights as of the final sample step. The returned
// tensor is owned by the run; clone it before mutating.
func (r *TrainingRun) Weights() *tensor.Tensor { return r.weights }

// FinalError returns the error of the last sample processed, or +Inf if no
// epoch ran.
func (r *TrainingRun) FinalError() float64 { return r.finalErr }

// MeanError returns the mean per-sample error over the final epoch, or +Inf
// if no epoch ran.
func (r *TrainingRun) MeanError() float64 { return r.meanErr }

// Outputs returns the per-sample network outputs, or nil unless
// TrainingOutputs was set.
func (r *TrainingRun) Outputs() [][]float64 { return r.outputs }

// Errors returns the per-sample errors, or nil unless TrainingErrors was
// set.
func (r *TrainingRun) Errors() []float64 { return r.errs }

// WeightSnapshots returns, for each sample step, the weights that step's
// forward pass used, or nil unless WeightSnapshots was set.
func (r *TrainingRun) WeightSnapshots() []*tensor.Tensor { return r.weightSnaps }

// GradientSnapshots returns the gradient computed at each sample step, or
// nil unless GradientSnapshots was set.
func (r *TrainingRun) GradientSnapshots() []*tensor.Tensor { return r.gradSnaps }

// EpochStats is the per-epoch summary of the recorded sample errors.
type EpochStats struct {
	Epoch int
	Mean  float64
	Std   float64
}

// EpochStats summarizes the recorded per-sample errors epoch by epoch. It
// returns nil unless TrainingErrors was set. Std is the sample standard
// deviation and is NaN for single-sample epochs.
func (r *TrainingRun) EpochStats() []EpochStats {
	if !r.record.Has(TrainingErrors) || r.epochs == 0 {
		return nil
	}
	stats := make([]EpochStats, 0, r.epochs)
	for e := 0; e < r.epochs; e++ {
		window := r.errs[e*r.samples : (e+1)*r.samples]
		mean, std := stat.MeanStdDev(window, nil)
		stats = append(stats, EpochStats{Epoch: e + 1, Mean: mean, Std: std})
	}
	return stats
}

// WriteErrorCSV streams the recorded per-sample errors as CSV rows of
// epoch, sample and error, both indexes 1-based. It fails unless
// TrainingErrors was set.
func (r *TrainingRun) WriteErrorCSV(w io.Writer) error {
	if !r.record.Has(TrainingErrors) {
		return errors.New("trainer: training errors were not recorded")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"epoch", "sample", "error"}); err != nil {
		return errors.Wrap(err, "trainer: writing csv header")
	}
	for i, e := range r.errs {
		row := []string{
			strconv.Itoa(i/r.samples + 1),
			strconv.Itoa(i%r.samples + 1),
			strconv.FormatFloat(e, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "trainer: writing csv row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "trainer: flushing csv")
}

// ValidationRun is the result of one Validate call: summary errors over the
// held-out samples plus whatever per-sample history the Record flags
// retained.
type ValidationRun struct {
	meanErr  float64
	finalErr float64
	outputs  [][]float64
	errs     []float64
}

// MeanError returns the mean per-sample error over the validation table.
func (r *ValidationRun) MeanError() float64 { return r.meanErr }

// FinalError returns the error of the last validation sample.
func (r *ValidationRun) FinalError() float64 { return r.finalErr }

// Outputs returns the per-sample network outputs, or nil unless
// ValidationOutputs was set.
func (r *ValidationRun) Outputs() [][]float64 { return r.outputs }

// Errors returns the per-sample errors, or nil unless ValidationErrors was
// set.
func (r *ValidationRun) Errors() []float64 { return r.errs }

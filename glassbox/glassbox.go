package glassbox

import (
	"github.com/glassboxml/glassbox/internal/dataset"
	"github.com/glassboxml/glassbox/internal/tensor"
	"github.com/glassboxml/glassbox/internal/trainer"
)

// Re-export common types for easier access
type (
	Network       = trainer.Network
	Config        = trainer.Config
	Mode          = trainer.Mode
	State         = trainer.State
	StopRule      = trainer.StopRule
	StopMode      = trainer.StopMode
	Record        = trainer.Record
	TrainingRun   = trainer.TrainingRun
	ValidationRun = trainer.ValidationRun
	EpochStats    = trainer.EpochStats
	Topology      = tensor.Topology
	Tensor        = tensor.Tensor
	Table         = dataset.Table

	InvalidArgumentError = trainer.InvalidArgumentError
	ShapeMismatchError   = trainer.ShapeMismatchError
	SchemaMismatchError  = trainer.SchemaMismatchError
)

// Training modes
const (
	Online = trainer.Online
	Batch  = trainer.Batch
)

// Network lifecycle states
const (
	Idle     = trainer.Idle
	Training = trainer.Training
	Trained  = trainer.Trained
)

// Termination modes
const (
	StopNone   = trainer.StopNone
	StopEpochs = trainer.StopEpochs
	StopError  = trainer.StopError
	StopEither = trainer.StopEither
	StopBoth   = trainer.StopBoth
)

// History retention flags
const (
	TrainingOutputs   = trainer.TrainingOutputs
	TrainingErrors    = trainer.TrainingErrors
	WeightSnapshots   = trainer.WeightSnapshots
	GradientSnapshots = trainer.GradientSnapshots
	ValidationOutputs = trainer.ValidationOutputs
	ValidationErrors  = trainer.ValidationErrors

	RecordNone       = trainer.RecordNone
	RecordTraining   = trainer.RecordTraining
	RecordValidation = trainer.RecordValidation
	RecordAll        = trainer.RecordAll
)

// Error values
var (
	ErrBatchUnsupported = trainer.ErrBatchUnsupported
	ErrNotTrained       = trainer.ErrNotTrained
)

// New returns an idle network with the given configuration.
func New(cfg Config) *Network {
	return trainer.New(cfg)
}

// NewTable builds a sample table from rows that concatenate inputs with
// targets.
func NewTable(rows [][]float64) (*Table, error) {
	return dataset.New(rows)
}

// LoadCSV reads a sample table from an all-numeric CSV file.
func LoadCSV(path string, hasHeader bool) (*Table, error) {
	return dataset.LoadCSV(path, hasHeader)
}

// NewTopology validates the three dimensions of a network. Every dimension
// must be at least 1.
func NewTopology(in, hidden, out int) (Topology, error) {
	return tensor.NewTopology(in, hidden, out)
}

// InitialWeights returns the deterministic starting weights for a topology.
// It panics on invalid dimensions; NewTopology checks them first.
func InitialWeights(topo Topology) *Tensor {
	return tensor.Initial(topo)
}

// NewWeights returns a zero-valued weight tensor for callers assembling
// their own starting point. It panics on invalid dimensions; NewTopology
// checks them first.
func NewWeights(topo Topology) *Tensor {
	return tensor.New(topo)
}

// Stop rules
func RunForever() StopRule { return trainer.RunForever() }

func StopAfter(maxEpochs int) StopRule { return trainer.StopAfter(maxEpochs) }

func StopBelow(maxError float64) StopRule { return trainer.StopBelow(maxError) }

func StopEitherOf(maxEpochs int, maxError float64) StopRule {
	return trainer.StopEitherOf(maxEpochs, maxError)
}

func StopBothOf(maxEpochs int, maxError float64) StopRule {
	return trainer.StopBothOf(maxEpochs, maxError)
}

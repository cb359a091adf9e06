package trainer

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/glassboxml/glassbox/internal/tensor"
)

var (
	// ErrBatchUnsupported is returned when a run is dispatched in batch
	// mode. Only online mode is implemented.
	ErrBatchUnsupported = errors.New("trainer: batch mode is not implemented")

	// ErrNotTrained is returned by Validate before a training run has
	// completed on the network.
	ErrNotTrained = errors.New("trainer: network has no trained weights yet")
)

// InvalidArgumentError reports a malformed configuration or dataset,
// detected before any training work starts.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("trainer: invalid %s: %s", e.Field, e.Reason)
}

// ShapeMismatchError reports caller-supplied initial weights whose topology
// does not match the one derived from the configuration and dataset.
type ShapeMismatchError struct {
	Want tensor.Topology
	Got  tensor.Topology
}

func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("trainer: initial weights built for topology %s, want %s", e.Got, e.Want)
}

// SchemaMismatchError reports a validation table whose row width differs
// from the table the network was trained on.
type SchemaMismatchError struct {
	WantCols int
	GotCols  int
}

func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("trainer: validation rows have %d columns, trained on %d", e.GotCols, e.WantCols)
}

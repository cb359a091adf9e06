package trainer

import "fmt"

// StopMode selects how MaxEpochs and MaxError combine into a termination
// decision.
type StopMode int

const (
	// StopNone never terminates; training runs until the caller kills the
	// process. It is the zero value.
	StopNone StopMode = iota
	// StopEpochs terminates once MaxEpochs full epochs have completed.
	StopEpochs
	// StopError terminates once the most recent sample error drops below
	// MaxError.
	StopError
	// StopEither terminates when either bound is reached.
	StopEither
	// StopBoth terminates only when both bounds are reached.
	StopBoth
)

// StopRule is the termination condition of a training run. It is evaluated
// on epoch boundaries against the number of completed epochs and the error
// of the most recent sample.
type StopRule struct {
	Mode      StopMode
	MaxEpochs int
	MaxError  float64
}

// RunForever returns the rule that never stops training.
func RunForever() StopRule { return StopRule{Mode: StopNone} }

// StopAfter returns the rule that stops after maxEpochs full epochs.
func StopAfter(maxEpochs int) StopRule {
	return StopRule{Mode: StopEpochs, MaxEpochs: maxEpochs}
}

// StopBelow returns the rule that stops once the last sample error falls
// below maxError.
func StopBelow(maxError float64) StopRule {
	return StopRule{Mode: StopError, MaxError: maxError}
}

// StopEitherOf returns the rule that stops at whichever bound is hit first.
func StopEitherOf(maxEpochs int, maxError float64) StopRule {
	return StopRule{Mode: StopEither, MaxEpochs: maxEpochs, MaxError: maxError}
}

// StopBothOf returns the rule that stops only once both bounds are hit.
func StopBothOf(maxEpochs int, maxError float64) StopRule {
	return StopRule{Mode: StopBoth, MaxEpochs: maxEpochs, MaxError: maxError}
}

func (r StopRule) valid() bool {
	return r.Mode >= StopNone && r.Mode <= StopBoth
}

// Done reports whether training should terminate before running the epoch
// numbered nextEpoch (1-based), given the most recent sample error. The
// error bound is a strict less-than; before any sample has run, lastErr is
// +Inf and no error bound can be satisfied.
func (r StopRule) Done(nextEpoch int, lastErr float64) bool {
	switch r.Mode {
	case StopNone:
		return false
	case StopEpochs:
		return nextEpoch > r.MaxEpochs
	case StopError:
		return lastErr < r.MaxError
	case StopEither:
		return nextEpoch > r.MaxEpochs || lastErr < r.MaxError
	case StopBoth:
		return nextEpoch > r.MaxEpochs && lastErr < r.MaxError
	}
	panic(fmt.Sprintf("trainer: unknown stop mode %d", r.Mode))
}

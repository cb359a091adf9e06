package trainer

import (
	"math"
	"testing"
)

func TestStopRuleDone(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name      string
		rule      StopRule
		nextEpoch int
		lastErr   float64
		want      bool
	}{
		{"NoneNeverStops", RunForever(), 1 << 30, 0, false},
		{"EpochsBeforeBound", StopAfter(3), 3, inf, false},
		{"EpochsAtBound", StopAfter(3), 4, inf, true},
		{"EpochsZeroStopsImmediately", StopAfter(0), 1, inf, true},
		{"ErrorAtBoundIsNotBelow", StopBelow(0.1), 5, 0.1, false},
		{"ErrorBelowBound", StopBelow(0.1), 5, 0.09, true},
		{"ErrorNeverBelowBeforeFirstSample", StopBelow(math.MaxFloat64), 1, inf, false},
		{"EitherByEpochs", StopEitherOf(2, 0.1), 3, 1, true},
		{"EitherByError", StopEitherOf(100, 0.1), 2, 0.05, true},
		{"EitherNeither", StopEitherOf(100, 0.1), 2, 1, false},
		{"BothEpochsAlone", StopBothOf(2, 0.1), 3, 1, false},
		{"BothErrorAlone", StopBothOf(2, 0.1), 2, 0.05, false},
		{"BothTogether", StopBothOf(2, 0.1), 3, 0.05, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Done(tt.nextEpoch, tt.lastErr); got != tt.want {
				t.Errorf("Expected Done(%d, %v) = %v, got %v", tt.nextEpoch, tt.lastErr, tt.want, got)
			}
		})
	}
}

func TestStopRuleZeroValueRunsForever(t *testing.T) {
	var rule StopRule
	if rule.Done(1_000_000, 0) {
		t.Errorf("Expected the zero-value rule to never stop")
	}
}

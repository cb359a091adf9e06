package activations

import (
	"math"
	"testing"
)

func TestSigmoidActivate(t *testing.T) {
	s := Sigmoid{}

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Zero", 0, 0.5},
		{"One", 1, 0.7310585786300049},
		{"MinusOne", -1, 0.2689414213699951},
		{"Two", 2, 0.8807970779778823},
		{"LargePositive", 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := s.Activate(tt.input)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("Expected sigmoid(%v) = %v, got %v", tt.input, tt.expected, result)
			}
		})
	}
}

func TestSigmoidDerivative(t *testing.T) {
	s := Sigmoid{}

	if got := s.Derivative(0); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Expected sigmoid'(0) = 0.25, got %v", got)
	}

	// The derivative must match sigma * (1 - sigma) at every point.
	for _, x := range []float64{-3, -0.5, 0, 0.5, 1, 4} {
		sigma := s.Activate(x)
		want := sigma * (1 - sigma)
		if got := s.Derivative(x); math.Abs(got-want) > 1e-12 {
			t.Errorf("Expected sigmoid'(%v) = %v, got %v", x, want, got)
		}
	}
}

func TestIdentity(t *testing.T) {
	id := Identity{}

	for _, x := range []float64{-2.5, 0, 1, 123.75} {
		if got := id.Activate(x); got != x {
			t.Errorf("Expected identity(%v) = %v, got %v", x, x, got)
		}
		if got := id.Derivative(x); got != 1 {
			t.Errorf("Expected identity'(%v) = 1, got %v", x, got)
		}
	}
}

// TestActivationDispatch drives both implementations through the shared
// interface, the way the forward kernel holds them.
func TestActivationDispatch(t *testing.T) {
	tests := []struct {
		name      string
		act       Activation
		x         float64
		want      float64
		wantDeriv float64
	}{
		{"Sigmoid", Sigmoid{}, 0, 0.5, 0.25},
		{"Identity", Identity{}, -2.5, -2.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.act.Activate(tt.x); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := tt.act.Derivative(tt.x); math.Abs(got-tt.wantDeriv) > 1e-12 {
				t.Errorf("Expected derivative %v, got %v", tt.wantDeriv, got)
			}
		})
	}
}

// Package tensor provides the packed parameter representation shared by the
// forward, gradient and update kernels. Weights and gradients for the whole
// network live in a single flat buffer so that snapshots, comparisons and
// elementwise updates stay trivial.
package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Layer selects one of the four parameter slabs of the network.
type Layer int

const (
	// InputHidden holds the input-to-hidden link weights, one row per
	// hidden neuron, one column per input.
	InputHidden Layer = iota
	// HiddenBias holds the hidden neuron biases in column 0 of each row.
	HiddenBias
	// HiddenOutput holds the hidden-to-output link weights, one row per
	// hidden neuron, one column per output.
	HiddenOutput
	// OutputBias holds the output neuron biases in row 0.
	OutputBias
)

const numLayers = 4

// Topology fixes the three dimensions of a network: input width, hidden
// width and output width. All three must be at least 1.
type Topology struct {
	In     int
	Hidden int
	Out    int
}

// M is the shared column width of every slab: max(In, Out). Slabs narrower
// than M carry zero padding in the unused columns.
func (t Topology) M() int {
	if t.In > t.Out {
		return t.In
	}
	return t.Out
}

// Valid reports whether all three dimensions are at least 1.
func (t Topology) Valid() bool {
	return t.In >= 1 && t.Hidden >= 1 && t.Out >= 1
}

func (t Topology) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.In, t.Hidden, t.Out)
}

// NewTopology validates the three dimensions and returns the resulting
// topology. Every dimension must be at least 1.
func NewTopology(in, hidden, out int) (Topology, error) {
	topo := Topology{In: in, Hidden: hidden, Out: out}
	if !topo.Valid() {
		return Topology{}, errors.Errorf("tensor: invalid topology %s", topo)
	}
	return topo, nil
}

// Tensor is a dense (Hidden x M x 4) parameter block stored layer-major:
// the rows of one slab are contiguous, and cell (l, h, m) lives at
// ((l*Hidden)+h)*M + m. Cells outside a slab's meaningful region are padding
// and stay zero for the lifetime of the tensor.
type Tensor struct {
	topo Topology
	data []float64
}

// New returns a zero-valued tensor for the given topology.
// It panics if the topology is not valid.
func New(topo Topology) *Tensor {
	if !topo.Valid() {
		panic(fmt.Sprintf("tensor: invalid topology %s", topo))
	}
	return &Tensor{
		topo: topo,
		data: make([]float64, numLayers*topo.Hidden*topo.M()),
	}
}

// Initial returns the deterministic starting weights for the given topology:
// link weights alternate +1/-1 in a checkerboard over (row, column), and all
// biases are 1. Padding cells are zero.
func Initial(topo Topology) *Tensor {
	t := New(topo)
	for h := 0; h < topo.Hidden; h++ {
		for i := 0; i < topo.In; i++ {
			t.Set(InputHidden, h, i, sign(h+i))
		}
		t.Set(HiddenBias, h, 0, 1)
		for k := 0; k < topo.Out; k++ {
			t.Set(HiddenOutput, h, k, sign(h+k))
		}
	}
	for k := 0; k < topo.Out; k++ {
		t.Set(OutputBias, 0, k, 1)
	}
	return t
}

// sign returns (-1)^n as a float64.
func sign(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

// Topology returns the dimensions the tensor was built for.
func (t *Tensor) Topology() Topology { return t.topo }

// EqualShape reports whether both tensors were built for the same topology.
func (t *Tensor) EqualShape(o *Tensor) bool { return t.topo == o.topo }

func (t *Tensor) index(l Layer, h, m int) int {
	return (int(l)*t.topo.Hidden+h)*t.topo.M() + m
}

// At returns the cell (l, h, m). Indexes are zero-based and must lie inside
// the (Hidden x M) slab; padding cells read as zero.
func (t *Tensor) At(l Layer, h, m int) float64 {
	return t.data[t.index(l, h, m)]
}

// Set writes the cell (l, h, m).
func (t *Tensor) Set(l Layer, h, m int, v float64) {
	t.data[t.index(l, h, m)] = v
}

// Row returns the M-wide row h of slab l as a view into the backing buffer.
// Mutating the returned slice mutates the tensor.
func (t *Tensor) Row(l Layer, h int) []float64 {
	start := t.index(l, h, 0)
	return t.data[start : start+t.topo.M()]
}

// Raw returns the backing buffer itself, layer-major. It is a view, not a
// copy.
func (t *Tensor) Raw() []float64 { return t.data }

// Clone returns an independent deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := &Tensor{
		topo: t.topo,
		data: make([]float64, len(t.data)),
	}
	copy(c.data, t.data)
	return c
}

// Package basis defines the Cycle type and options for homology basis
// extraction.
package basis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/homology/mesh"
)

var (
	// ErrNilDecomposition indicates a nil *treecotree.Decomposition was
	// passed to Cycles.
	ErrNilDecomposition = errors.New("basis: decomposition is nil")

	// ErrOpenWalk indicates a discovered cycle that fails the closed-walk
	// check. It signals a corrupted decomposition, not bad mesh input.
	ErrOpenWalk = errors.New("basis: extracted walk is not closed")
)

// Step is one directed traversal From → To along a mesh edge.
type Step struct {
	From int
	To   int
}

// Cycle is an ordered closed walk of directed steps. Each cycle produced
// by Cycles starts at its cotree edge's lower endpoint and contains the
// cotree edge as its final step.
type Cycle []Step

// Closed reports whether the walk returns to its starting vertex and
// every consecutive pair of steps is properly chained.
func (c Cycle) Closed() bool {
	if len(c) == 0 {
		return false
	}
	for i := 1; i < len(c); i++ {
		if c[i].From != c[i-1].To {
			return false
		}
	}

	return c[len(c)-1].To == c[0].From
}

// Vertices returns the walk's vertex sequence without the closing
// repetition of the start vertex.
func (c Cycle) Vertices() []int {
	out := make([]int, len(c))
	for i, s := range c {
		out[i] = s.From
	}

	return out
}

// Contains reports whether the walk traverses edge e in either direction.
func (c Cycle) Contains(e mesh.Edge) bool {
	for _, s := range c {
		if mesh.NewEdge(s.From, s.To) == mesh.NewEdge(e.U, e.V) {
			return true
		}
	}

	return false
}

// String renders the walk as "v0 → v1 → ... → v0".
func (c Cycle) String() string {
	if len(c) == 0 {
		return "(empty)"
	}
	var sb strings.Builder
	for i, s := range c {
		if i > 0 {
			sb.WriteString(" → ")
		}
		sb.WriteString(fmt.Sprintf("%d", s.From))
	}
	sb.WriteString(fmt.Sprintf(" → %d", c[len(c)-1].To))

	return sb.String()
}

// Option configures optional behavior of Cycles.
type Option func(*Options)

// Options holds configurable parameters for basis extraction.
type Options struct {
	// Ctx allows cancellation between cycle extractions; defaults to
	// context.Background(). The spanning tree is always restored before
	// Cycles returns, cancelled or not.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

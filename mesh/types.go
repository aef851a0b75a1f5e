// Package mesh defines the connectivity model of a closed triangulated
// surface: Face, Edge, DualEdge, and the immutable Mesh that owns them.
//
// This file declares the value types, sentinel errors, the Option set,
// and the Mesh struct itself. Construction and derived quantities live
// in mesh.go, dual.go and genus.go.
//
// Errors:
//
//	ErrNoFaces          - the face list is empty.
//	ErrMalformedFace    - a face does not reference exactly 3 distinct, in-range vertices.
//	ErrNonManifoldEdge  - an edge is incident to a face count other than 2.
//	ErrInvalidTopology  - vertex/edge/face counts are inconsistent with a closed triangular manifold.
package mesh

import (
	"errors"
	"sync"
)

// Sentinel errors for mesh validation and derived topology.
var (
	// ErrNoFaces indicates an empty face list was passed to New.
	ErrNoFaces = errors.New("mesh: face list is empty")

	// ErrMalformedFace indicates a face record that does not encode
	// exactly 3 distinct, non-negative vertex indices.
	ErrMalformedFace = errors.New("mesh: face must reference 3 distinct vertices")

	// ErrNonManifoldEdge indicates an edge whose incident face count is
	// not exactly 2 (open boundary or non-manifold configuration).
	ErrNonManifoldEdge = errors.New("mesh: edge is not shared by exactly 2 faces")

	// ErrInvalidTopology indicates vertex/edge/face counts that cannot
	// belong to a closed triangular manifold (non-integer genus arithmetic).
	ErrInvalidTopology = errors.New("mesh: counts inconsistent with a closed triangular manifold")
)

// Face is an ordered triple of vertex indices describing a triangle.
// Faces are immutable once the Mesh is constructed; the face id is the
// position of the Face in the input slice.
type Face [3]int

// Edge is an unordered pair of vertex indices in canonical form (U < V),
// so equal edges compare equal regardless of traversal orientation.
// The edge id is the position of the Edge in Mesh.Edges().
type Edge struct {
	// U is the smaller vertex index.
	U int

	// V is the larger vertex index.
	V int
}

// NewEdge returns the canonical Edge for the unordered pair {a, b}.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// DualEdge is the unordered pair of face ids incident to a primal Edge,
// in canonical form (A < B). DualEdge i is the dual of Edge i: the two
// lists are position-aligned and never re-sorted after construction.
type DualEdge struct {
	// A is the smaller face id.
	A int

	// B is the larger face id.
	B int
}

// Option configures optional behavior of New.
type Option func(*Options)

// Options holds configurable parameters for Mesh construction.
type Options struct {
	// VertexCount, if positive, fixes the number of vertices instead of
	// deriving it as (highest referenced index + 1). It must not be lower
	// than the derived count. Useful when the coordinate table carries
	// vertices no face references.
	VertexCount int
}

// DefaultOptions returns Options with the vertex count derived from faces.
func DefaultOptions() Options {
	return Options{VertexCount: 0}
}

// WithVertexCount returns an Option that fixes the mesh vertex count to n.
// Values < 1 are ignored (the derived count is retained).
func WithVertexCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.VertexCount = n
		}
	}
}

// Mesh is the immutable connectivity of a closed triangulated surface.
//
// The edge list is sorted in ascending canonical (U, V) order and its
// positions serve as edge ids. The dual edge list is built lazily on
// first use and is position-aligned with the edge list.
type Mesh struct {
	faces       []Face
	numVertices int

	edges  []Edge       // ascending canonical order; index = edge id
	edgeID map[Edge]int // canonical edge → edge id

	// dual adjacency, built once on demand
	dualOnce sync.Once
	dual     []DualEdge
	dualErr  error
}

// Package treecotree defines configuration options and sentinel errors
// for the tree–cotree decomposition of a closed triangulated surface.
package treecotree

import (
	"errors"

	"github.com/katalvlaran/homology/mesh"
)

var (
	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to Decompose.
	ErrNilMesh = errors.New("treecotree: mesh is nil")

	// ErrDisconnected indicates the primal or dual graph has more than one
	// connected component. Multi-component meshes are an explicit
	// unsupported input: the genus arithmetic assumes one closed surface.
	ErrDisconnected = errors.New("treecotree: mesh is not connected")

	// ErrRootNotFound indicates the WithRoot vertex is out of range.
	ErrRootNotFound = errors.New("treecotree: root vertex out of range")

	// ErrVertexNotInTree indicates an Insert/Remove/Path endpoint that is
	// not a vertex of the spanning tree.
	ErrVertexNotInTree = errors.New("treecotree: vertex not in spanning tree")

	// ErrEdgeExists indicates an Insert of an edge already present.
	ErrEdgeExists = errors.New("treecotree: edge already present in tree")

	// ErrEdgeNotFound indicates a Remove of an edge that is not present.
	ErrEdgeNotFound = errors.New("treecotree: edge not present in tree")

	// ErrTreeEdge indicates a Remove that targets a structural (parent
	// link) edge. Only edges added with Insert may be removed.
	ErrTreeEdge = errors.New("treecotree: cannot remove a structural tree edge")
)

// Option configures optional behavior of Decompose.
type Option func(*Options)

// Options holds configurable parameters for one decomposition run.
type Options struct {
	// Root is the vertex the spanning tree is rooted at for parent/depth
	// bookkeeping. Default is vertex 0. The choice does not affect which
	// edges span the tree, only the orientation of parent pointers.
	Root int
}

// DefaultOptions returns Options rooted at vertex 0.
func DefaultOptions() Options {
	return Options{Root: 0}
}

// WithRoot returns an Option that roots the spanning tree at vertex v.
func WithRoot(v int) Option {
	return func(o *Options) {
		o.Root = v
	}
}

// Decomposition is the result of one tree–cotree run: the three disjoint
// edge classes (in ascending edge-id order) and the rooted primal
// spanning tree ready for cycle extraction.
//
// TreeEdges span the primal graph; DualTreeEdges are the primal edges
// whose duals span the dual graph; CotreeEdges are the remainder, and
// their count always equals 2·Genus.
type Decomposition struct {
	// Genus of the surface, from the Euler characteristic.
	Genus int

	// TreeEdges are the primal spanning tree edges (|V|−1 of them).
	TreeEdges []mesh.Edge

	// DualTreeEdges are primal edges whose dual edges form the dual
	// spanning tree (|F|−1 of them).
	DualTreeEdges []mesh.Edge

	// CotreeEdges are in neither tree; exactly 2·Genus of them, each
	// inducing one homology generator.
	CotreeEdges []mesh.Edge

	// Tree is the rooted primal spanning tree over TreeEdges.
	Tree *Tree
}

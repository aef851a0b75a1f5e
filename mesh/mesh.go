// Package mesh: construction and basic accessors.
//
// New validates the face table and derives the unique undirected edge
// set. Each face (a,b,c) contributes edges (a,b), (b,c), (c,a); every
// edge is canonicalized (smaller index first) before deduplication, and
// the deduplicated set is ordered ascending by (U, V) so the edge-id
// assignment is deterministic across runs.
package mesh

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// edgeComparator orders canonical edges ascending by (U, V).
// Signature matches gods' utils.Comparator.
func edgeComparator(a, b interface{}) int {
	ea := a.(Edge)
	eb := b.(Edge)
	if ea.U != eb.U {
		return ea.U - eb.U
	}

	return ea.V - eb.V
}

// New builds a Mesh from an ordered face table.
//
// Validation: every face must reference 3 distinct, non-negative vertex
// indices; violations return a wrapped ErrMalformedFace naming the face.
// An empty face table returns ErrNoFaces.
//
// Complexity: O(F log E) dominated by the ordered edge-set insertions.
func New(faces []Face, opts ...Option) (*Mesh, error) {
	// 1. Guard against empty input: a closed surface has at least 4 faces,
	//    but the hard precondition here is simply "non-empty".
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}

	// 2. Apply options.
	mopts := DefaultOptions()
	for _, fn := range opts {
		fn(&mopts)
	}

	// 3. Validate faces and collect canonical edges into an ordered set.
	//    The red-black tree keyed by (U, V) gives a sorted, deterministic
	//    edge ordering independent of face order quirks.
	set := redblacktree.NewWith(edgeComparator)
	maxVertex := -1
	for i, f := range faces {
		// Exactly 3 distinct vertex ids, all non-negative.
		if f[0] < 0 || f[1] < 0 || f[2] < 0 ||
			f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return nil, fmt.Errorf("mesh: face %d = %v: %w", i, f, ErrMalformedFace)
		}

		// Track the highest referenced vertex for the derived count.
		for _, v := range f {
			if v > maxVertex {
				maxVertex = v
			}
		}

		// Emit the three boundary edges of the triangle.
		set.Put(NewEdge(f[0], f[1]), struct{}{})
		set.Put(NewEdge(f[1], f[2]), struct{}{})
		set.Put(NewEdge(f[2], f[0]), struct{}{})
	}

	// 4. Resolve the vertex count: derived, or fixed via WithVertexCount.
	numVertices := maxVertex + 1
	if mopts.VertexCount > 0 {
		if mopts.VertexCount < numVertices {
			return nil, fmt.Errorf("mesh: vertex count %d below highest face reference %d: %w",
				mopts.VertexCount, maxVertex, ErrMalformedFace)
		}
		numVertices = mopts.VertexCount
	}

	// 5. Freeze the edge list in tree order and assign ids positionally.
	keys := set.Keys() // in-order walk: ascending (U, V)
	edges := make([]Edge, len(keys))
	edgeID := make(map[Edge]int, len(keys))
	for i, k := range keys {
		e := k.(Edge)
		edges[i] = e
		edgeID[e] = i
	}

	// 6. Copy the face table so the Mesh owns its data.
	owned := make([]Face, len(faces))
	copy(owned, faces)

	return &Mesh{
		faces:       owned,
		numVertices: numVertices,
		edges:       edges,
		edgeID:      edgeID,
	}, nil
}

// Faces returns the face table. Callers must not mutate the result.
func (m *Mesh) Faces() []Face { return m.faces }

// Edges returns the unique edge list in ascending canonical order.
// The position of an edge in this slice is its edge id.
// Callers must not mutate the result.
func (m *Mesh) Edges() []Edge { return m.edges }

// EdgeID reports the edge id of e (canonicalized) and whether e exists.
func (m *Mesh) EdgeID(e Edge) (int, bool) {
	id, ok := m.edgeID[NewEdge(e.U, e.V)]

	return id, ok
}

// HasEdge reports whether the unordered pair {u, v} is a mesh edge.
func (m *Mesh) HasEdge(u, v int) bool {
	_, ok := m.edgeID[NewEdge(u, v)]

	return ok
}

// NumVertices returns the vertex count V.
func (m *Mesh) NumVertices() int { return m.numVertices }

// NumEdges returns the unique edge count E.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// NumFaces returns the face count F.
func (m *Mesh) NumFaces() int { return len(m.faces) }

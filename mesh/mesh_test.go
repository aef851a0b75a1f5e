package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/homology/mesh"
)

// tetraFaces is the boundary of the 3-simplex: V=4, E=6, F=4.
var tetraFaces = []mesh.Face{
	{0, 1, 2},
	{0, 3, 1},
	{0, 2, 3},
	{1, 3, 2},
}

// TestNew_TetrahedronEdges verifies edge extraction on the tetrahedron:
// 6 unique canonical edges, in ascending (U, V) order, with positional ids.
func TestNew_TetrahedronEdges(t *testing.T) {
	m, err := mesh.New(tetraFaces)
	assert.NoError(t, err)

	// K4 has exactly 6 edges; every face contributed duplicates that
	// must have been deduplicated.
	want := []mesh.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	}
	assert.Equal(t, want, m.Edges())

	// Edge ids are positional and orientation-insensitive.
	id, ok := m.EdgeID(mesh.NewEdge(3, 1))
	assert.True(t, ok)
	assert.Equal(t, 4, id)
	assert.True(t, m.HasEdge(2, 0))
	assert.False(t, m.HasEdge(0, 5))

	// Counts: V from highest referenced index, E and F directly.
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 6, m.NumEdges())
	assert.Equal(t, 4, m.NumFaces())
}

// TestNew_DeterministicOrder verifies that permuting the face table does
// not change the edge list or the id assignment (sorted canonical order).
func TestNew_DeterministicOrder(t *testing.T) {
	m1, err := mesh.New(tetraFaces)
	assert.NoError(t, err)

	// Same faces, reversed order, rotated vertex triples.
	shuffled := []mesh.Face{
		{3, 2, 1},
		{2, 3, 0},
		{3, 1, 0},
		{1, 2, 0},
	}
	m2, err := mesh.New(shuffled)
	assert.NoError(t, err)

	assert.Equal(t, m1.Edges(), m2.Edges())
}

// TestNew_MalformedFace verifies rejection of faces without 3 distinct,
// non-negative vertex ids.
func TestNew_MalformedFace(t *testing.T) {
	// Duplicate vertex inside one face.
	_, err := mesh.New([]mesh.Face{{0, 1, 1}})
	assert.ErrorIs(t, err, mesh.ErrMalformedFace)

	// Negative vertex index.
	_, err = mesh.New([]mesh.Face{{0, -1, 2}})
	assert.ErrorIs(t, err, mesh.ErrMalformedFace)

	// Empty face table.
	_, err = mesh.New(nil)
	assert.ErrorIs(t, err, mesh.ErrNoFaces)
}

// TestNew_WithVertexCount verifies the vertex-count override: it may
// raise the derived count but never undercut a referenced index.
func TestNew_WithVertexCount(t *testing.T) {
	// Raise: coordinate tables may carry unreferenced vertices.
	m, err := mesh.New(tetraFaces, mesh.WithVertexCount(6))
	assert.NoError(t, err)
	assert.Equal(t, 6, m.NumVertices())

	// Undercut: face references vertex 3, count 3 is a lie.
	_, err = mesh.New(tetraFaces, mesh.WithVertexCount(3))
	assert.ErrorIs(t, err, mesh.ErrMalformedFace)
}

// TestDual_Tetrahedron verifies the dual list is position-aligned with
// the edge list and every pair is canonical.
func TestDual_Tetrahedron(t *testing.T) {
	m, err := mesh.New(tetraFaces)
	assert.NoError(t, err)

	dual, err := m.Dual()
	assert.NoError(t, err)
	assert.Len(t, dual, m.NumEdges())

	// Edge (0,1) lies between face 0 = {0,1,2} and face 1 = {0,3,1}.
	id, _ := m.EdgeID(mesh.Edge{U: 0, V: 1})
	assert.Equal(t, mesh.DualEdge{A: 0, B: 1}, dual[id])

	// Every dual pair is canonical (A < B) and references real faces.
	for i, d := range dual {
		assert.Less(t, d.A, d.B, "dual[%d] not canonical", i)
		assert.GreaterOrEqual(t, d.A, 0)
		assert.Less(t, d.B, m.NumFaces())
	}

	// Second call returns the cached slice.
	again, err := m.Dual()
	assert.NoError(t, err)
	assert.Equal(t, dual, again)
}

// TestDual_BoundaryEdge verifies that an open surface fails the
// two-faces-per-edge precondition.
func TestDual_BoundaryEdge(t *testing.T) {
	// A single triangle: all three edges are boundary edges (1 face each).
	m, err := mesh.New([]mesh.Face{{0, 1, 2}})
	assert.NoError(t, err)

	_, err = m.Dual()
	assert.ErrorIs(t, err, mesh.ErrNonManifoldEdge)
}

// TestGenus verifies the Euler-characteristic arithmetic on surfaces of
// known genus.
func TestGenus(t *testing.T) {
	// Tetrahedron: χ = 4 − 6 + 4 = 2 → genus 0.
	m, err := mesh.New(tetraFaces)
	assert.NoError(t, err)
	g, err := m.Genus()
	assert.NoError(t, err)
	assert.Equal(t, 0, g)
}

// TestGenus_InvalidTopology verifies rejection of counts that cannot
// belong to a closed triangular manifold.
func TestGenus_InvalidTopology(t *testing.T) {
	// Two triangles sharing one edge: E = 5, and 2·5 is not divisible by 3.
	m, err := mesh.New([]mesh.Face{{0, 1, 2}, {1, 3, 2}})
	assert.NoError(t, err)
	_, err = m.Genus()
	assert.ErrorIs(t, err, mesh.ErrInvalidTopology)

	// The tetrahedron with one face repeated: E = 6 still, so the derived
	// face count 4 disagrees with the actual 5.
	m, err = mesh.New(append([]mesh.Face{{0, 1, 2}}, tetraFaces...))
	assert.NoError(t, err)
	_, err = m.Genus()
	assert.ErrorIs(t, err, mesh.ErrInvalidTopology)
}

package treecotree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/homology/mesh"
	"github.com/katalvlaran/homology/meshbuild"
	"github.com/katalvlaran/homology/treecotree"
)

// partitionIsExact asserts the three classes are disjoint and together
// cover every mesh edge exactly once.
func partitionIsExact(t *testing.T, m *mesh.Mesh, dec *treecotree.Decomposition) {
	t.Helper()

	seen := make(map[mesh.Edge]int, m.NumEdges())
	for _, class := range [][]mesh.Edge{dec.TreeEdges, dec.DualTreeEdges, dec.CotreeEdges} {
		for _, e := range class {
			seen[e]++
		}
	}

	assert.Len(t, seen, m.NumEdges(), "classes must cover the edge set")
	for e, n := range seen {
		assert.Equal(t, 1, n, "edge %v assigned to %d classes", e, n)
		_, ok := m.EdgeID(e)
		assert.True(t, ok, "edge %v is not a mesh edge", e)
	}
}

// TestDecompose_Tetrahedron verifies the genus-0 case: the cotree class
// is empty and that is a valid outcome, not an error.
func TestDecompose_Tetrahedron(t *testing.T) {
	m, err := meshbuild.Tetrahedron()
	assert.NoError(t, err)

	dec, err := treecotree.Decompose(m)
	assert.NoError(t, err)

	// |T| = V−1, dual |T*| = F−1, cotree = E − (V−1) − (F−1) = 2−χ = 0.
	assert.Equal(t, 0, dec.Genus)
	assert.Len(t, dec.TreeEdges, 3)
	assert.Len(t, dec.DualTreeEdges, 3)
	assert.Empty(t, dec.CotreeEdges)
	partitionIsExact(t, m, dec)
}

// TestDecompose_Csaszar verifies the minimal torus: exactly 2 cotree
// edges for genus 1.
func TestDecompose_Csaszar(t *testing.T) {
	m, err := meshbuild.Csaszar()
	assert.NoError(t, err)

	dec, err := treecotree.Decompose(m)
	assert.NoError(t, err)

	assert.Equal(t, 1, dec.Genus)
	assert.Len(t, dec.TreeEdges, 6)       // V−1 = 6
	assert.Len(t, dec.DualTreeEdges, 13)  // F−1 = 13
	assert.Len(t, dec.CotreeEdges, 2)     // 2·genus
	partitionIsExact(t, m, dec)

	// The rooted tree spans all vertices and exposes exactly the tree edges.
	assert.Equal(t, dec.TreeEdges, dec.Tree.Edges())
	assert.Equal(t, 6, dec.Tree.Len())
}

// TestDecompose_TorusGrid verifies a larger genus-1 surface.
func TestDecompose_TorusGrid(t *testing.T) {
	m, err := meshbuild.TorusGrid(4, 5)
	assert.NoError(t, err)

	dec, err := treecotree.Decompose(m)
	assert.NoError(t, err)

	assert.Equal(t, 1, dec.Genus)
	assert.Len(t, dec.TreeEdges, 19)     // V−1, V = 20
	assert.Len(t, dec.DualTreeEdges, 39) // F−1, F = 40
	assert.Len(t, dec.CotreeEdges, 2)
	partitionIsExact(t, m, dec)
}

// TestDecompose_Deterministic verifies that two runs over the same mesh
// yield identical partitions (stable edge order in, stable trees out).
func TestDecompose_Deterministic(t *testing.T) {
	m, err := meshbuild.Csaszar()
	assert.NoError(t, err)

	dec1, err := treecotree.Decompose(m)
	assert.NoError(t, err)
	dec2, err := treecotree.Decompose(m)
	assert.NoError(t, err)

	assert.Equal(t, dec1.TreeEdges, dec2.TreeEdges)
	assert.Equal(t, dec1.DualTreeEdges, dec2.DualTreeEdges)
	assert.Equal(t, dec1.CotreeEdges, dec2.CotreeEdges)
}

// TestDecompose_Disconnected verifies that a two-component mesh is an
// explicit unsupported-input error. Two disjoint Császár tori keep the
// genus arithmetic consistent (χ = 0), so the failure is connectivity.
func TestDecompose_Disconnected(t *testing.T) {
	torus, err := meshbuild.Csaszar()
	assert.NoError(t, err)

	// Duplicate the torus with all vertex ids shifted past the original.
	faces := append([]mesh.Face{}, torus.Faces()...)
	for _, f := range torus.Faces() {
		faces = append(faces, mesh.Face{f[0] + 7, f[1] + 7, f[2] + 7})
	}
	m, err := mesh.New(faces)
	assert.NoError(t, err)

	_, err = treecotree.Decompose(m)
	assert.ErrorIs(t, err, treecotree.ErrDisconnected)
}

// TestDecompose_NegativeGenus verifies that a disconnected pair of
// spheres fails in the genus arithmetic (χ = 4 → genus −1).
func TestDecompose_NegativeGenus(t *testing.T) {
	tetra, err := meshbuild.Tetrahedron()
	assert.NoError(t, err)

	faces := append([]mesh.Face{}, tetra.Faces()...)
	for _, f := range tetra.Faces() {
		faces = append(faces, mesh.Face{f[0] + 4, f[1] + 4, f[2] + 4})
	}
	m, err := mesh.New(faces)
	assert.NoError(t, err)

	_, err = treecotree.Decompose(m)
	assert.ErrorIs(t, err, mesh.ErrInvalidTopology)
}

// TestDecompose_Validation covers the remaining input guards.
func TestDecompose_Validation(t *testing.T) {
	// Nil mesh.
	_, err := treecotree.Decompose(nil)
	assert.ErrorIs(t, err, treecotree.ErrNilMesh)

	// An open surface cannot pass mesh validation.
	open, err := mesh.New([]mesh.Face{{0, 1, 2}, {1, 3, 2}, {0, 2, 4}})
	assert.NoError(t, err)
	_, err = treecotree.Decompose(open)
	assert.Error(t, err)

	// Root out of range.
	m, err := meshbuild.Tetrahedron()
	assert.NoError(t, err)
	_, err = treecotree.Decompose(m, treecotree.WithRoot(99))
	assert.ErrorIs(t, err, treecotree.ErrRootNotFound)
}

// TestDecompose_WithRoot verifies the root option reorients the tree
// without changing which edges span it.
func TestDecompose_WithRoot(t *testing.T) {
	m, err := meshbuild.Csaszar()
	assert.NoError(t, err)

	def, err := treecotree.Decompose(m)
	assert.NoError(t, err)
	alt, err := treecotree.Decompose(m, treecotree.WithRoot(5))
	assert.NoError(t, err)

	assert.Equal(t, 0, def.Tree.Root())
	assert.Equal(t, 5, alt.Tree.Root())
	assert.Equal(t, 0, alt.Tree.Depth(5))
	assert.Equal(t, -1, alt.Tree.Parent(5))

	// Same spanning edge set either way.
	assert.Equal(t, def.TreeEdges, alt.TreeEdges)
}

package homology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/homology"
	"github.com/katalvlaran/homology/mesh"
	"github.com/katalvlaran/homology/meshbuild"
)

// TestBasisOf_Sphere verifies the end-to-end genus-0 scenario: a closed
// tetrahedral mesh yields an empty basis.
func TestBasisOf_Sphere(t *testing.T) {
	m, err := meshbuild.Tetrahedron()
	assert.NoError(t, err)

	cycles, err := homology.BasisOf(m.Faces())
	assert.NoError(t, err)
	assert.Empty(t, cycles)
}

// TestBasisOf_Torus verifies the end-to-end genus-1 scenario: the
// minimal triangulated torus yields exactly 2 simple closed walks.
func TestBasisOf_Torus(t *testing.T) {
	m, err := meshbuild.Csaszar()
	assert.NoError(t, err)

	cycles, err := homology.BasisOf(m.Faces())
	assert.NoError(t, err)
	assert.Len(t, cycles, 2)
	for i, c := range cycles {
		assert.True(t, c.Closed(), "cycle %d must be a closed walk", i)
		assert.GreaterOrEqual(t, len(c), 3)
	}
}

// TestBasisOf_InvalidInput verifies validation errors surface unchanged.
func TestBasisOf_InvalidInput(t *testing.T) {
	// Malformed face.
	_, err := homology.BasisOf([]mesh.Face{{0, 0, 1}})
	assert.ErrorIs(t, err, mesh.ErrMalformedFace)

	// Open surface: a lone triangle has three boundary edges. The genus
	// arithmetic rejects it before the dual build gets a say.
	_, err = homology.BasisOf([]mesh.Face{{0, 1, 2}})
	assert.ErrorIs(t, err, mesh.ErrInvalidTopology)
}

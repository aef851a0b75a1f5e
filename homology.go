// Package homology: the one-call entry point.
package homology

import (
	"github.com/katalvlaran/homology/basis"
	"github.com/katalvlaran/homology/mesh"
	"github.com/katalvlaran/homology/treecotree"
)

// BasisOf runs the full pipeline on a face table: mesh construction,
// tree–cotree decomposition, cycle extraction. It returns 2·genus cycles
// (an empty slice for sphere-like input) or the first validation error.
//
// All intermediate structures are local to the call; there is no hidden
// process-wide state. Callers needing the partition or the genus should
// use mesh.New and treecotree.Decompose directly.
func BasisOf(faces []mesh.Face) ([]basis.Cycle, error) {
	m, err := mesh.New(faces)
	if err != nil {
		return nil, err
	}

	dec, err := treecotree.Decompose(m)
	if err != nil {
		return nil, err
	}

	return basis.Cycles(dec)
}

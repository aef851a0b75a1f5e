// Package mesh: genus via the Euler characteristic.
package mesh

import "fmt"

// Genus computes the genus g of the surface from its vertex and edge
// counts, using the Euler characteristic of a closed triangular manifold:
//
//	F = 2E/3          (each triangle has 3 edges, each edge 2 faces)
//	χ = V − E + F = 2 − 2g
//
// Both divisions must be exact and the derived F must match the actual
// face count; otherwise the input cannot be a closed triangular manifold
// and a wrapped ErrInvalidTopology is returned instead of a truncated
// result. A sphere-like mesh yields g = 0.
func (m *Mesh) Genus() (int, error) {
	v := m.numVertices
	e := m.NumEdges()

	// 1. F = 2E/3 must be an integer.
	if (2*e)%3 != 0 {
		return 0, fmt.Errorf("mesh: edge count %d gives non-integer face count: %w", e, ErrInvalidTopology)
	}
	f := (2 * e) / 3

	// 2. The derived face count must agree with the face table.
	if f != m.NumFaces() {
		return 0, fmt.Errorf("mesh: derived face count %d != actual %d: %w", f, m.NumFaces(), ErrInvalidTopology)
	}

	// 3. χ = 2 − 2g must be even and give g ≥ 0.
	chi := v - e + f
	if (2-chi)%2 != 0 {
		return 0, fmt.Errorf("mesh: odd Euler characteristic %d: %w", chi, ErrInvalidTopology)
	}
	g := (2 - chi) / 2
	if g < 0 {
		return 0, fmt.Errorf("mesh: negative genus from χ=%d: %w", chi, ErrInvalidTopology)
	}

	return g, nil
}

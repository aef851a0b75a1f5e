// Package mesh: dual (face-adjacency) edge list.
//
// Dual maps each primal Edge to the pair of faces sharing it. Rather
// than scanning all faces per edge (O(E·F)), a vertex→incident-faces
// index is built once and the two incident lists of an edge's endpoints
// are intersected, which is near O(E) amortized on a manifold mesh.
package mesh

import "fmt"

// Dual returns the dual edge list, position-aligned with Edges():
// Dual()[i] holds the two face ids incident to Edges()[i].
//
// The list is built on first call and cached; subsequent calls return
// the same slice (or the same error). Callers must not mutate the result.
//
// A closed manifold triangular mesh has exactly 2 incident faces per
// edge; any other count returns a wrapped ErrNonManifoldEdge naming the
// edge and the observed count.
func (m *Mesh) Dual() ([]DualEdge, error) {
	m.dualOnce.Do(func() {
		m.dual, m.dualErr = m.buildDual()
	})

	return m.dual, m.dualErr
}

// buildDual performs the actual index-and-intersect construction.
func (m *Mesh) buildDual() ([]DualEdge, error) {
	// 1. Index: vertex id → ids of faces touching it, in face-id order.
	incident := make([][]int, m.numVertices)
	for fi, f := range m.faces {
		for _, v := range f {
			incident[v] = append(incident[v], fi)
		}
	}

	// 2. For each edge (u, v), the incident faces are exactly the faces
	//    present in both endpoint lists. Both lists are ascending (faces
	//    were appended in face-id order), so a two-pointer merge suffices.
	dual := make([]DualEdge, len(m.edges))
	var shared [4]int // more than 2 matches already proves non-manifold
	for ei, e := range m.edges {
		fu, fv := incident[e.U], incident[e.V]
		count := 0
		i, j := 0, 0
		for i < len(fu) && j < len(fv) {
			switch {
			case fu[i] < fv[j]:
				i++
			case fu[i] > fv[j]:
				j++
			default:
				if count < len(shared) {
					shared[count] = fu[i]
				}
				count++
				i++
				j++
			}
		}

		// Exactly 2 incident faces, or the mesh is not a closed manifold.
		if count != 2 {
			return nil, fmt.Errorf("mesh: edge %d (%d,%d) incident to %d faces: %w",
				ei, e.U, e.V, count, ErrNonManifoldEdge)
		}

		// Face ids arrive ascending from the merge, so the pair is canonical.
		dual[ei] = DualEdge{A: shared[0], B: shared[1]}
	}

	return dual, nil
}

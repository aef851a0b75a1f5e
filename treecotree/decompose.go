// Package treecotree: the decomposition pipeline itself.
package treecotree

import (
	"fmt"

	"github.com/katalvlaran/homology/mesh"
)

// Decompose partitions the mesh edge set into tree, dual-tree and cotree
// classes.
//
// Steps:
//  1. Validate the mesh: genus arithmetic (mesh.ErrInvalidTopology) and
//     dual adjacency (mesh.ErrNonManifoldEdge) must both succeed.
//  2. Primal spanning tree T: Kruskal over edges in ascending edge-id
//     order. Weights are irrelevant on a uniform-weight graph, so no
//     sorting pass is needed; the edge-id order is the deterministic
//     tie-break. Fewer than |V|−1 accepted edges → ErrDisconnected.
//  3. Dual spanning tree T*: the same union-find pass over the dual
//     edges whose primal edge is not in T. Fewer than |F|−1 accepted
//     edges → ErrDisconnected.
//  4. Partition: in T / dual in T* / neither. The cotree class must
//     number exactly 2·genus, or the mesh is inconsistent with its own
//     counts (wrapped mesh.ErrInvalidTopology).
//
// A genus-0 mesh yields an empty cotree class; that is a valid outcome,
// not an error.
//
// Complexity: O(E · α(V)) past the mesh's own derived data. Memory: O(V + E).
func Decompose(m *mesh.Mesh, opts ...Option) (*Decomposition, error) {
	// 1. Validate input mesh.
	if m == nil {
		return nil, ErrNilMesh
	}

	genus, err := m.Genus()
	if err != nil {
		return nil, fmt.Errorf("treecotree: %w", err)
	}

	dual, err := m.Dual()
	if err != nil {
		return nil, fmt.Errorf("treecotree: %w", err)
	}

	// Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.Root < 0 || dopts.Root >= m.NumVertices() {
		return nil, fmt.Errorf("treecotree: root %d: %w", dopts.Root, ErrRootNotFound)
	}

	edges := m.Edges()

	// 2. Primal spanning tree over vertex ids.
	primal := newDSU(m.NumVertices())
	inTree := make([]bool, len(edges))
	treeCount := 0
	for i, e := range edges {
		if primal.union(e.U, e.V) {
			inTree[i] = true
			treeCount++
		}
	}
	if treeCount != m.NumVertices()-1 {
		return nil, fmt.Errorf("treecotree: primal graph has %d components: %w",
			m.NumVertices()-treeCount, ErrDisconnected)
	}

	// 3. Dual spanning tree over face ids, restricted to non-tree edges.
	facial := newDSU(m.NumFaces())
	inDualTree := make([]bool, len(edges))
	dualCount := 0
	for i := range edges {
		if inTree[i] {
			continue
		}
		if facial.union(dual[i].A, dual[i].B) {
			inDualTree[i] = true
			dualCount++
		}
	}
	if dualCount != m.NumFaces()-1 {
		return nil, fmt.Errorf("treecotree: dual graph has %d components: %w",
			m.NumFaces()-dualCount, ErrDisconnected)
	}

	// 4. Partition in edge-id order; the classes are disjoint by construction.
	dec := &Decomposition{
		Genus:         genus,
		TreeEdges:     make([]mesh.Edge, 0, treeCount),
		DualTreeEdges: make([]mesh.Edge, 0, dualCount),
		CotreeEdges:   make([]mesh.Edge, 0, len(edges)-treeCount-dualCount),
	}
	for i, e := range edges {
		switch {
		case inTree[i]:
			dec.TreeEdges = append(dec.TreeEdges, e)
		case inDualTree[i]:
			dec.DualTreeEdges = append(dec.DualTreeEdges, e)
		default:
			dec.CotreeEdges = append(dec.CotreeEdges, e)
		}
	}

	// The tree–cotree identity: everything outside both trees numbers 2g.
	if len(dec.CotreeEdges) != 2*genus {
		return nil, fmt.Errorf("treecotree: %d cotree edges for genus %d: %w",
			len(dec.CotreeEdges), genus, mesh.ErrInvalidTopology)
	}

	// 5. Root the spanning tree for the cycle-extraction phase.
	dec.Tree = newTree(m.NumVertices(), dec.TreeEdges, dopts.Root)

	return dec, nil
}

// Package treecotree implements the classical tree–cotree decomposition
// of a closed triangulated surface.
//
// What & Why
//
//   - Take the mesh's primal graph (vertices + edges) and its dual graph
//     (faces + face-adjacency edges). Compute a spanning tree T of the
//     primal graph, then a spanning tree T* of the dual graph restricted
//     to edges whose primal counterpart is outside T. Every edge now
//     falls into exactly one of three classes: in T, dual in T*, or in
//     neither. The "neither" class — the cotree — always has exactly
//     2g members on a genus-g surface, and each member induces one
//     independent homology generator.
//
//   - Why union-find: spanning trees on a uniform-weight graph need no
//     ordering by weight, so a single pass over the edges in ascending
//     edge-id order with a disjoint-set structure (path compression +
//     union by rank) builds each tree in O(E·α) with deterministic
//     results. The same dsu runs twice, once over vertex ids and once
//     over face ids.
//
// Determinism
//
//   - mesh.Edges() is sorted ascending by canonical (U, V); Decompose
//     consumes edges in that order, so for a given face table the
//     partition — and the rooted Tree — are identical across runs.
//
// The spanning Tree
//
//   - Decomposition.Tree carries parent/depth pointers from a sorted
//     BFS at the chosen root (WithRoot, default vertex 0), plus the only
//     mutation surface of the whole pipeline: Insert/Remove of a single
//     extra edge, used by package basis to read off induced cycles.
//     Structural edges cannot be removed, so a matched Insert/Remove
//     always restores the tree exactly.
//
// Error Conditions
//
//	- ErrNilMesh             : Decompose(nil).
//	- ErrDisconnected        : primal or dual graph has > 1 component;
//	                           multi-component meshes are unsupported input.
//	- ErrRootNotFound        : WithRoot vertex out of range.
//	- mesh.ErrInvalidTopology: genus arithmetic fails, or the cotree class
//	                           does not number exactly 2·genus.
//	- mesh.ErrNonManifoldEdge: surfaced from the dual adjacency build.
//
// Complexity: O(E·α(V)) for the two spanning passes, O(V + E) memory.
package treecotree

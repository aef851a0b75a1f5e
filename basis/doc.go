// Package basis extracts a homology basis — 2g independent
// non-contractible cycles — from a tree–cotree decomposition.
//
// What & Why
//
//   - After treecotree.Decompose, every cotree edge (u,v) is absent from
//     both the primal spanning tree T and the dual spanning tree T*.
//     Putting (u,v) back into T creates exactly one cycle: the tree path
//     from u to v plus the edge itself. These 2g cycles generate the
//     first homology group of the surface; they are independent because
//     each contains its own cotree edge and no other (the remainder of
//     each cycle runs through tree edges only).
//
//   - The basis is topologically valid, not geometrically shortest, and
//     not symplectically paired — which cycles appear depends on the
//     spanning-tree choice made upstream.
//
// Discipline
//
//   - Cycles mutates the one shared spanning tree in strictly scoped
//     rounds: Insert cotree edge, walk the induced cycle, Remove the
//     edge under defer. A discovery error therefore cannot leak a
//     mutated tree into the next round, and when Cycles returns the tree
//     has exactly its original edge set.
//
//   - Extraction is sequential: each round depends on the restored tree
//     from the previous one, and the per-round work is a single tree
//     path walk, so there is nothing worth parallelizing.
//
// Error Conditions
//
//	- ErrNilDecomposition : Cycles(nil) or a decomposition without a tree.
//	- ErrOpenWalk         : a discovered walk shorter than 3 steps or not
//	                        closed; indicates a corrupted decomposition.
//	- context errors      : WithContext cancellation between rounds.
//
// Complexity: O(g·V) time, O(V) transient memory per round.
package basis

// Package mesh models the connectivity of a closed, triangulated,
// manifold surface and derives its basic topological data.
//
// What & Why
//
//   - A triangle mesh, viewed combinatorially, is just a face table: an
//     ordered list of vertex-index triples. Everything the homology
//     pipeline needs — the unique undirected edge set, the face-adjacency
//     (dual) pairing, and the genus — derives from that table alone.
//     Vertex coordinates play no role in topology and are never stored here.
//
//   - Edge ids are positional: Edges() is sorted ascending by canonical
//     (U, V), and DualEdge i is the dual of Edge i. Keeping both lists
//     inside one immutable Mesh makes the positional correlation a
//     structural guarantee rather than a convention to remember.
//
// Construction
//
//   - New(faces, opts...) validates every face (3 distinct, non-negative
//     vertex ids) and freezes the deduplicated, sorted edge set.
//
//   - Dual() builds the face-adjacency list lazily, once, via a
//     vertex→incident-faces index plus a two-pointer intersection per
//     edge — near O(E) amortized instead of the naive O(E·F) face scan.
//
//   - Genus() applies the Euler characteristic χ = V − E + F = 2 − 2g of
//     closed triangular manifolds, rejecting inputs whose counts cannot
//     satisfy it exactly.
//
// Error Conditions
//
//	Validation failures are hard, non-retryable: each one means the input
//	violates the closed-manifold precondition the downstream algorithm
//	depends on.
//
//	- ErrNoFaces          : New received an empty face table.
//	- ErrMalformedFace    : a face without exactly 3 distinct vertex ids.
//	- ErrNonManifoldEdge  : an edge incident to ≠ 2 faces (boundary or
//	                        non-manifold configuration).
//	- ErrInvalidTopology  : counts inconsistent with any closed triangular
//	                        manifold (non-integer F, χ mismatch).
//
// Complexity: New is O(F log E); Dual is O(V + F + E) amortized; Genus is O(1).
//
// See package treecotree for the decomposition consuming this model, and
// package basis for the homology generators.
package mesh

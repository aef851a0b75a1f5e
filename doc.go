// Package homology computes a homology basis — 2g independent
// non-contractible cycles — on closed, genus-g triangulated surfaces,
// using the classical tree–cotree decomposition.
//
// 🚀 What is homology?
//
//	A small, deterministic library that takes nothing but a triangle
//	face table and produces the generators of the surface's first
//	homology group:
//		• mesh/       — connectivity model: unique edge set, dual (face
//		                adjacency) pairing, Euler-characteristic genus
//		• treecotree/ — primal + dual spanning trees via union-find and
//		                the tree / dual-tree / cotree edge partition
//		• basis/      — one cycle per cotree edge, extracted from the
//		                spanning tree with exact add/read/remove scoping
//		• meshbuild/  — deterministic closed fixtures: Platonic shells,
//		                the 7-vertex Császár torus, wrapped torus grids
//		• meshio/     — OFF connectivity loader
//		• cmd/        — a load-and-print command-line front end
//
// ✨ Why choose it?
//
//   - Pure topology – vertex coordinates never enter the computation
//   - Deterministic – sorted canonical edge ids, stable spanning trees,
//     identical partitions run after run
//   - Hard preconditions, loud failures – malformed faces, boundary or
//     non-manifold edges and inconsistent counts abort with sentinel
//     errors instead of producing a wrong-sized basis
//
// Quick example:
//
//	m, _ := meshbuild.Csaszar()            // V=7, E=21, F=14 torus
//	cycles, _ := homology.BasisOf(m.Faces())
//	// len(cycles) == 2: one basis cycle per handle direction
//
// The basis is topologically valid, not geometrically shortest; meshes
// with boundary, non-manifold edges, or multiple components are
// rejected. See each package's doc.go for contracts and complexity.
//
//	go get github.com/katalvlaran/homology
package homology

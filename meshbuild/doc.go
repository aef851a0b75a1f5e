// Package meshbuild provides deterministic constructors for small closed
// triangle meshes of known topology — the fixtures the rest of the
// module is tested and demonstrated against.
//
// Genus 0 (sphere-like): Tetrahedron, Octahedron, Icosahedron.
// Genus 1 (torus): Csaszar (the minimal 7-vertex triangulation) and
// TorusGrid(rows, cols) for arbitrarily large wrapped grids.
//
// Every constructor yields a mesh satisfying the closed-manifold
// preconditions of treecotree.Decompose: each edge shared by exactly two
// faces, one connected component, exact Euler arithmetic.
package meshbuild

// SPDX-License-Identifier: MIT
// Package: homology/meshbuild
//
// variants.go — canonical face tables for the fixed closed surfaces.
//
// Design:
//   • Single source of truth for the fixed fixtures (tetrahedron,
//     octahedron, icosahedron, Császár torus).
//   • Face tables are literal, immutable, and pre-oriented; builders in
//     meshbuild.go only copy them into a mesh.Mesh.
//
// Determinism:
//   • Face ids follow the literal order below; edge ids follow from
//     mesh.New's sorted canonical extraction. Never mutate these tables —
//     they are part of the public contract.

package meshbuild

import "github.com/katalvlaran/homology/mesh"

// tetrahedronFaces is the boundary of the 3-simplex: V=4, E=6, F=4, genus 0.
var tetrahedronFaces = []mesh.Face{
	{0, 1, 2},
	{0, 3, 1},
	{0, 2, 3},
	{1, 3, 2},
}

// octahedronFaces is the regular octahedron shell: V=6, E=12, F=8, genus 0.
// Vertex 0 is the top apex, 1..4 the equator, 5 the bottom apex.
var octahedronFaces = []mesh.Face{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
	{5, 2, 1}, {5, 3, 2}, {5, 4, 3}, {5, 1, 4},
}

// icosahedronFaces is the regular icosahedron shell: V=12, E=30, F=20, genus 0.
// Vertex 0 caps the top fan, 11 the bottom fan, 1..10 the two middle rings.
var icosahedronFaces = []mesh.Face{
	// top fan
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
	// upper/lower middle strip
	{1, 5, 6}, {1, 6, 7}, {1, 7, 2}, {2, 7, 8}, {2, 8, 3},
	{3, 8, 9}, {3, 9, 4}, {4, 9, 10}, {4, 10, 5}, {5, 10, 6},
	// bottom fan
	{6, 10, 11}, {6, 11, 7}, {7, 11, 8}, {8, 11, 9}, {9, 11, 10},
}

// csaszarFaces is the 7-vertex triangulated torus on the complete graph
// K7: V=7, E=21, F=14, χ=0, genus 1. The cyclic scheme takes, for every
// i mod 7, the triangles {i, i+1, i+3} and {i, i+2, i+3}; every pair of
// vertices is then an edge of exactly two triangles.
var csaszarFaces = buildCsaszarFaces()

func buildCsaszarFaces() []mesh.Face {
	faces := make([]mesh.Face, 0, 14)
	for i := 0; i < 7; i++ {
		faces = append(faces,
			mesh.Face{i, (i + 1) % 7, (i + 3) % 7},
			mesh.Face{i, (i + 2) % 7, (i + 3) % 7},
		)
	}

	return faces
}

// SPDX-License-Identifier: MIT
// Package: homology/meshbuild
//
// meshbuild.go — constructors for deterministic closed test surfaces.
//
// Contract:
//   • Every constructor returns a valid closed, connected, manifold
//     triangle mesh with the advertised counts and genus.
//   • Construction is fully deterministic: fixed face tables for the
//     canonical solids, index arithmetic for the torus grid.
//   • TorusGrid(rows, cols) requires rows ≥ 3 and cols ≥ 3; smaller grids
//     would collapse wrap-around edges into duplicates → ErrGridTooSmall.

package meshbuild

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/homology/mesh"
)

// ErrGridTooSmall indicates TorusGrid dimensions below 3×3, where the
// wrap-around triangulation degenerates (duplicate vertices per face).
var ErrGridTooSmall = errors.New("meshbuild: torus grid needs at least 3 rows and 3 columns")

// Tetrahedron returns the boundary of the 3-simplex:
// V=4, E=6, F=4, genus 0.
func Tetrahedron() (*mesh.Mesh, error) {
	return mesh.New(tetrahedronFaces)
}

// Octahedron returns the regular octahedron shell:
// V=6, E=12, F=8, genus 0.
func Octahedron() (*mesh.Mesh, error) {
	return mesh.New(octahedronFaces)
}

// Icosahedron returns the regular icosahedron shell:
// V=12, E=30, F=20, genus 0.
func Icosahedron() (*mesh.Mesh, error) {
	return mesh.New(icosahedronFaces)
}

// Csaszar returns the minimal 7-vertex triangulated torus (the Császár
// polyhedron's connectivity, the complete graph K7):
// V=7, E=21, F=14, genus 1.
func Csaszar() (*mesh.Mesh, error) {
	return mesh.New(csaszarFaces)
}

// TorusGrid returns a flat torus: a rows×cols vertex grid with both
// directions wrapped, each cell split into two triangles.
// V=rows·cols, E=3·rows·cols, F=2·rows·cols, genus 1.
func TorusGrid(rows, cols int) (*mesh.Mesh, error) {
	// 1. Guard the degenerate dimensions.
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("meshbuild: TorusGrid(%d,%d): %w", rows, cols, ErrGridTooSmall)
	}

	// 2. Vertex (r, c) lives at index r·cols + c; all arithmetic wraps.
	at := func(r, c int) int {
		return (r%rows)*cols + (c % cols)
	}

	// 3. Two triangles per cell, emitted row-major for stable face ids.
	faces := make([]mesh.Face, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			faces = append(faces,
				mesh.Face{at(r, c), at(r+1, c), at(r, c+1)},
				mesh.Face{at(r+1, c), at(r+1, c+1), at(r, c+1)},
			)
		}
	}

	return mesh.New(faces)
}

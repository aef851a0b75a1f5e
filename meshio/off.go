// Package meshio loads mesh connectivity from OFF files.
//
// Only the connectivity matters to the homology pipeline; vertex
// coordinates are parsed and returned for callers that want them, but
// the core never consumes more than the vertex count.
package meshio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/homology/mesh"
)

// ErrFormat indicates an input that is not a valid triangle-mesh OFF
// document. The wrapped message names the offending line.
var ErrFormat = errors.New("meshio: malformed OFF document")

// Vec3 is one vertex coordinate triple from the OFF coordinate table.
type Vec3 [3]float64

// LoadOFF reads the file at path and parses it with ParseOFF.
func LoadOFF(path string) (*mesh.Mesh, []Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "meshio: open %s", path)
	}
	defer f.Close()

	m, coords, err := ParseOFF(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "meshio: parse %s", path)
	}

	return m, coords, nil
}

// ParseOFF parses an OFF document:
//
//	OFF
//	<numVertices> <numFaces> <numEdges>
//	x y z                   (numVertices lines)
//	3 a b c                 (numFaces lines, triangles only)
//
// Blank lines and '#' comments are tolerated anywhere. The edge count in
// the header is advisory and ignored, as most writers leave it 0. Faces
// with a vertex count other than 3 fail with ErrFormat; connectivity
// errors (malformed faces, etc.) surface from mesh.New.
func ParseOFF(r io.Reader) (*mesh.Mesh, []Vec3, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// next yields the fields of the next non-blank, non-comment line.
	lineNo := 0
	next := func() ([]string, error) {
		for sc.Scan() {
			lineNo++
			line := sc.Text()
			if i := strings.IndexByte(line, '#'); i >= 0 {
				line = line[:i]
			}
			fields := strings.Fields(line)
			if len(fields) > 0 {
				return fields, nil
			}
		}
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "meshio: read")
		}

		return nil, errors.Wrapf(ErrFormat, "unexpected end of input after line %d", lineNo)
	}

	// 1. Magic.
	fields, err := next()
	if err != nil {
		return nil, nil, err
	}
	if len(fields) != 1 || fields[0] != "OFF" {
		return nil, nil, errors.Wrapf(ErrFormat, "line %d: expected OFF header", lineNo)
	}

	// 2. Counts: V F E (E advisory).
	fields, err = next()
	if err != nil {
		return nil, nil, err
	}
	if len(fields) != 3 {
		return nil, nil, errors.Wrapf(ErrFormat, "line %d: expected 3 counts", lineNo)
	}
	numV, errV := strconv.Atoi(fields[0])
	numF, errF := strconv.Atoi(fields[1])
	if errV != nil || errF != nil || numV < 0 || numF < 0 {
		return nil, nil, errors.Wrapf(ErrFormat, "line %d: bad counts %q", lineNo, fields)
	}

	// 3. Coordinate table.
	coords := make([]Vec3, numV)
	for i := 0; i < numV; i++ {
		if fields, err = next(); err != nil {
			return nil, nil, err
		}
		if len(fields) < 3 {
			return nil, nil, errors.Wrapf(ErrFormat, "line %d: expected 3 coordinates", lineNo)
		}
		for j := 0; j < 3; j++ {
			coords[i][j], err = strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, nil, errors.Wrapf(ErrFormat, "line %d: bad coordinate %q", lineNo, fields[j])
			}
		}
	}

	// 4. Face table: triangles only.
	faces := make([]mesh.Face, numF)
	for i := 0; i < numF; i++ {
		if fields, err = next(); err != nil {
			return nil, nil, err
		}
		n, cerr := strconv.Atoi(fields[0])
		if cerr != nil || n != 3 || len(fields) < 4 {
			return nil, nil, errors.Wrapf(ErrFormat, "line %d: expected a triangle face", lineNo)
		}
		for j := 0; j < 3; j++ {
			faces[i][j], err = strconv.Atoi(fields[j+1])
			if err != nil || faces[i][j] < 0 || faces[i][j] >= numV {
				return nil, nil, errors.Wrapf(ErrFormat, "line %d: bad vertex index %q", lineNo, fields[j+1])
			}
		}
	}

	// 5. Hand connectivity validation to the mesh core; the coordinate
	//    table may legitimately carry vertices no face references.
	m, err := mesh.New(faces, mesh.WithVertexCount(numV))
	if err != nil {
		return nil, nil, err
	}

	return m, coords, nil
}

package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrFile                 = errors.New("cannot read mesh file")
	ErrUnsupportedDirective = errors.New("unsupported directive")
	ErrDegeneratePolygon    = errors.New("degenerate polygon: fewer than 3 vertices")
	ErrMalformedVertex      = errors.New("malformed vertex: expected 3 floats")
	ErrInvalidIndex         = errors.New("invalid vertex index")
	ErrIndexOutOfRange      = errors.New("vertex index out of range")
)

// ignoredPrefixes are directives that are recognized but carry nothing the
// viewer uses (materials, normals, texture coordinates, grouping).
var ignoredPrefixes = []string{"#", "vt ", "vn ", "usemtl ", "s ", "mtllib ", "o ", "g "}

// ParseError reports the line that stopped an OBJ parse.
type ParseError struct {
	Line int    // 1-based line number, 0 when not tied to a line
	Text string // offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OBJ holds a triangulated mesh ready for upload.
type OBJ struct {
	// Positions holds x, y, z per vertex in file order.
	Positions []float32
	// Indices holds 0-based triangle corners; len is a multiple of 3.
	Indices []uint32

	faces   int
	ignored int
}

// OBJStats summarizes a parsed mesh.
type OBJStats struct {
	Vertices  int
	Faces     int
	Triangles int
	Ignored   int
}

// VertexCount returns the number of xyz positions.
func (o *OBJ) VertexCount() int {
	return len(o.Positions) / 3
}

// Stats returns vertex, face, and triangle counts.
func (o *OBJ) Stats() OBJStats {
	return OBJStats{
		Vertices:  o.VertexCount(),
		Faces:     o.faces,
		Triangles: len(o.Indices) / 3,
		Ignored:   o.ignored,
	}
}

// ParseOBJ parses an OBJ mesh from raw bytes.
func ParseOBJ(data []byte) (*OBJ, error) {
	return ParseOBJReader(bytes.NewReader(data))
}

// ParseOBJFile parses an OBJ mesh from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}
	defer f.Close()

	obj, err := ParseOBJReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return obj, nil
}

// ParseOBJReader parses an OBJ mesh line by line. Any malformed line aborts
// the parse; no partial mesh is ever returned.
func ParseOBJReader(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if err := obj.parseLine(line); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}

	// Faces may reference vertices declared later in the file, so bounds
	// are only checked once every position is known.
	count := uint32(obj.VertexCount())
	for _, idx := range obj.Indices {
		if idx >= count {
			return nil, &ParseError{
				Err: fmt.Errorf("%w: index %d, %d vertices", ErrIndexOutOfRange, idx+1, count),
			}
		}
	}

	return obj, nil
}

func (o *OBJ) parseLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	// Trailing whitespace was trimmed; pad so a bare "g" still matches "g ".
	padded := line + " "
	switch {
	case strings.HasPrefix(padded, "v "):
		return o.parseVertex(padded[2:])
	case strings.HasPrefix(padded, "f "):
		return o.parseFace(padded[2:])
	}

	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(padded, prefix) {
			o.ignored++
			return nil
		}
	}
	return ErrUnsupportedDirective
}

func (o *OBJ) parseVertex(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return fmt.Errorf("%w: got %d values", ErrMalformedVertex, len(fields))
	}

	var xyz [3]float32
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %q", ErrMalformedVertex, field)
		}
		xyz[i] = float32(v)
	}

	o.Positions = append(o.Positions, xyz[:]...)
	return nil
}

func (o *OBJ) parseFace(args string) error {
	fields := strings.Fields(args)
	polygon := make([]uint32, 0, len(fields))

	for _, field := range fields {
		// v, v/vt, v//vn, v/vt/vn: only the position index is used
		ref, _, _ := strings.Cut(field, "/")
		idx, err := strconv.ParseUint(ref, 10, 32)
		if err != nil || idx == 0 {
			return fmt.Errorf("%w: %q", ErrInvalidIndex, field)
		}
		polygon = append(polygon, uint32(idx))
	}

	tris, err := TriangulateFan(polygon)
	if err != nil {
		return err
	}

	o.Indices = append(o.Indices, tris...)
	o.faces++
	return nil
}

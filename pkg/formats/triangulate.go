package formats

// TriangulateFan splits a polygon of 1-based vertex references into
// triangles sharing its first vertex: (p0,p1,p2), (p0,p2,p3), ...,
// (p0,p[n-2],p[n-1]). The result holds 3*(n-2) 0-based indices.
func TriangulateFan(polygon []uint32) ([]uint32, error) {
	n := len(polygon)
	if n < 3 {
		return nil, ErrDegeneratePolygon
	}

	out := make([]uint32, 0, 3*(n-2))
	for i := 1; i < n-1; i++ {
		out = append(out, polygon[0]-1, polygon[i]-1, polygon[i+1]-1)
	}
	return out, nil
}

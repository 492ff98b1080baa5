package model

import (
	"errors"
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// Fitting errors.
var (
	ErrEmptyModel = errors.New("model has no vertices")
	ErrNonFinite  = errors.New("model has a non-finite coordinate")
)

// ComputeBounds scans xyz triples for the per-axis min and max.
func ComputeBounds(positions []float32) (Bounds, error) {
	if len(positions) < 3 {
		return Bounds{}, ErrEmptyModel
	}

	for _, v := range positions {
		f := float64(v)
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return Bounds{}, ErrNonFinite
		}
	}

	first := math.Vec3{X: positions[0], Y: positions[1], Z: positions[2]}
	bounds := Bounds{Min: first, Max: first}

	for i := 3; i+2 < len(positions); i += 3 {
		p := math.Vec3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}
		bounds.Min = bounds.Min.Min(p)
		bounds.Max = bounds.Max.Max(p)
	}

	return bounds, nil
}

// NormalizeMatrix returns scale(1/absMax) * translate(-center): the model is
// moved so its bounding-box center sits at the origin, then uniformly scaled
// so its largest half-extent becomes 1.
func NormalizeMatrix(positions []float32) (math.Mat4, error) {
	bounds, err := ComputeBounds(positions)
	if err != nil {
		return math.Identity(), err
	}
	return bounds.NormalizeMatrix(), nil
}

// NormalizeMatrix builds the fitting matrix for b. A box collapsed to a
// single point is only translated.
func (b Bounds) NormalizeMatrix() math.Mat4 {
	center := b.Center()
	half := b.HalfExtent()

	absMax := half.X
	for _, v := range []float32{half.Y, half.Z} {
		if gomath.Abs(float64(v)) > gomath.Abs(float64(absMax)) {
			absMax = v
		}
	}

	scale := float32(1)
	if absMax != 0 {
		scale = 1 / float32(gomath.Abs(float64(absMax)))
	}

	return math.ScaleUniform(scale).Mul(math.Translate(-center.X, -center.Y, -center.Z))
}

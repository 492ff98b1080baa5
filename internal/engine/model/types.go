// Package model turns a parsed mesh into the static data the renderer
// consumes: buffers, bounds, and the normalizing model matrix.
package model

import (
	"github.com/Faultbox/meshview/pkg/math"
)

// Model holds the static mesh data computed once at load time.
type Model struct {
	Path      string
	Positions []float32
	Indices   []uint32
	Bounds    Bounds
	// Matrix centers the model at the origin and scales its longest
	// half-extent to 1.
	Matrix math.Mat4
}

// Bounds holds the axis-aligned bounding box of the model.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// HalfExtent returns half the box size per axis.
func (b Bounds) HalfExtent() math.Vec3 {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Corners returns the eight box corners.
func (b Bounds) Corners() [8]math.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]math.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
	}
}

package model

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/formats"
)

// Load parses the mesh at path and fits it into the [-1,1] viewing volume.
// Any parse or fit failure is returned as is; nothing is partially loaded.
func Load(path string) (*Model, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, err
	}

	bounds, err := ComputeBounds(obj.Positions)
	if err != nil {
		return nil, fmt.Errorf("fitting %s: %w", path, err)
	}

	stats := obj.Stats()
	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("vertices", stats.Vertices),
		zap.Int("faces", stats.Faces),
		zap.Int("triangles", stats.Triangles),
	)
	logger.Debug("model bounds",
		zap.Float32s("min", []float32{bounds.Min.X, bounds.Min.Y, bounds.Min.Z}),
		zap.Float32s("max", []float32{bounds.Max.X, bounds.Max.Y, bounds.Max.Z}),
		zap.Int("ignored_directives", stats.Ignored),
	)

	return &Model{
		Path:      path,
		Positions: obj.Positions,
		Indices:   obj.Indices,
		Bounds:    bounds,
		Matrix:    bounds.NormalizeMatrix(),
	}, nil
}

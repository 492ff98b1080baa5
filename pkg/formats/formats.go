// Package formats provides parsers for the mesh description files the
// viewer loads.
package formats

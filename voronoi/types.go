// Package voronoi defines the Diagram and Cell types, construction
// options, and sentinel errors for the dual-graph constructor.
package voronoi

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
)

// Sentinel errors for diagram construction.
var (
	// ErrNilTriangulation indicates FromDelaunay received a nil
	// triangulation.
	ErrNilTriangulation = errors.New("voronoi: triangulation is nil")

	// ErrTooFewSites indicates the source triangulation holds fewer
	// than two sites, so no diagram can be derived.
	ErrTooFewSites = errors.New("voronoi: need at least two sites")
)

// Bounds is an axis-aligned clipping rectangle.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Option configures diagram construction. Use with FromDelaunay.
type Option func(*builder)

// WithEps returns an Option overriding the tolerance used for vertex
// deduplication, incidence tests and neighbor detection. Non-positive
// values are ignored; the default geom.DefaultEps is retained.
func WithEps(eps float64) Option {
	return func(b *builder) {
		if eps > 0 {
			b.eps = eps
		}
	}
}

// WithBounds returns an Option that clips every cell polygon against
// the rectangle [minX, maxX] × [minY, maxY] at construction time,
// using Sutherland–Hodgman clipping in the fixed half-plane order
// left, top, right, bottom.
func WithBounds(minX, minY, maxX, maxY float64) Option {
	return func(b *builder) {
		b.bounds = &Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	}
}

// builder carries construction-time options.
type builder struct {
	eps    float64
	bounds *Bounds
}

// Cell is one Voronoi region: its generating site, the polygon
// vertices ordered counter-clockwise around the site, and the sites of
// adjacent cells. Hull-site cells are bounded truncations (see the
// package documentation).
type Cell struct {
	Site      geom.Point
	Vertices  []geom.Point
	Neighbors []geom.Point
}

// Diagram is an immutable Voronoi diagram derived from a Delaunay
// triangulation. All accessors return defensive copies.
type Diagram struct {
	eps   float64
	sites []geom.Point // sites that formed a cell, in insertion order
	cells map[geom.Point]Cell
	edges []geom.Edge
}

// Eps returns the tolerance the diagram was built with.
func (d *Diagram) Eps() float64 {
	return d.eps
}

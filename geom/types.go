// Package geom defines core types and sentinel errors for planar
// geometry primitives shared by the delaunay and voronoi packages.
package geom

import "errors"

// DefaultEps is the tolerance used by every predicate unless the caller
// supplies another one. All equality, containment and circumcircle
// comparisons in this module are made modulo such a tolerance.
const DefaultEps = 1e-10

// Sentinel errors for geometry construction and derived quantities.
var (
	// ErrCollinear indicates a Triangle was requested from three
	// (near-)collinear points: |signed area| < eps.
	ErrCollinear = errors.New("geom: triangle vertices are collinear")

	// ErrDegenerate indicates the circumcenter of a triangle could not
	// be computed because the perpendicular-bisector system is
	// numerically singular.
	ErrDegenerate = errors.New("geom: triangle is degenerate")
)

// Point is an immutable 2-D coordinate. Points are plain values: they
// are copied freely, never mutated, and may be used as map keys.
type Point struct {
	X, Y float64
}

// Edge is an unordered pair of Points. Equality and Key are
// order-independent: Edge{P, Q} and Edge{Q, P} denote the same edge.
type Edge struct {
	P, Q Point
}

// Triangle is an ordered triple of non-collinear Points. Construct via
// NewTriangle, which rejects collinear input; a zero Triangle is not a
// valid value. Triangles are immutable once constructed.
type Triangle struct {
	A, B, C Point
}

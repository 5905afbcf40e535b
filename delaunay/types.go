// Package delaunay defines the Triangulation type, its options, and
// sentinel errors for incremental Bowyer–Watson triangulation.
package delaunay

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
)

// Sentinel errors for triangulation operations.
var (
	// ErrDuplicatePoint indicates AddPoint received a point equal,
	// within the configured tolerance, to an already-inserted one.
	// The triangulation is unchanged after this error.
	ErrDuplicatePoint = errors.New("delaunay: point already inserted")

	// ErrNoPoints indicates an operation that requires at least one
	// inserted point ran on an empty triangulation.
	ErrNoPoints = errors.New("delaunay: triangulation has no points")
)

// Option configures a Triangulation at construction time.
// Use with New(opts...).
type Option func(*Triangulation)

// WithEps returns an Option that sets the tolerance used by every
// predicate of the triangulation (equality, circumcircle membership,
// containment, degeneracy checks). Non-positive values are ignored and
// the default geom.DefaultEps is retained.
func WithEps(eps float64) Option {
	return func(dt *Triangulation) {
		if eps > 0 {
			dt.eps = eps
		}
	}
}

// record is one arena slot. Triangles are addressed by their stable
// index in the arena, so "same logical triangle" decisions compare
// integer handles instead of vertex sets; dead slots are never reused.
// The circumcircle is computed once at admission since the insertion
// loop probes it for every candidate point.
type record struct {
	tri    geom.Triangle
	center geom.Point
	radius float64
	alive  bool
}

// Triangulation is a mutable incremental Delaunay triangulation.
// The zero value is not ready for use; construct with New.
//
// Invariants maintained across every successful AddPoint:
//   - no two inserted points are equal within eps;
//   - for every triangle visible through the query surface, no
//     inserted point lies strictly inside its circumcircle;
//   - triangles touching a super-triangle vertex never appear in any
//     publicly observable view.
type Triangulation struct {
	eps    float64
	points []geom.Point // insertion order, externally observable
	arena  []record
	super  [3]geom.Point
	active bool // super-triangle seeded
}

// New returns an empty Triangulation with tolerance geom.DefaultEps
// unless overridden via WithEps.
func New(opts ...Option) *Triangulation {
	dt := &Triangulation{eps: geom.DefaultEps}
	for _, opt := range opts {
		opt(dt)
	}

	return dt
}

// Eps returns the tolerance the triangulation was configured with.
func (dt *Triangulation) Eps() float64 {
	return dt.eps
}

package geom

import "math"

// Pt is a shorthand constructor for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Eq reports whether p and q coincide within eps on both coordinates.
func (p Point) Eq(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSquaredTo returns the squared Euclidean distance from p to q.
// Prefer it over DistanceTo when only comparing distances.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y

	return dx*dx + dy*dy
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

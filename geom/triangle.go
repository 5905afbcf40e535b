package geom

import "math"

// NewTriangle constructs the triangle (a, b, c). It returns
// ErrCollinear when |signed area| < eps, so every Triangle obtained
// from this constructor supports a well-defined circumcircle.
func NewTriangle(a, b, c Point, eps float64) (Triangle, error) {
	t := Triangle{A: a, B: b, C: c}
	if math.Abs(t.SignedArea()) < eps {
		return Triangle{}, ErrCollinear
	}

	return t, nil
}

// SignedArea returns the shoelace area of t. The sign encodes vertex
// orientation: positive for counter-clockwise, negative for clockwise.
func (t Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
}

// Area returns the absolute area of t.
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Circumcenter returns the center of the circle through t's three
// vertices, solving the 2×2 perpendicular-bisector system. It returns
// ErrDegenerate when the system determinant magnitude is below eps.
func (t Triangle) Circumcenter(eps float64) (Point, error) {
	ax, ay := t.A.X, t.A.Y
	bx, by := t.B.X, t.B.Y
	cx, cy := t.C.X, t.C.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < eps {
		return Point{}, ErrDegenerate
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	return Point{
		X: (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d,
		Y: (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d,
	}, nil
}

// Circumradius returns the distance from t's circumcenter to any
// vertex. It returns ErrDegenerate when the circumcenter does not
// exist within eps.
func (t Triangle) Circumradius(eps float64) (float64, error) {
	center, err := t.Circumcenter(eps)
	if err != nil {
		return 0, err
	}

	return center.DistanceTo(t.A), nil
}

// InCircumcircle reports whether p lies strictly inside the
// circumcircle of t: dist(center, p) < radius − eps. A point on the
// circle itself therefore counts as outside; this bias keeps the
// incremental Delaunay insertion stable on cocircular inputs and is
// deliberate, observable behavior. A degenerate triangle contains no
// point.
func (t Triangle) InCircumcircle(p Point, eps float64) bool {
	center, err := t.Circumcenter(eps)
	if err != nil {
		return false
	}

	return center.DistanceTo(p) < center.DistanceTo(t.A)-eps
}

// Contains reports whether p lies inside t via barycentric
// coordinates. Points within ±eps of the boundary count as inside.
func (t Triangle) Contains(p Point, eps float64) bool {
	denom := (t.B.Y-t.C.Y)*(t.A.X-t.C.X) + (t.C.X-t.B.X)*(t.A.Y-t.C.Y)
	if math.Abs(denom) < eps {
		return false
	}

	l1 := ((t.B.Y-t.C.Y)*(p.X-t.C.X) + (t.C.X-t.B.X)*(p.Y-t.C.Y)) / denom
	l2 := ((t.C.Y-t.A.Y)*(p.X-t.C.X) + (t.A.X-t.C.X)*(p.Y-t.C.Y)) / denom
	l3 := 1 - l1 - l2

	return l1 >= -eps && l1 <= 1+eps &&
		l2 >= -eps && l2 <= 1+eps &&
		l3 >= -eps && l3 <= 1+eps
}

// Edges returns t's three undirected edges in the fixed order
// (A,B), (B,C), (C,A).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{P: t.A, Q: t.B},
		{P: t.B, Q: t.C},
		{P: t.C, Q: t.A},
	}
}

// Vertices returns t's three vertices in construction order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// HasVertex reports whether p is one of t's vertices within eps.
func (t Triangle) HasVertex(p Point, eps float64) bool {
	return t.A.Eq(p, eps) || t.B.Eq(p, eps) || t.C.Eq(p, eps)
}

// SharesVertex reports whether t and o have at least one vertex in
// common within eps.
func (t Triangle) SharesVertex(o Triangle, eps float64) bool {
	return t.HasVertex(o.A, eps) || t.HasVertex(o.B, eps) || t.HasVertex(o.C, eps)
}

// SharesEdge reports whether t and o have a full edge in common within
// eps, scanning all edge pairs.
func (t Triangle) SharesEdge(o Triangle, eps float64) bool {
	for _, te := range t.Edges() {
		for _, oe := range o.Edges() {
			if te.Eq(oe, eps) {
				return true
			}
		}
	}

	return false
}

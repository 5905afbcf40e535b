package geom

// NewEdge returns the edge joining p and q. Endpoint order carries no
// meaning; Eq and Key treat Edge{p, q} and Edge{q, p} as the same edge.
func NewEdge(p, q Point) Edge {
	return Edge{P: p, Q: q}
}

// Eq reports whether e and o join the same pair of points within eps,
// regardless of endpoint order.
func (e Edge) Eq(o Edge, eps float64) bool {
	return (e.P.Eq(o.P, eps) && e.Q.Eq(o.Q, eps)) ||
		(e.P.Eq(o.Q, eps) && e.Q.Eq(o.P, eps))
}

// SharesVertex reports whether e and o have at least one endpoint in
// common within eps.
func (e Edge) SharesVertex(o Edge, eps float64) bool {
	return e.P.Eq(o.P, eps) || e.P.Eq(o.Q, eps) ||
		e.Q.Eq(o.P, eps) || e.Q.Eq(o.Q, eps)
}

// HasVertex reports whether p is one of e's endpoints within eps.
func (e Edge) HasVertex(p Point, eps float64) bool {
	return e.P.Eq(p, eps) || e.Q.Eq(p, eps)
}

// Length returns the Euclidean length of e.
func (e Edge) Length() float64 {
	return e.P.DistanceTo(e.Q)
}

// Midpoint returns the midpoint of e.
func (e Edge) Midpoint() Point {
	return e.P.Midpoint(e.Q)
}

// Key returns an order-independent coordinate key for e, suitable for
// deduplication maps: the endpoints sorted lexicographically by (X, Y).
// Keys compare bitwise, without tolerance; only use them for edges
// whose endpoints come from the same computation.
func (e Edge) Key() [4]float64 {
	a, b := e.P, e.Q
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	return [4]float64{a.X, a.Y, b.X, b.Y}
}

package delaunay

import (
	"math"

	"github.com/katalvlaran/planar/geom"
)

// superMargin scales the bootstrap triangle. The super-triangle is
// synthesized before later insertions are known, so it must dwarf any
// plausible input extent, not just the first point's neighborhood.
const superMargin = 1e6

// AddPoint inserts p into the triangulation, restoring the Delaunay
// property via Bowyer–Watson. It returns ErrDuplicatePoint when p
// equals an already-inserted point within eps; the triangulation is
// left unmodified in that case.
func (dt *Triangulation) AddPoint(p geom.Point) error {
	for _, q := range dt.points {
		if q.Eq(p, dt.eps) {
			return ErrDuplicatePoint
		}
	}

	switch {
	case !dt.active:
		dt.seedSuper(p)
	case !dt.inSuper(p):
		// p escaped the bootstrap triangle: rebuild around the full
		// point set so the sentinels regain their margin.
		dt.reseed(p)
	}

	dt.insert(p)
	dt.points = append(dt.points, p)

	return nil
}

// insert runs one Bowyer–Watson step for p against the live set. The
// caller guarantees p is no duplicate and lies inside the
// super-triangle.
func (dt *Triangulation) insert(p geom.Point) {
	// Bad set: live triangles whose circumcircle strictly contains p.
	var bad []int
	for h := range dt.arena {
		rec := &dt.arena[h]
		if rec.alive && rec.center.DistanceTo(p) < rec.radius-dt.eps {
			bad = append(bad, h)
		}
	}

	// Hole boundary: edges belonging to exactly one bad triangle.
	counts := make(map[[4]float64]int)
	edges := make(map[[4]float64]geom.Edge)
	for _, h := range bad {
		for _, e := range dt.arena[h].tri.Edges() {
			k := e.Key()
			counts[k]++
			edges[k] = e
		}
	}

	for _, h := range bad {
		dt.arena[h].alive = false
	}

	// Re-triangulate the hole. Near-collinear candidates are dropped
	// silently; a transient degenerate candidate here is recoverable,
	// unlike a direct NewTriangle request.
	for k, n := range counts {
		if n != 1 {
			continue
		}
		e := edges[k]
		tri, err := geom.NewTriangle(e.P, e.Q, p, dt.eps)
		if err != nil {
			continue
		}
		dt.admit(tri)
	}
}

// AddPoints inserts every point in order, stopping at the first error.
func (dt *Triangulation) AddPoints(points []geom.Point) error {
	for _, p := range points {
		if err := dt.AddPoint(p); err != nil {
			return err
		}
	}

	return nil
}

// seedSuper creates the synthetic super-triangle over the known points
// plus p and makes it the sole live triangle. Its vertices are tagged
// sentinels: every public view filters out triangles touching them.
func (dt *Triangulation) seedSuper(p geom.Point) {
	minX, minY := p.X, p.Y
	maxX, maxY := p.X, p.Y
	for _, q := range dt.points {
		minX, maxX = min(minX, q.X), max(maxX, q.X)
		minY, maxY = min(minY, q.Y), max(maxY, q.Y)
	}

	// Size from both the box span and the coordinate magnitude, then
	// scale by superMargin: the first insertion sees a single point, so
	// the span alone says nothing about the eventual input extent. The
	// unit floor keeps the triangle non-degenerate around the origin.
	span := max(maxX-minX, maxY-minY,
		math.Abs(minX), math.Abs(maxX), math.Abs(minY), math.Abs(maxY), 1)
	span *= superMargin
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	dt.super = [3]geom.Point{
		{X: midX - 10*span, Y: midY - span},
		{X: midX + 10*span, Y: midY - span},
		{X: midX, Y: midY + 10*span},
	}

	tri, err := geom.NewTriangle(dt.super[0], dt.super[1], dt.super[2], dt.eps)
	if err != nil {
		// Unreachable: the three sentinels above are never collinear.
		panic(err)
	}
	dt.admit(tri)
	dt.active = true
}

// inSuper reports whether p lies inside the bootstrap triangle. A
// point outside it sees an empty bad set, so insertion would silently
// leave it unconnected.
func (dt *Triangulation) inSuper(p geom.Point) bool {
	tri := geom.Triangle{A: dt.super[0], B: dt.super[1], C: dt.super[2]}

	return tri.Contains(p, dt.eps)
}

// reseed rebuilds the triangulation around a super-triangle sized for
// every retained point plus p, then replays the retained insertions.
func (dt *Triangulation) reseed(p geom.Point) {
	retained := dt.points
	dt.arena = nil
	dt.seedSuper(p) // bounding box spans the retained points and p

	dt.points = make([]geom.Point, 0, len(retained)+1)
	for _, q := range retained {
		dt.insert(q)
		dt.points = append(dt.points, q)
	}
}

// admit appends tri to the arena with its circumcircle precomputed.
// A triangle whose circumcircle cannot be derived is dropped.
func (dt *Triangulation) admit(tri geom.Triangle) {
	center, err := tri.Circumcenter(dt.eps)
	if err != nil {
		return
	}
	dt.arena = append(dt.arena, record{
		tri:    tri,
		center: center,
		radius: center.DistanceTo(tri.A),
		alive:  true,
	})
}

// touchesSuper reports whether tri references a sentinel vertex.
func (dt *Triangulation) touchesSuper(tri geom.Triangle) bool {
	for _, s := range dt.super {
		if tri.HasVertex(s, dt.eps) {
			return true
		}
	}

	return false
}

// Triangles returns a copy of the live triangle set with every
// triangle touching a super-triangle vertex purged.
func (dt *Triangulation) Triangles() []geom.Triangle {
	if !dt.active {
		return nil
	}

	var out []geom.Triangle
	for _, rec := range dt.arena {
		if rec.alive && !dt.touchesSuper(rec.tri) {
			out = append(out, rec.tri)
		}
	}

	return out
}

// Edges returns the undirected edges of the cleaned triangle set,
// deduplicated by an order-independent coordinate key.
func (dt *Triangulation) Edges() []geom.Edge {
	seen := make(map[[4]float64]struct{})

	var out []geom.Edge
	for _, tri := range dt.Triangles() {
		for _, e := range tri.Edges() {
			k := e.Key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}

// Points returns the inserted points in insertion order.
func (dt *Triangulation) Points() []geom.Point {
	out := make([]geom.Point, len(dt.points))
	copy(out, dt.points)

	return out
}

// FindTriangle locates the cleaned triangle containing p, boundary
// inclusive. The second return value is false when p lies outside the
// current convex hull or in a gap.
func (dt *Triangulation) FindTriangle(p geom.Point) (geom.Triangle, bool) {
	for _, tri := range dt.Triangles() {
		if tri.Contains(p, dt.eps) {
			return tri, true
		}
	}

	return geom.Triangle{}, false
}

// BoundingBox returns the min and max corners of the axis-aligned
// bounding box of the inserted points. It returns ErrNoPoints on an
// empty triangulation.
func (dt *Triangulation) BoundingBox() (geom.Point, geom.Point, error) {
	if len(dt.points) == 0 {
		return geom.Point{}, geom.Point{}, ErrNoPoints
	}

	lo, hi := dt.points[0], dt.points[0]
	for _, p := range dt.points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}

	return lo, hi, nil
}

// Size returns the number of triangles in the cleaned set.
func (dt *Triangulation) Size() int {
	return len(dt.Triangles())
}

// Clear resets the triangulation to its empty state, discarding all
// points and triangles. The tolerance is retained.
func (dt *Triangulation) Clear() {
	dt.points = nil
	dt.arena = nil
	dt.super = [3]geom.Point{}
	dt.active = false
}

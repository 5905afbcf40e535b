package voronoi

import "github.com/katalvlaran/planar/geom"

// halfPlane is one clip stage: a side predicate plus the intersection
// of a polygon edge with the plane boundary.
type halfPlane struct {
	inside func(geom.Point) bool
	cross  func(a, b geom.Point) geom.Point
}

// clipToBounds clips poly against the rectangle using
// Sutherland–Hodgman, visiting the half-planes in the fixed order
// left, top, right, bottom. The result keeps the input winding; it may
// be empty when the polygon lies fully outside the rectangle.
func clipToBounds(poly []geom.Point, b Bounds) []geom.Point {
	planes := [4]halfPlane{
		{ // left: x ≥ MinX
			inside: func(p geom.Point) bool { return p.X >= b.MinX },
			cross:  func(p, q geom.Point) geom.Point { return crossVertical(p, q, b.MinX) },
		},
		{ // top: y ≤ MaxY
			inside: func(p geom.Point) bool { return p.Y <= b.MaxY },
			cross:  func(p, q geom.Point) geom.Point { return crossHorizontal(p, q, b.MaxY) },
		},
		{ // right: x ≤ MaxX
			inside: func(p geom.Point) bool { return p.X <= b.MaxX },
			cross:  func(p, q geom.Point) geom.Point { return crossVertical(p, q, b.MaxX) },
		},
		{ // bottom: y ≥ MinY
			inside: func(p geom.Point) bool { return p.Y >= b.MinY },
			cross:  func(p, q geom.Point) geom.Point { return crossHorizontal(p, q, b.MinY) },
		},
	}

	out := poly
	for _, plane := range planes {
		out = clipHalfPlane(out, plane)
		if len(out) == 0 {
			return nil
		}
	}

	return out
}

// clipHalfPlane is one Sutherland–Hodgman pass over a closed polygon.
func clipHalfPlane(poly []geom.Point, hp halfPlane) []geom.Point {
	if len(poly) == 0 {
		return nil
	}

	out := make([]geom.Point, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	for _, curr := range poly {
		switch {
		case hp.inside(curr) && hp.inside(prev):
			out = append(out, curr)
		case hp.inside(curr):
			out = append(out, hp.cross(prev, curr), curr)
		case hp.inside(prev):
			out = append(out, hp.cross(prev, curr))
		}
		prev = curr
	}

	return out
}

// crossVertical intersects segment pq with the vertical line x = x0.
func crossVertical(p, q geom.Point, x0 float64) geom.Point {
	t := (x0 - p.X) / (q.X - p.X)

	return geom.Point{X: x0, Y: p.Y + t*(q.Y-p.Y)}
}

// crossHorizontal intersects segment pq with the horizontal line y = y0.
func crossHorizontal(p, q geom.Point, y0 float64) geom.Point {
	t := (y0 - p.Y) / (q.Y - p.Y)

	return geom.Point{X: p.X + t*(q.X-p.X), Y: y0}
}

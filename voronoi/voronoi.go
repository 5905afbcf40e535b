package voronoi

import (
	"math"
	"sort"

	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/geom"
)

// FromDelaunay builds the Voronoi diagram dual to dt. The
// triangulation is snapshotted through its query surface and is not
// mutated. It returns ErrNilTriangulation for a nil input and
// ErrTooFewSites when fewer than two points were inserted.
func FromDelaunay(dt *delaunay.Triangulation, opts ...Option) (*Diagram, error) {
	if dt == nil {
		return nil, ErrNilTriangulation
	}

	b := builder{eps: geom.DefaultEps}
	for _, opt := range opts {
		opt(&b)
	}

	sites := dt.Points()
	if len(sites) < 2 {
		return nil, ErrTooFewSites
	}
	tris := dt.Triangles()

	// Circumcenters are shared between cell assembly and the edge
	// scan; a degenerate triangle contributes no Voronoi vertex.
	centers := make([]geom.Point, len(tris))
	valid := make([]bool, len(tris))
	for i, tri := range tris {
		if c, err := tri.Circumcenter(b.eps); err == nil {
			centers[i], valid[i] = c, true
		}
	}

	d := &Diagram{eps: b.eps, cells: make(map[geom.Point]Cell, len(sites))}

	for _, site := range sites {
		cell, ok := b.buildCell(site, tris, centers, valid)
		if !ok {
			continue
		}
		d.cells[site] = cell
		d.sites = append(d.sites, site)
	}

	d.edges = dualEdges(tris, centers, valid, b.eps)

	return d, nil
}

// buildCell assembles the cell of one site from its incident
// triangles. A site with no incident triangle forms no cell.
func (b builder) buildCell(site geom.Point, tris []geom.Triangle, centers []geom.Point, valid []bool) (Cell, bool) {
	var (
		verts     []geom.Point
		neighbors []geom.Point
		incident  bool
	)

	for i, tri := range tris {
		if !tri.HasVertex(site, b.eps) {
			continue
		}
		incident = true

		if valid[i] {
			verts = appendDistinct(verts, centers[i], b.eps)
		}
		for _, v := range tri.Vertices() {
			if !v.Eq(site, b.eps) {
				neighbors = appendDistinct(neighbors, v, b.eps)
			}
		}
	}
	if !incident {
		return Cell{}, false
	}

	// Counter-clockwise around the site.
	sort.Slice(verts, func(i, j int) bool {
		ai := math.Atan2(verts[i].Y-site.Y, verts[i].X-site.X)
		aj := math.Atan2(verts[j].Y-site.Y, verts[j].X-site.X)

		return ai < aj
	})

	if b.bounds != nil && len(verts) >= 3 {
		verts = clipToBounds(verts, *b.bounds)
	}

	return Cell{Site: site, Vertices: verts, Neighbors: neighbors}, true
}

// dualEdges joins the circumcenters of every triangle pair sharing a
// Delaunay edge, deduplicated by order-independent coordinate key.
func dualEdges(tris []geom.Triangle, centers []geom.Point, valid []bool, eps float64) []geom.Edge {
	seen := make(map[[4]float64]struct{})

	var out []geom.Edge
	for i := 0; i < len(tris); i++ {
		if !valid[i] {
			continue
		}
		for j := i + 1; j < len(tris); j++ {
			if !valid[j] || !tris[i].SharesEdge(tris[j], eps) {
				continue
			}
			e := geom.NewEdge(centers[i], centers[j])
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

// appendDistinct appends p unless an eps-equal point is already held.
func appendDistinct(pts []geom.Point, p geom.Point, eps float64) []geom.Point {
	for _, q := range pts {
		if q.Eq(p, eps) {
			return pts
		}
	}

	return append(pts, p)
}

// Cell returns the cell generated by site, matched exactly first and
// within eps as a fallback. The second return value reports presence.
func (d *Diagram) Cell(site geom.Point) (Cell, bool) {
	if c, ok := d.cells[site]; ok {
		return copyCell(c), true
	}
	for _, s := range d.sites {
		if s.Eq(site, d.eps) {
			return copyCell(d.cells[s]), true
		}
	}

	return Cell{}, false
}

// Cells returns every cell in site insertion order.
func (d *Diagram) Cells() []Cell {
	out := make([]Cell, 0, len(d.sites))
	for _, s := range d.sites {
		out = append(out, copyCell(d.cells[s]))
	}

	return out
}

// Edges returns the deduplicated Voronoi edge list.
func (d *Diagram) Edges() []geom.Edge {
	out := make([]geom.Edge, len(d.edges))
	copy(out, d.edges)

	return out
}

// Sites returns the sites that formed a cell, in insertion order.
func (d *Diagram) Sites() []geom.Point {
	out := make([]geom.Point, len(d.sites))
	copy(out, d.sites)

	return out
}

// HasSite reports whether site generated a cell in this diagram.
func (d *Diagram) HasSite(site geom.Point) bool {
	_, ok := d.Cell(site)

	return ok
}

// NearestSite returns the site closest to p by squared Euclidean
// distance, scanning linearly. The second return value is false for an
// empty diagram.
func (d *Diagram) NearestSite(p geom.Point) (geom.Point, bool) {
	if len(d.sites) == 0 {
		return geom.Point{}, false
	}

	best := d.sites[0]
	bestD := p.DistanceSquaredTo(best)
	for _, s := range d.sites[1:] {
		if ds := p.DistanceSquaredTo(s); ds < bestD {
			best, bestD = s, ds
		}
	}

	return best, true
}

// CellArea returns the shoelace area of the cell generated by site.
// It returns 0 for an unknown site or a cell with fewer than three
// recorded vertices.
func (d *Diagram) CellArea(site geom.Point) float64 {
	c, ok := d.Cell(site)
	if !ok || len(c.Vertices) < 3 {
		return 0
	}

	var sum float64
	n := len(c.Vertices)
	for i := 0; i < n; i++ {
		p, q := c.Vertices[i], c.Vertices[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}

	return math.Abs(sum) / 2
}

// copyCell deep-copies a cell so callers cannot corrupt the diagram.
func copyCell(c Cell) Cell {
	out := Cell{Site: c.Site}
	if len(c.Vertices) > 0 {
		out.Vertices = make([]geom.Point, len(c.Vertices))
		copy(out.Vertices, c.Vertices)
	}
	if len(c.Neighbors) > 0 {
		out.Neighbors = make([]geom.Point, len(c.Neighbors))
		copy(out.Neighbors, c.Neighbors)
	}

	return out
}

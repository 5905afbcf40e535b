package render

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/voronoi"
)

// Triangulation rasterizes dt: every Delaunay edge is stroked and
// every inserted point marked. It returns ErrNothingToDraw when dt is
// nil or holds no points.
func Triangulation(dt *delaunay.Triangulation, opts ...Option) (image.Image, error) {
	if dt == nil {
		return nil, ErrNothingToDraw
	}
	lo, hi, err := dt.BoundingBox()
	if err != nil {
		return nil, ErrNothingToDraw
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, scale := newCanvas(cfg, lo, hi)

	ctx.SetLineWidth(cfg.lineWidth)
	ctx.SetRGB(0.16, 0.35, 0.75)
	for _, e := range dt.Edges() {
		ctx.DrawLine(e.P.X, e.P.Y, e.Q.X, e.Q.Y)
	}
	ctx.Stroke()

	drawSites(ctx, dt.Points(), scale)

	return ctx.Image(), nil
}

// Diagram rasterizes d: cell polygons (optionally filled), the dual
// edge set, and the sites. It returns ErrNothingToDraw when d is nil
// or holds no cells.
func Diagram(d *voronoi.Diagram, opts ...Option) (image.Image, error) {
	if d == nil {
		return nil, ErrNothingToDraw
	}
	cells := d.Cells()
	if len(cells) == 0 {
		return nil, ErrNothingToDraw
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	lo, hi := diagramBounds(d, cells)
	ctx, scale := newCanvas(cfg, lo, hi)

	if cfg.fillCells {
		for i, c := range cells {
			if len(c.Vertices) < 3 {
				continue
			}
			tracePolygon(ctx, c.Vertices)
			shade := 0.70 + 0.06*float64(i%5)
			ctx.SetRGB(shade, shade, 0.95)
			ctx.Fill()
		}
	}

	ctx.SetLineWidth(cfg.lineWidth)
	ctx.SetRGB(0.25, 0.25, 0.25)
	for _, e := range d.Edges() {
		// Cocircular neighbors produce zero-length dual edges; skip.
		if e.P.Eq(e.Q, d.Eps()) {
			continue
		}
		ctx.DrawLine(e.P.X, e.P.Y, e.Q.X, e.Q.Y)
	}
	ctx.Stroke()

	drawSites(ctx, d.Sites(), scale)

	return ctx.Image(), nil
}

// SavePNG writes img to path in PNG format.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// newCanvas builds a white canvas whose transform fits the world box
// [lo, hi] with uniform scale, padding, and the Y axis pointing up.
// It returns the context plus the world-to-pixel scale factor.
func newCanvas(cfg config, lo, hi geom.Point) (*gg.Context, float64) {
	ctx := gg.NewContext(cfg.width, cfg.height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	w, h := float64(cfg.width), float64(cfg.height)
	spanX := max(hi.X-lo.X, 1e-9)
	spanY := max(hi.Y-lo.Y, 1e-9)
	scale := min((w-2*cfg.padding)/spanX, (h-2*cfg.padding)/spanY)

	// Flip Y, then center the scaled geometry on the canvas.
	ctx.Translate(0, h)
	ctx.Scale(1, -1)
	ctx.Translate((w-scale*spanX)/2, (h-scale*spanY)/2)
	ctx.Scale(scale, scale)
	ctx.Translate(-lo.X, -lo.Y)

	return ctx, scale
}

// drawSites marks each point with a dot of fixed pixel radius.
func drawSites(ctx *gg.Context, pts []geom.Point, scale float64) {
	r := 3.0 / scale
	ctx.SetRGB(0.8, 0.15, 0.15)
	for _, p := range pts {
		ctx.DrawCircle(p.X, p.Y, r)
		ctx.Fill()
	}
}

// tracePolygon appends a closed polygon path to the context.
func tracePolygon(ctx *gg.Context, poly []geom.Point) {
	ctx.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		ctx.LineTo(p.X, p.Y)
	}
	ctx.ClosePath()
}

// diagramBounds is the world box spanned by sites and cell vertices.
func diagramBounds(d *voronoi.Diagram, cells []voronoi.Cell) (geom.Point, geom.Point) {
	sites := d.Sites()
	lo, hi := sites[0], sites[0]
	grow := func(p geom.Point) {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	for _, s := range sites {
		grow(s)
	}
	for _, c := range cells {
		for _, v := range c.Vertices {
			grow(v)
		}
	}

	return lo, hi
}

// Package render defines rasterization options and sentinel errors.
package render

import "errors"

// ErrNothingToDraw indicates the triangulation or diagram holds no
// geometry, so no meaningful image can be produced.
var ErrNothingToDraw = errors.New("render: nothing to draw")

// Canvas size limits; requested sizes are clamped into this range.
const (
	minCanvas = 64
	maxCanvas = 8192
)

// config carries rasterization parameters.
type config struct {
	width, height int
	padding       float64
	lineWidth     float64
	fillCells     bool
}

// Option configures rasterization. Use with Triangulation or Diagram.
type Option func(*config)

// defaultConfig returns the canvas defaults: 800×600, 24px padding,
// 1.5px strokes, no cell fill.
func defaultConfig() config {
	return config{
		width:     800,
		height:    600,
		padding:   24,
		lineWidth: 1.5,
	}
}

// WithSize returns an Option setting the canvas size in pixels. Both
// dimensions are clamped to [64, 8192].
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = clamp(width, minCanvas, maxCanvas)
		c.height = clamp(height, minCanvas, maxCanvas)
	}
}

// WithPadding returns an Option setting the margin, in pixels, kept
// between the geometry and the canvas border. Negative values are
// ignored.
func WithPadding(px float64) Option {
	return func(c *config) {
		if px >= 0 {
			c.padding = px
		}
	}
}

// WithLineWidth returns an Option setting the stroke width in pixels.
// Non-positive values are ignored.
func WithLineWidth(px float64) Option {
	return func(c *config) {
		if px > 0 {
			c.lineWidth = px
		}
	}
}

// WithCellFill returns an Option that fills Voronoi cell polygons with
// per-cell shading in addition to stroking edges.
func WithCellFill() Option {
	return func(c *config) {
		c.fillCells = true
	}
}

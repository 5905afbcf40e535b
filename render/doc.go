// Package render rasterizes triangulations and Voronoi diagrams to
// images for inspection and documentation.
//
// What:
//
//   - Triangulation: strokes every Delaunay edge and marks the input
//     points.
//   - Diagram: optionally fills each Voronoi cell, strokes the dual
//     edge set, and marks the sites.
//   - SavePNG: writes any produced image to disk.
//
// The world-to-canvas transform fits the geometry's bounding box into
// the canvas with uniform scale and configurable padding; the Y axis
// points up, so images match the usual mathematical orientation.
//
// Rendering is backed by github.com/fogleman/gg.
//
// Errors:
//
//   - ErrNothingToDraw — the input holds no geometry to rasterize.
package render

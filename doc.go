// Package planar is an in-memory toolkit for incremental planar
// triangulation and its dual structures, from tolerance-based
// geometric predicates up to Voronoi diagrams and raster export.
//
// 🚀 What is planar?
//
//	A small, focused library that brings together:
//		• geom     — points, edges, triangles, and the tolerance-based
//		             predicates (circumcircle, barycentric containment)
//		             everything else is built on
//		• delaunay — incremental Bowyer–Watson Delaunay triangulation
//		             with a sentinel super-triangle bootstrap
//		• voronoi  — the dual Voronoi diagram: cells, neighbors, edge
//		             list, optional Sutherland–Hodgman clipping
//		• render   — PNG rasterization of both structures
//
// ✨ Why choose planar?
//
//   - Deterministic – every operation is a bounded, synchronous
//     computation; no goroutines, no I/O, no hidden state
//   - Tunable – one tolerance parameter per structure, set at
//     construction, never hard-coded per call site
//   - Honest – degenerate and cocircular inputs follow documented
//     policies instead of undefined behavior
//
// Quick ASCII example:
//
//	    (0,1)───(1,1)
//	      │   ╱   │
//	      │  ╱    │
//	    (0,0)───(1,0)
//
//	the unit square triangulates into exactly two triangles and
//	five edges; its Voronoi vertices all collapse onto (0.5, 0.5).
//
// Dive into the per-package documentation for algorithm outlines,
// complexity notes, and the full error taxonomy.
//
//	go get github.com/katalvlaran/planar
package planar

// Package voronoi derives a Voronoi diagram from a completed Delaunay
// triangulation, exploiting planar duality: every Voronoi vertex is
// the circumcenter of a Delaunay triangle, and every Voronoi edge
// joins the circumcenters of two triangles sharing a Delaunay edge.
//
// What:
//
//   - Diagram: a site → Cell map plus a deduplicated global edge list,
//     built once by FromDelaunay. Diagrams are read-only after
//     construction; there is no incremental update.
//   - Cell: a site, its polygon vertices ordered counter-clockwise
//     around the site, and its neighboring sites.
//   - Optional axis-aligned clipping: WithBounds applies
//     Sutherland–Hodgman clipping to every cell polygon against the
//     rectangle, in the fixed half-plane order left, top, right,
//     bottom.
//
// Construction Outline:
//  1. Snapshot the triangulation's cleaned triangles and points.
//  2. For each site, collect incident triangles; a site with none gets
//     no cell. Cell vertices are the distinct circumcenters of the
//     incident triangles, ordered CCW by atan2 around the site.
//  3. Neighbors are the union of the other two vertices over all
//     incident triangles, deduplicated.
//  4. Global edges join circumcenters of triangle pairs sharing a
//     Delaunay edge, deduplicated by order-independent coordinate key.
//
// Known limitation:
//
//	Sites on the convex hull of the input have no opposing triangles
//	once the super-triangle is cleaned away, so their cells are
//	bounded truncations of the mathematically unbounded Voronoi
//	regions. Supply WithBounds for deterministic truncation.
//
// Complexity: O(S·T) for cell assembly and O(T²) for the shared-edge
// pair scan, with S sites and T triangles.
//
// Errors:
//
//   - ErrNilTriangulation — FromDelaunay received nil.
//   - ErrTooFewSites      — the triangulation holds fewer than 2 sites.
package voronoi

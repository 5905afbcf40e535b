// Package delaunay implements an incremental planar Delaunay
// triangulation using the Bowyer–Watson algorithm.
//
// What:
//
//   - Triangulation: a mutable triangle set over points inserted one at
//     a time. After every successful AddPoint the set satisfies the
//     Delaunay property: no inserted point lies strictly inside the
//     circumcircle of any triangle, within the configured tolerance.
//   - Query surface: Triangles, Edges, Points (defensive copies),
//     FindTriangle (point location), Size, Clear.
//
// Algorithm Outline (per insertion):
//  1. Reject the point if it equals an already-inserted point within
//     eps (ErrDuplicatePoint); the triangulation is left untouched.
//  2. On the first insertion, seed the triangle set with a synthetic
//     super-triangle sized from the bounding-box span and coordinate
//     magnitude, scaled by a large margin. Its three vertices are
//     sentinels: any triangle touching one of them is filtered out of
//     every public view. Should a later point still escape the
//     bootstrap triangle, the triangulation is rebuilt around the full
//     point set before the insertion proceeds.
//  3. Collect the bad set: triangles whose circumcircle strictly
//     contains the new point.
//  4. The hole boundary is the set of edges belonging to exactly one
//     bad triangle.
//  5. Discard the bad triangles and connect every boundary edge to the
//     new point. A candidate triangle that would be degenerate
//     (near-collinear) is silently dropped; transient degeneracies
//     during hole re-triangulation are expected and recoverable.
//
// Complexity:
//
//	Each insertion scans the live triangle set: O(T) per point,
//	O(n²) worst case overall, O(n log n) expected for points in
//	general position.
//
// Concurrency:
//
//	A Triangulation is not safe for concurrent use. Callers that share
//	one instance across goroutines must serialize access externally.
//
// Errors:
//
//   - ErrDuplicatePoint — AddPoint received an already-inserted point.
//   - ErrNoPoints       — a query that needs at least one insertion ran
//     on an empty triangulation.
package delaunay

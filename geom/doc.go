// Package geom provides the planar primitives and tolerance-based
// predicates that the delaunay and voronoi packages are built on.
//
// What:
//
//   - Point: immutable 2-D coordinate with tolerance-based equality,
//     Euclidean / squared distance, and midpoint.
//   - Edge: unordered pair of Points with order-independent equality
//     and a canonical key for use in deduplication maps.
//   - Triangle: ordered vertex triple with signed area (shoelace),
//     circumcenter / circumradius (perpendicular-bisector system),
//     circumcircle membership, and barycentric containment.
//
// Why:
//
//	Incremental geometric algorithms live or die on their predicates.
//	Exact arithmetic is out of scope here; instead every comparison is
//	made modulo a caller-supplied tolerance eps (DefaultEps = 1e-10),
//	carried explicitly through each predicate so behavior stays
//	consistently tunable and testable.
//
// Predicate policy:
//
//   - InCircumcircle uses the strict bound dist < radius − eps, so a
//     point exactly on the circle counts as outside. This bias keeps
//     incremental insertion stable on cocircular inputs.
//   - Contains treats points within ±eps of the triangle boundary as
//     inside.
//
// Complexity: every operation in this package is O(1).
//
// Errors:
//
//   - ErrCollinear  — NewTriangle called with (near-)collinear vertices.
//   - ErrDegenerate — circumcenter requested for a triangle whose
//     bisector system is numerically singular.
package geom

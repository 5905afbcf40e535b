package delaunay_test

import (
	"fmt"

	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/geom"
)

// ExampleTriangulation_AddPoint triangulates the unit square. The four
// cocircular corners admit exactly two triangles and five edges (the
// four sides plus one diagonal).
func ExampleTriangulation_AddPoint() {
	dt := delaunay.New()
	for _, p := range []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	} {
		if err := dt.AddPoint(p); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	fmt.Println("triangles:", dt.Size())
	fmt.Println("edges:", len(dt.Edges()))
	// Output:
	// triangles: 2
	// edges: 5
}

// ExampleTriangulation_FindTriangle locates the triangle containing a
// probe point.
func ExampleTriangulation_FindTriangle() {
	dt := delaunay.New()
	_ = dt.AddPoints([]geom.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3},
	})

	if tri, ok := dt.FindTriangle(geom.Pt(2, 1)); ok {
		fmt.Printf("area=%.1f\n", tri.Area())
	}
	if _, ok := dt.FindTriangle(geom.Pt(10, 10)); !ok {
		fmt.Println("outside the hull")
	}
	// Output:
	// area=6.0
	// outside the hull
}

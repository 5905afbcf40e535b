package geom_test

import (
	"fmt"

	"github.com/katalvlaran/planar/geom"
)

// ExampleNewTriangle builds the unit right triangle and reads off its
// derived circumcircle quantities.
func ExampleNewTriangle() {
	tri, err := geom.NewTriangle(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.DefaultEps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	center, _ := tri.Circumcenter(geom.DefaultEps)
	radius, _ := tri.Circumradius(geom.DefaultEps)

	fmt.Printf("area=%.2f center=(%.1f,%.1f) radius=%.4f\n", tri.Area(), center.X, center.Y, radius)
	fmt.Println("contains (0.2,0.2):", tri.Contains(geom.Pt(0.2, 0.2), geom.DefaultEps))
	// Output:
	// area=0.50 center=(0.5,0.5) radius=0.7071
	// contains (0.2,0.2): true
}

// ExampleEdge_Eq shows that edge equality ignores endpoint order.
func ExampleEdge_Eq() {
	a, b := geom.Pt(0, 0), geom.Pt(3, 4)

	fmt.Println(geom.NewEdge(a, b).Eq(geom.NewEdge(b, a), geom.DefaultEps))
	// Output:
	// true
}

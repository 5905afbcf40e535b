package voronoi_test

import (
	"fmt"

	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/voronoi"
)

// ExampleFromDelaunay derives the Voronoi diagram of a 3×3 integer
// grid and inspects the interior cell.
func ExampleFromDelaunay() {
	dt := delaunay.New()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if err := dt.AddPoint(geom.Pt(float64(i), float64(j))); err != nil {
				fmt.Println("error:", err)
				return
			}
		}
	}

	d, err := voronoi.FromDelaunay(dt)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cells:", len(d.Cells()))
	fmt.Printf("area of cell (1,1): %.2f\n", d.CellArea(geom.Pt(1, 1)))

	if site, ok := d.NearestSite(geom.Pt(0.7, 0.7)); ok {
		fmt.Printf("nearest to (0.7,0.7): (%.0f,%.0f)\n", site.X, site.Y)
	}
	// Output:
	// cells: 9
	// area of cell (1,1): 1.00
	// nearest to (0.7,0.7): (1,1)
}

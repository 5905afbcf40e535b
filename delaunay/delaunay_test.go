package delaunay_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/delaunay"
	"github.com/katalvlaran/planar/geom"
)

// unitSquare is the canonical cocircular four-point input:
// (0,0), (1,0), (1,1), (0,1) in insertion order.
var unitSquare = []geom.Point{
	geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1),
}

// jitteredGrid returns an n×n grid displaced deterministically off the
// lattice, so no three points are collinear and no four cocircular.
func jitteredGrid(n int) []geom.Point {
	pts := make([]geom.Point, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts = append(pts, geom.Pt(
				float64(i)+0.3*math.Sin(float64(i*j)+1),
				float64(j)+0.3*math.Cos(float64(3*i+j)),
			))
		}
	}

	return pts
}

func TestTriangulation_Empty(t *testing.T) {
	dt := delaunay.New()

	assert.Empty(t, dt.Triangles())
	assert.Empty(t, dt.Edges())
	assert.Empty(t, dt.Points())
	assert.Zero(t, dt.Size())

	_, ok := dt.FindTriangle(geom.Pt(0, 0))
	assert.False(t, ok)

	_, _, err := dt.BoundingBox()
	assert.ErrorIs(t, err, delaunay.ErrNoPoints)
}

func TestTriangulation_UnitSquare(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(unitSquare))

	assert.Equal(t, 2, dt.Size())
	assert.Len(t, dt.Triangles(), 2)
	assert.Len(t, dt.Edges(), 5, "four sides plus one diagonal")
	assert.Equal(t, unitSquare, dt.Points(), "insertion order preserved")
}

func TestTriangulation_SinglePointAndPair(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoint(geom.Pt(3, 4)))

	// One point spans no triangle once the super-triangle is purged.
	assert.Zero(t, dt.Size())
	assert.Len(t, dt.Points(), 1)

	require.NoError(t, dt.AddPoint(geom.Pt(5, 4)))
	assert.Zero(t, dt.Size(), "two points still form no triangle")
}

func TestTriangulation_DuplicateRejected(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(unitSquare))

	trisBefore := dt.Size()
	ptsBefore := len(dt.Points())

	err := dt.AddPoint(geom.Pt(0, 0))
	assert.ErrorIs(t, err, delaunay.ErrDuplicatePoint)

	// Near-duplicate within tolerance is rejected as well.
	err = dt.AddPoint(geom.Pt(1e-12, -1e-12))
	assert.ErrorIs(t, err, delaunay.ErrDuplicatePoint)

	assert.Equal(t, trisBefore, dt.Size(), "triangle count unchanged after failed insert")
	assert.Equal(t, ptsBefore, len(dt.Points()), "point count unchanged after failed insert")
}

func TestTriangulation_DelaunayInvariant(t *testing.T) {
	pts := jitteredGrid(6)
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(pts))

	for _, tri := range dt.Triangles() {
		for _, p := range pts {
			assert.False(t, tri.InCircumcircle(p, geom.DefaultEps),
				"point (%v,%v) lies inside a circumcircle", p.X, p.Y)
		}
	}
}

func TestTriangulation_EulerFormula(t *testing.T) {
	pts := jitteredGrid(5)
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(pts))

	v := len(dt.Points())
	e := len(dt.Edges())
	f := dt.Size() + 1 // interior faces plus the outer face

	assert.Equal(t, 2, v-e+f, "V − E + F must equal 2")
}

// TestTriangulation_WideExtentInvariant feeds points spread far beyond
// the first insertion's neighborhood; the bootstrap triangle must
// still dominate the whole input for the Delaunay property to hold.
func TestTriangulation_WideExtentInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pts := make([]geom.Point, 200)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float64()*100, rng.Float64()*100)
	}

	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(pts))

	for _, tri := range dt.Triangles() {
		for _, p := range pts {
			assert.False(t, tri.InCircumcircle(p, geom.DefaultEps),
				"point (%v,%v) lies inside a circumcircle", p.X, p.Y)
		}
	}

	v := len(dt.Points())
	e := len(dt.Edges())
	f := dt.Size() + 1
	assert.Equal(t, 2, v-e+f, "V − E + F must equal 2")
}

// TestTriangulation_FarCornersSquare triangulates a 1000×1000 square
// starting from the origin: the scaled twin of the unit-square case.
func TestTriangulation_FarCornersSquare(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints([]geom.Point{
		geom.Pt(0, 0), geom.Pt(1000, 0), geom.Pt(1000, 1000), geom.Pt(0, 1000),
	}))

	assert.Equal(t, 2, dt.Size())
	assert.Len(t, dt.Edges(), 5, "four sides plus one diagonal")
}

// TestTriangulation_ReseedOnEscape inserts a point far outside the
// bootstrap triangle; the triangulation must rebuild around it instead
// of silently dropping the connection.
func TestTriangulation_ReseedOnEscape(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoint(geom.Pt(0, 0)))
	require.NoError(t, dt.AddPoint(geom.Pt(5e7, 0)))
	require.NoError(t, dt.AddPoint(geom.Pt(2e7, 3e7)))

	assert.Equal(t, 1, dt.Size())
	assert.Len(t, dt.Points(), 3)

	_, ok := dt.FindTriangle(geom.Pt(2e7, 1e7))
	assert.True(t, ok, "interior of the rebuilt triangle is reachable")
}

func TestTriangulation_NoDuplicateEdges(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(jitteredGrid(4)))

	edges := dt.Edges()
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			assert.False(t, edges[i].Eq(edges[j], geom.DefaultEps),
				"edges %d and %d are equal", i, j)
		}
	}
}

func TestTriangulation_FindTriangle(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(unitSquare))

	tri, ok := dt.FindTriangle(geom.Pt(0.25, 0.25))
	require.True(t, ok)
	assert.True(t, tri.Contains(geom.Pt(0.25, 0.25), geom.DefaultEps))

	_, ok = dt.FindTriangle(geom.Pt(5, 5))
	assert.False(t, ok, "point outside the hull has no triangle")
}

func TestTriangulation_Clear(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(unitSquare))
	require.NotZero(t, dt.Size())

	dt.Clear()

	assert.Zero(t, dt.Size())
	assert.Empty(t, dt.Points())

	// The triangulation is reusable after Clear.
	require.NoError(t, dt.AddPoints(unitSquare))
	assert.Equal(t, 2, dt.Size())
}

func TestTriangulation_DefensiveCopies(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints(unitSquare))

	pts := dt.Points()
	pts[0] = geom.Pt(99, 99)
	assert.Equal(t, geom.Pt(0, 0), dt.Points()[0], "mutating the returned slice must not corrupt state")

	tris := dt.Triangles()
	tris[0] = geom.Triangle{}
	assert.NotEqual(t, geom.Triangle{}, dt.Triangles()[0])
}

func TestTriangulation_BoundingBox(t *testing.T) {
	dt := delaunay.New()
	require.NoError(t, dt.AddPoints([]geom.Point{
		geom.Pt(-1, 4), geom.Pt(3, -2), geom.Pt(2, 7),
	}))

	lo, hi, err := dt.BoundingBox()
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(-1, -2), lo)
	assert.Equal(t, geom.Pt(3, 7), hi)
}

func TestTriangulation_WithEps(t *testing.T) {
	dt := delaunay.New(delaunay.WithEps(1e-3))
	assert.Equal(t, 1e-3, dt.Eps())

	require.NoError(t, dt.AddPoint(geom.Pt(0, 0)))
	err := dt.AddPoint(geom.Pt(1e-4, 0))
	assert.ErrorIs(t, err, delaunay.ErrDuplicatePoint, "coarse tolerance widens duplicate detection")

	// Ignored: non-positive eps keeps the default.
	assert.Equal(t, geom.DefaultEps, delaunay.New(delaunay.WithEps(0)).Eps())
}

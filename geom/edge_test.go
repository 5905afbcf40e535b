package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/planar/geom"
)

func TestEdge_Eq_OrderIndependent(t *testing.T) {
	a, b := geom.Pt(0, 0), geom.Pt(1, 1)
	e1 := geom.NewEdge(a, b)
	e2 := geom.NewEdge(b, a)

	assert.True(t, e1.Eq(e2, geom.DefaultEps))
	assert.True(t, e2.Eq(e1, geom.DefaultEps))
	assert.False(t, e1.Eq(geom.NewEdge(a, geom.Pt(1, 2)), geom.DefaultEps))
}

func TestEdge_Key_OrderIndependent(t *testing.T) {
	a, b := geom.Pt(2, 3), geom.Pt(-1, 5)

	assert.Equal(t, geom.NewEdge(a, b).Key(), geom.NewEdge(b, a).Key())
}

func TestEdge_Key_TieBreakOnY(t *testing.T) {
	// Same X on both endpoints: the key must order by Y.
	a, b := geom.Pt(1, 4), geom.Pt(1, -2)

	assert.Equal(t, [4]float64{1, -2, 1, 4}, geom.NewEdge(a, b).Key())
}

func TestEdge_SharesVertex(t *testing.T) {
	a, b, c, d := geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(5, 5)

	assert.True(t, geom.NewEdge(a, b).SharesVertex(geom.NewEdge(b, c), geom.DefaultEps))
	assert.False(t, geom.NewEdge(a, b).SharesVertex(geom.NewEdge(c, d), geom.DefaultEps))
}

func TestEdge_HasVertex(t *testing.T) {
	e := geom.NewEdge(geom.Pt(0, 0), geom.Pt(2, 0))

	assert.True(t, e.HasVertex(geom.Pt(2, 0), geom.DefaultEps))
	assert.False(t, e.HasVertex(geom.Pt(1, 0), geom.DefaultEps))
}

func TestEdge_LengthAndMidpoint(t *testing.T) {
	e := geom.NewEdge(geom.Pt(0, 0), geom.Pt(6, 8))

	assert.InDelta(t, 10, e.Length(), 1e-12)
	assert.Equal(t, geom.Pt(3, 4), e.Midpoint())
}

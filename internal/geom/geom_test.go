package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		v, grid, want int
	}{
		{0, 20, 0},
		{19, 20, 0},
		{20, 20, 20},
		{39, 20, 20},
		{47, 20, 40},
		{-1, 20, -20},
		{-20, 20, -20},
		{-21, 20, -40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Snap(tt.v, tt.grid), "Snap(%d, %d)", tt.v, tt.grid)
	}
}

// Snap(v, g) is a multiple of g and lies in (v-g, v] for every integer v.
func TestSnapProperties(t *testing.T) {
	for v := -100; v <= 100; v++ {
		s := Snap(v, Grid)
		assert.Equal(t, 0, ((s%Grid)+Grid)%Grid, "Snap(%d) not on grid", v)
		assert.True(t, s <= v && v-Grid < s, "Snap(%d) = %d out of range", v, s)
	}
}

func TestIntersects(t *testing.T) {
	a := RectAt(0, 0, 50, 50)
	assert.True(t, a.Intersects(RectAt(25, 25, 50, 50)), "overlapping")
	assert.True(t, a.Intersects(RectAt(50, 0, 50, 50)), "touching edges intersect")
	assert.False(t, a.Intersects(RectAt(51, 0, 50, 50)), "strictly right")
	assert.False(t, a.Intersects(RectAt(0, 51, 50, 50)), "strictly below")
	assert.False(t, RectAt(100, 100, 50, 50).Intersects(a), "far apart")
}

func TestFromCorners(t *testing.T) {
	r := FromCorners(30, 40, 10, 20)
	assert.Equal(t, Rect{Left: 10, Top: 20, Right: 30, Bottom: 40}, r)
}

func TestExtent(t *testing.T) {
	w, h := Extent(100, 200, 80, 24)
	assert.Equal(t, 100+ExtentMargin, w)
	assert.Equal(t, 200+ExtentMargin, h)

	// never below the viewport
	w, h = Extent(-ExtentMargin, -ExtentMargin, 80, 24)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}

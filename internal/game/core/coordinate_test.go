package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(3, 5)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, 5, c.Y)
}

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		columns int
		rows    int
		valid   bool
	}{
		{"Valid_Origin", Coordinate{0, 0}, 8, 8, true},
		{"Valid_FarCorner", Coordinate{7, 7}, 8, 8, true},
		{"Valid_Rectangular", Coordinate{9, 2}, 10, 3, true},
		{"Invalid_NegativeX", Coordinate{-1, 0}, 8, 8, false},
		{"Invalid_NegativeY", Coordinate{0, -1}, 8, 8, false},
		{"Invalid_XEqualsColumns", Coordinate{8, 0}, 8, 8, false},
		{"Invalid_YEqualsRows", Coordinate{0, 8}, 8, 8, false},
		{"Invalid_RowsSwapped", Coordinate{2, 9}, 10, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.coord.IsValid(tt.columns, tt.rows))
		})
	}
}

func TestCoordinate_Arithmetic(t *testing.T) {
	a := Coordinate{2, 2}
	b := Coordinate{1, 1}

	assert.Equal(t, Coordinate{3, 3}, a.Add(b))
	assert.Equal(t, Coordinate{1, 1}, a.Sub(b))
	assert.Equal(t, Coordinate{-2, 4}, Coordinate{-1, 2}.Scale(2))
	assert.True(t, a.Equal(Coordinate{2, 2}))
	assert.False(t, a.Equal(b))
}

func TestCoordinate_Midpoint(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coordinate
		want     Coordinate
	}{
		{"up_right_jump", Coordinate{2, 2}, Coordinate{4, 4}, Coordinate{3, 3}},
		{"down_left_jump", Coordinate{5, 5}, Coordinate{3, 3}, Coordinate{4, 4}},
		{"up_left_jump", Coordinate{4, 0}, Coordinate{2, 2}, Coordinate{3, 1}},
		{"down_right_jump", Coordinate{0, 7}, Coordinate{2, 5}, Coordinate{1, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Midpoint(tt.to))
			assert.Equal(t, tt.want, tt.to.Midpoint(tt.from), "midpoint should be symmetric")
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(3,4)", Coordinate{3, 4}.String())
	assert.Equal(t, "(-1,0)", Coordinate{-1, 0}.String())
}

func TestDiagonalsToward(t *testing.T) {
	assert.ElementsMatch(t, []Coordinate{UpRight, UpLeft}, DiagonalsToward(1))
	assert.ElementsMatch(t, []Coordinate{DownRight, DownLeft}, DiagonalsToward(-1))

	for _, d := range DiagonalsToward(1) {
		assert.Equal(t, 1, d.Y)
	}
	for _, d := range DiagonalsToward(-1) {
		assert.Equal(t, -1, d.Y)
	}
}

func TestCoordinate_IsUnitDiagonal(t *testing.T) {
	for _, d := range []Coordinate{UpRight, UpLeft, DownRight, DownLeft} {
		assert.True(t, d.IsUnitDiagonal(), "%s should be a unit diagonal", d)
	}
	for _, d := range []Coordinate{{0, 1}, {1, 0}, {2, 2}, {0, 0}} {
		assert.False(t, d.IsUnitDiagonal(), "%s should not be a unit diagonal", d)
	}
}

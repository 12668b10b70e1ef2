package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestBox_Quad(t *testing.T) {
	box := Box{Width: 100, Length: 200, Tip: 20}
	pivot := Point{X: 100, Y: 100}

	tests := []struct {
		name     string
		heading  float64
		expected Quad
	}{
		{
			name:    "zero_heading",
			heading: 0,
			expected: Quad{
				{X: 50, Y: 120},
				{X: 150, Y: 120},
				{X: 150, Y: 320},
				{X: 50, Y: 320},
			},
		},
		{
			name:    "quarter_turn",
			heading: math.Pi / 2,
			expected: Quad{
				{X: 80, Y: 50},
				{X: 80, Y: 150},
				{X: -120, Y: 150},
				{X: -120, Y: 50},
			},
		},
		{
			name:    "half_turn",
			heading: math.Pi,
			expected: Quad{
				{X: 150, Y: 80},
				{X: 50, Y: 80},
				{X: 50, Y: -120},
				{X: 150, Y: -120},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := box.Quad(pivot, tt.heading)
			for i := range tt.expected {
				if !near(got[i], tt.expected[i]) {
					t.Errorf("corner %d = %+v, expected %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestBox_QuadPreservesSize(t *testing.T) {
	box := Box{Width: 100, Length: 200, Tip: 20}
	for _, heading := range []float64{-1.309, -0.5, 0.1, 0.96, 1.309} {
		q := box.Quad(Point{X: 800, Y: 533}, heading)
		w := math.Hypot(q[1].X-q[0].X, q[1].Y-q[0].Y)
		l := math.Hypot(q[2].X-q[1].X, q[2].Y-q[1].Y)
		if math.Abs(w-100) > eps || math.Abs(l-200) > eps {
			t.Errorf("heading %v: sides %v x %v, expected 100 x 200", heading, w, l)
		}
	}
}

func TestBox_QuadMirrorsWithHeading(t *testing.T) {
	box := Box{Width: 100, Length: 200, Tip: 20}
	pivot := Point{X: 0, Y: 0}

	left := box.Quad(pivot, 0.7).Center()
	right := box.Quad(pivot, -0.7).Center()

	if math.Abs(left.X+right.X) > eps || math.Abs(left.Y-right.Y) > eps {
		t.Errorf("centers %+v and %+v are not mirror images", left, right)
	}
	if left.X >= 0 {
		t.Errorf("positive heading should swing the box to the left of the pivot, got center %+v", left)
	}
}

package geom

import (
	"math"
	"testing"
)

func TestToScreen_CenterPoint(t *testing.T) {
	// The midpoint of normalized space maps to the center of the screen
	got := ToScreen(Point{X: 0.5, Y: 0.5}, Size{Width: 200, Height: 100})

	if got.X != 100 || got.Y != 50 {
		t.Errorf("ToScreen(0.5, 0.5) = (%v, %v), want (100, 50)", got.X, got.Y)
	}
}

func TestToScreen_FlipsVerticalAxis(t *testing.T) {
	size := Size{Width: 200, Height: 100}

	// Normalized origin is bottom-left; it must map to the bottom-left
	// of the screen, which in top-left coordinates is (0, height)
	bottomLeft := ToScreen(Point{X: 0, Y: 0}, size)
	if bottomLeft.X != 0 || bottomLeft.Y != 100 {
		t.Errorf("ToScreen(0, 0) = (%v, %v), want (0, 100)", bottomLeft.X, bottomLeft.Y)
	}

	// Normalized top-right maps to screen top-right
	topRight := ToScreen(Point{X: 1, Y: 1}, size)
	if topRight.X != 200 || topRight.Y != 0 {
		t.Errorf("ToScreen(1, 1) = (%v, %v), want (200, 0)", topRight.X, topRight.Y)
	}
}

func TestToScreen_ExtrapolatesOutOfRange(t *testing.T) {
	// Landmarks jitter slightly past the frame edge; the mapping must
	// extrapolate rather than clamp
	got := ToScreen(Point{X: -0.1, Y: 1.2}, Size{Width: 100, Height: 100})

	if got.X != -10 {
		t.Errorf("X = %v, want -10", got.X)
	}
	if math.Abs(got.Y-(-20)) > 1e-9 {
		t.Errorf("Y = %v, want -20", got.Y)
	}
}

func TestToLocal(t *testing.T) {
	region := Rect{Origin: Point{X: 50, Y: 20}, Size: Size{Width: 100, Height: 80}}

	got := ToLocal(Point{X: 70, Y: 50}, region)
	if got.X != 20 || got.Y != 30 {
		t.Errorf("ToLocal = (%v, %v), want (20, 30)", got.X, got.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Origin: Point{X: 10, Y: 10}, Size: Size{Width: 20, Height: 20}}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 20, Y: 20}, true},
		{"min corner inclusive", Point{X: 10, Y: 10}, true},
		{"max corner exclusive", Point{X: 30, Y: 30}, false},
		{"left of region", Point{X: 9, Y: 20}, false},
		{"below region", Point{X: 20, Y: 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDistanceAndMidpoint(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}

	if d := Distance(a, b); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}

	mid := Midpoint(a, b)
	if mid.X != 1.5 || mid.Y != 2 {
		t.Errorf("Midpoint = (%v, %v), want (1.5, 2)", mid.X, mid.Y)
	}
}

func TestVectorMath(t *testing.T) {
	p := Point{X: 100, Y: 100}
	q := Point{X: 130, Y: 115}

	delta := q.Sub(p)
	if delta.DX != 30 || delta.DY != 15 {
		t.Errorf("Sub = (%v, %v), want (30, 15)", delta.DX, delta.DY)
	}

	moved := p.Add(delta)
	if moved != q {
		t.Errorf("Add = %v, want %v", moved, q)
	}

	sum := delta.Add(Vector{DX: 1, DY: -1})
	if sum.DX != 31 || sum.DY != 14 {
		t.Errorf("Vector.Add = (%v, %v), want (31, 14)", sum.DX, sum.DY)
	}
}

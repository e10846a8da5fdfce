// Package geom provides the geometry primitives shared by the pointer
// pipeline: points, sizes and rectangles in screen space, plus the
// conversions between normalized landmark space and screen space.
package geom

import "math"

// Point represents a 2D position. Depending on context it is either in
// normalized landmark space (0..1, origin bottom-left) or in screen
// space (pixels, origin top-left).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector represents a 2D displacement between two points.
type Vector struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Size represents the width and height of a screen area.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	Origin Point `json:"origin"`
	Size   Size  `json:"size"`
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Add returns the sum of two displacements.
func (v Vector) Add(w Vector) Vector {
	return Vector{DX: v.DX + w.DX, DY: v.DY + w.DY}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Contains reports whether p lies within the rectangle. The minimum
// edges are inclusive, the maximum edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

// ToScreen converts a point in normalized landmark space to screen
// space. Normalized space has its origin at the bottom-left, screen
// space at the top-left, so the vertical axis is flipped. Inputs
// outside [0,1] are extrapolated, not clamped; landmarks jitter past
// the frame edge and the consumers handle out-of-region points
// themselves.
func ToScreen(normalized Point, screen Size) Point {
	return Point{
		X: normalized.X * screen.Width,
		Y: (1 - normalized.Y) * screen.Height,
	}
}

// ToLocal converts a screen-space point to the local space of a view
// region, with the region's origin at (0,0).
func ToLocal(p Point, region Rect) Point {
	return Point{X: p.X - region.Origin.X, Y: p.Y - region.Origin.Y}
}

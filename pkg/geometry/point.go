// Package geometry provides the value types and pure math shared by every
// colour picker control: points, sizes, rectangles, angle conversions and
// ring/arc hit-testing.
//
// Every function is a total function of its inputs. Nothing here panics or
// returns an error; degenerate input (zero sizes, zero radii) resolves to a
// documented boundary value instead.
package geometry

import (
	"fmt"
	"math"
)

// Point is a coordinate in a widget's local pixel space.
// The origin is the top-left corner and y grows downwards.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// NullPoint is a Point that may be unspecified, for example a knob that has
// no position yet because its container has not been measured.
// The zero value is unspecified, so (0, 0) stays a legitimate coordinate.
type NullPoint struct {
	Point
	Valid bool
}

// UnspecifiedPoint is the "no position yet" value.
var UnspecifiedPoint = NullPoint{}

// Some wraps p as a specified position.
func Some(p Point) NullPoint {
	return NullPoint{Point: p, Valid: true}
}

// Size is the width and height of a container.
// The zero value means "not yet measured".
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsZero reports whether the size has not been measured.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// MinDimension returns the smaller of width and height.
func (s Size) MinDimension() float64 {
	return math.Min(s.Width, s.Height)
}

// Center returns the centre of a container of this size.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// RectFromSize returns the rectangle with the given top-left corner and size.
func RectFromSize(topLeft Point, size Size) Rect {
	return Rect{
		Left:   topLeft.X,
		Top:    topLeft.Y,
		Right:  topLeft.X + size.Width,
		Bottom: topLeft.Y + size.Height,
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Center returns the centre of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies inside the rectangle.
// Left and top edges are inclusive, right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Clamp returns p moved to the nearest point inside the closed rectangle.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: Clamp(p.X, r.Left, r.Right),
		Y: Clamp(p.Y, r.Top, r.Bottom),
	}
}

// TopLeft is the rectangle's origin.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Size is the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

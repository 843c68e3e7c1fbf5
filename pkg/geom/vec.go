// pkg/geom/vec.go
package geom

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Zero is the zero vector.
var Zero = Vec2{}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Lerp interpolates between a and b; t is not clamped.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// FromAngle returns the point at the given angle (radians) on a circle of radius r.
func FromAngle(angle, r float64) Vec2 {
	return Vec2{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
}

// MoveTowards moves current towards target by at most maxDelta.
func MoveTowards(current, target Vec2, maxDelta float64) Vec2 {
	d := target.Sub(current)
	l := d.Len()
	if l <= maxDelta || l < 1e-9 {
		return target
	}
	return current.Add(d.Scale(maxDelta / l))
}

// CirclesOverlap reports whether two circles intersect or touch.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() <= r*r
}

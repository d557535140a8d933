// Package geom provides the 2D vector math shared by the movement, spawn and
// collision rules. World space is y-up with counter-clockwise rotations.
package geom

import "math"

// Vec2 represents a point or direction in world space
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// LengthSquared returns |v|²
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns |v|
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector when v has no
// usable direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

// AngleBetween returns the signed angle in radians that rotates from to to,
// in (-π, π]. Zero-length inputs yield 0.
func AngleBetween(from, to Vec2) float64 {
	if from.LengthSquared() == 0 || to.LengthSquared() == 0 {
		return 0
	}
	return math.Atan2(from.Cross(to), from.Dot(to))
}

// Forward returns the unit "local Y" axis of an entity rotated by r radians.
// An unrotated entity faces +Y.
func Forward(r float64) Vec2 {
	s, c := math.Sincos(r)
	return Vec2{-s, c}
}

// NormalizeAngle wraps r into (-π, π]
func NormalizeAngle(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	} else if r > math.Pi {
		r -= 2 * math.Pi
	}
	return r
}

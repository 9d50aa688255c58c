// Package geom provides the 2D vector math used by the simulation.
package geom

import (
	"math"
	"math/rand/v2"
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Length()
}

// DistanceSquared avoids the sqrt when only comparing distances.
func (v Vec2) DistanceSquared(o Vec2) float64 {
	d := o.Sub(v)
	return d.X*d.X + d.Y*d.Y
}

// Normalize returns the unit vector in v's direction. The zero vector has
// no direction and yields NaN components.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// NormalizeOrZero is Normalize that maps the zero vector to itself.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Lerp interpolates from v to o; t=0 gives v and t=1 gives o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Angle returns the direction of v in radians, counter-clockwise from +X.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// CirclesOverlap reports whether circles at a and b with radii ra and rb
// are closer than the sum of their radii.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	limit := ra + rb
	if limit <= 0 {
		return false
	}
	return a.DistanceSquared(b) < limit*limit
}

// RandRange returns a uniform value in [lo, hi). A collapsed or inverted
// range returns its midpoint.
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}

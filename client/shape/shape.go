// Package shape builds the polygon outlines the sprites are filled from.
//
// Outlines are in image pixels with +Y down, centred on the origin and
// radially ordered, so a triangle fan from the centre fills them.
package shape

import (
	"math"
	"math/rand/v2"

	"github.com/plus3/stardodge/geom"
)

// Ship is an arrowhead pointing up with a notched tail.
func Ship(size float64) []geom.Vec2 {
	h := size / 2
	return []geom.Vec2{
		geom.V(0, -h),
		geom.V(h*0.8, h),
		geom.V(0, h*0.55),
		geom.V(-h*0.8, h),
	}
}

// Star alternates outer and inner radii, first point straight up.
func Star(size float64, points int) []geom.Vec2 {
	outer := size / 2
	inner := outer * 0.45
	out := make([]geom.Vec2, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(points)
		out = append(out, geom.V(r*math.Cos(a), r*math.Sin(a)))
	}
	return out
}

// Asteroid is a lumpy polygon with radii jittered between 75% and 100% of
// half the size.
func Asteroid(size float64, vertices int, rng *rand.Rand) []geom.Vec2 {
	out := make([]geom.Vec2, 0, vertices)
	for i := 0; i < vertices; i++ {
		r := size / 2 * geom.RandRange(rng, 0.75, 1)
		a := float64(i) * 2 * math.Pi / float64(vertices)
		out = append(out, geom.V(r*math.Cos(a), r*math.Sin(a)))
	}
	return out
}

// FanIndices triangulates an outline of n points around a centre vertex
// stored at index n.
func FanIndices(n int) []uint16 {
	indices := make([]uint16, 0, n*3)
	for i := 0; i < n; i++ {
		indices = append(indices, uint16(n), uint16(i), uint16((i+1)%n))
	}
	return indices
}

package arcade

import (
	"math/rand/v2"

	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/geom"
)

// StarScore counts the stars collected in the current run.
type StarScore struct {
	Value int
}

// Session carries results across resets.
type Session struct {
	Best      int
	Runs      int
	LastScore int
}

// Record closes a run with score. It returns true when score is a new best.
func (s *Session) Record(score int) bool {
	s.Runs++
	s.LastScore = score
	if score > s.Best {
		s.Best = score
		return true
	}
	return false
}

// Window is the playfield size in pixels. World space is centred on the
// window with +Y up.
type Window struct {
	Width, Height float64
}

// Ready reports whether the window has a usable size yet.
func (w Window) Ready() bool {
	return w.Width > 0 && w.Height > 0
}

// HalfExtents returns half the width and height.
func (w Window) HalfExtents() geom.Vec2 {
	return geom.V(w.Width/2, w.Height/2)
}

// ToWorld converts screen pixels (origin top-left, +Y down) to world space.
func (w Window) ToWorld(x, y float64) geom.Vec2 {
	return geom.V(x-w.Width/2, w.Height/2-y)
}

// ToScreen is the inverse of ToWorld.
func (w Window) ToScreen(p geom.Vec2) (x, y float64) {
	return p.X + w.Width/2, w.Height/2 - p.Y
}

// Contains reports whether p lies within the window, grown by margin on
// every side.
func (w Window) Contains(p geom.Vec2, margin float64) bool {
	half := w.HalfExtents()
	return p.X >= -half.X-margin && p.X <= half.X+margin &&
		p.Y >= -half.Y-margin && p.Y <= half.Y+margin
}

// PointerAt builds the pointer state for a cursor at screen pixel (x, y).
// A cursor outside the window is never pressed.
func (w Window) PointerAt(x, y float64, pressed bool) Pointer {
	inside := w.Ready() && x >= 0 && y >= 0 && x < w.Width && y < w.Height
	return Pointer{
		Position: w.ToWorld(x, y),
		Inside:   inside,
		Pressed:  inside && pressed,
	}
}

// Pointer is the mouse state sampled by the host for the next tick.
type Pointer struct {
	Position geom.Vec2 // world space
	Inside   bool      // false when the cursor is outside the window
	Pressed  bool      // left button held
}

// Rng is the shared random source of the simulation.
type Rng struct {
	*rand.Rand
}

// NewRng seeds a PCG source.
func NewRng(seed uint64) Rng {
	return Rng{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// ResetGame holds the one-shot system that restarts the run.
type ResetGame struct {
	System ecs.System
}

package arcade_test

import (
	"testing"

	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/geom"
	"github.com/stretchr/testify/assert"
)

func TestWindowCoordinates(t *testing.T) {
	window := arcade.Window{Width: 800, Height: 600}

	assert.Equal(t, geom.V(0, 0), window.ToWorld(400, 300))
	assert.Equal(t, geom.V(-400, 300), window.ToWorld(0, 0))
	assert.Equal(t, geom.V(400, -300), window.ToWorld(800, 600))

	x, y := window.ToScreen(geom.V(-100, 50))
	assert.Equal(t, geom.V(-100, 50), window.ToWorld(x, y))

	assert.True(t, window.Contains(geom.V(400, 300), 0))
	assert.False(t, window.Contains(geom.V(401, 0), 0))
	assert.True(t, window.Contains(geom.V(401, 0), 1))
	assert.False(t, arcade.Window{}.Ready())
}

func TestPointerAt(t *testing.T) {
	window := arcade.Window{Width: 800, Height: 600}

	p := window.PointerAt(400, 100, true)
	assert.Equal(t, geom.V(0, 200), p.Position)
	assert.True(t, p.Inside)
	assert.True(t, p.Pressed)

	p = window.PointerAt(-5, 100, true)
	assert.False(t, p.Inside)
	assert.False(t, p.Pressed, "a cursor outside the window never thrusts")

	assert.False(t, window.PointerAt(800, 0, false).Inside)
	assert.False(t, arcade.Window{}.PointerAt(0, 0, true).Inside)
}

func TestTuningDefaults(t *testing.T) {
	tuning := arcade.DefaultTuning()

	assert.NoError(t, tuning.Validate())
	assert.Equal(t, 10, tuning.AsteroidTarget(0))
	assert.Equal(t, 10, tuning.AsteroidTarget(1))
	assert.Equal(t, 12, tuning.AsteroidTarget(5))
	assert.Equal(t, 45.0, tuning.CollectRadius())
	assert.Equal(t, 40.0, tuning.CollisionRadius())

	tuning.AsteroidDifficultyScaling = 0
	assert.Equal(t, 10, tuning.AsteroidTarget(100))
}

func TestTuningValidate(t *testing.T) {
	tuning := arcade.DefaultTuning()
	tuning.Drag = 1.5
	tuning.AsteroidSpeedMin = 5
	tuning.StarCount = -1

	err := tuning.Validate()
	assert.ErrorContains(t, err, "drag")
	assert.ErrorContains(t, err, "asteroid speed")
	assert.ErrorContains(t, err, "counts")
}

func TestSessionRecord(t *testing.T) {
	var session arcade.Session

	assert.False(t, session.Record(0))
	assert.True(t, session.Record(4))
	assert.False(t, session.Record(4))
	assert.Equal(t, arcade.Session{Best: 4, Runs: 3, LastScore: 4}, session)
}

func TestWorldDefaults(t *testing.T) {
	w := arcade.NewWorld(arcade.Options{Seed: 9})

	assert.Equal(t, arcade.DefaultTuning(), *w.Tuning())
	assert.Equal(t, arcade.DefaultStep, w.Clock().Time().Step)
	assert.Equal(t, uint64(9), w.Seed())
	assert.NotZero(t, arcade.NewWorld(arcade.Options{}).Seed())
}

func TestLiveTuningAppliesNextTick(t *testing.T) {
	w := newTestWorld(t, quiet)
	w.Tuning().AsteroidCount = 4
	w.Tick()

	assert.Equal(t, 4, count[arcade.Asteroid](w))
}

package arcade_test

import (
	"testing"

	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupSpawnsPlayfield(t *testing.T) {
	w := newTestWorld(t, quiet)

	s := ship(t, w)
	assert.Equal(t, geom.Vec2{}, s.Transform.Translation)
	assert.Equal(t, geom.Vec2{}, s.Velocity.Vec2)
	assert.Equal(t, 1, count[arcade.HasDrag](w))
	assert.Equal(t, "Score: 0", label[arcade.ScoreText](t, w))
	assert.Equal(t, "Best: 0", label[arcade.BestText](t, w))
}

func TestCollectStars(t *testing.T) {
	w := newTestWorld(t, quiet)

	near := spawnStar(w, geom.V(30, 0))
	edge := spawnStar(w, geom.V(45, 0))
	w.Tick()

	assert.False(t, w.Storage.Alive(near))
	assert.True(t, w.Storage.Alive(edge), "a star exactly at the collect radius stays")
	assert.Equal(t, 1, w.Score())
	assert.Equal(t, "Score: 1", label[arcade.ScoreText](t, w))
	assert.Equal(t, "Best: 1", label[arcade.BestText](t, w), "best label tracks a live record")
}

func TestCollectedStarsAreReplacedNextTick(t *testing.T) {
	w := newTestWorld(t, func(tuning *arcade.Tuning) {
		tuning.AsteroidCount = 0
		tuning.StarCount = 1
	})
	spawnStar(w, geom.V(10, 10))
	w.Tick()
	require.Equal(t, 1, w.Score())
	require.Equal(t, 0, count[arcade.Star](w))

	parkShip(t, w)
	w.Tick()
	assert.Equal(t, 1, w.Score())
	assert.Equal(t, 1, count[arcade.Star](w))
}

func TestCollisionResetsRun(t *testing.T) {
	type gameOver struct {
		score  int
		record bool
	}
	var ended []gameOver

	w := newTestWorld(t, quiet, func(opts *arcade.Options) {
		opts.OnGameOver = func(score int, record bool) {
			ended = append(ended, gameOver{score, record})
		}
	})
	setScore(w, 3)
	spawnAsteroid(w, geom.V(39, 0))
	spawnAsteroid(w, geom.V(0, -20))
	spawnStar(w, geom.V(400, 200))

	w.Tick()

	require.Equal(t, []gameOver{{3, true}}, ended, "two hits in one tick reset once")
	assert.Equal(t, 0, w.Score())
	assert.Equal(t, arcade.Session{Best: 3, Runs: 1, LastScore: 3}, w.Session())

	assert.Equal(t, 0, count[arcade.Asteroid](w))
	assert.Equal(t, 0, count[arcade.Star](w))
	assert.Equal(t, 1, count[arcade.Spaceship](w))
	assert.Equal(t, "Score: 0", label[arcade.ScoreText](t, w))
	assert.Equal(t, "Best: 3", label[arcade.BestText](t, w))
}

func TestNearMissKeepsRun(t *testing.T) {
	w := newTestWorld(t, quiet)
	setScore(w, 2)
	spawnAsteroid(w, geom.V(40, 0))

	w.Tick()

	assert.Equal(t, 2, w.Score())
	assert.Equal(t, 0, w.Session().Runs)
}

func TestResetPlacesFreshShipAtOrigin(t *testing.T) {
	w := newTestWorld(t, quiet, func(opts *arcade.Options) { opts.Best = 7 })
	w.SetPointer(arcade.Pointer{Position: geom.V(300, 300), Inside: true, Pressed: true})
	for i := 0; i < 5; i++ {
		w.Advance(arcade.DefaultStep)
	}
	require.NotEqual(t, geom.Vec2{}, ship(t, w).Velocity.Vec2)

	w.Reset()

	s := ship(t, w)
	assert.Equal(t, geom.Vec2{}, s.Transform.Translation)
	assert.Equal(t, geom.Vec2{}, s.Velocity.Vec2)
	assert.Equal(t, arcade.Session{Best: 7, Runs: 1, LastScore: 0}, w.Session())
	assert.Equal(t, "Best: 7", label[arcade.BestText](t, w))
}

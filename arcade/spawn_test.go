package arcade_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movingAsteroid struct {
	*arcade.Asteroid
	*arcade.Velocity
	Current *arcade.CurrentPosition
}

func TestNothingSpawnsBeforeWindowIsKnown(t *testing.T) {
	w := arcade.NewWorld(arcade.Options{Seed: 1})
	w.Tick()

	assert.Equal(t, 0, count[arcade.Asteroid](w))
	assert.Equal(t, 0, count[arcade.Star](w))
	assert.Equal(t, 1, count[arcade.Spaceship](w))
}

func TestSpawnAsteroidsFillsTarget(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Tick()

	require.Equal(t, 10, count[arcade.Asteroid](w))

	halfW, halfH := testWidth/2+100.0, testHeight/2+100.0
	for asteroid := range ecs.NewQuery[movingAsteroid](w.Storage).Values() {
		p := asteroid.Current.Vec2
		onVertical := math.Abs(p.X) == halfW && math.Abs(p.Y) <= halfH
		onHorizontal := math.Abs(p.Y) == halfH && math.Abs(p.X) <= halfW
		assert.True(t, onVertical || onHorizontal, "asteroid spawned at %v is not on the spawn ring", p)

		speed := asteroid.Velocity.Length()
		assert.GreaterOrEqual(t, speed, 1.5-1e-9)
		assert.Less(t, speed, 4.0)
	}
}

func TestAsteroidTargetScalesWithScore(t *testing.T) {
	w := newTestWorld(t, nil)
	setScore(w, 5)
	w.Tick()

	assert.Equal(t, 12, count[arcade.Asteroid](w))
}

func TestSpawnAsteroidsTopsUpOnlyTheDeficit(t *testing.T) {
	w := newTestWorld(t, func(tuning *arcade.Tuning) {
		tuning.AsteroidCount = 2
		tuning.StarCount = 0
	})
	spawnAsteroid(w, geom.V(0, 300))
	w.Tick()

	assert.Equal(t, 2, count[arcade.Asteroid](w))
}

func TestSpawnStarsInsideInset(t *testing.T) {
	w := newTestWorld(t, func(tuning *arcade.Tuning) { tuning.AsteroidCount = 0 })
	parkShip(t, w)
	w.Tick()

	stars := ecs.NewQuery[struct {
		*arcade.Star
		*arcade.Transform
		*arcade.Sprite
	}](w.Storage)

	require.Equal(t, 3, stars.Count())
	for star := range stars.Values() {
		assert.Equal(t, -1.0, star.Transform.Z)
		assert.Equal(t, arcade.SpriteStar, star.Sprite.Kind)
		assert.LessOrEqual(t, math.Abs(star.Transform.Translation.X), testWidth/2-150.0)
		assert.LessOrEqual(t, math.Abs(star.Transform.Translation.Y), testHeight/2-150.0)
	}
}

func TestDestroyAsteroidsBeyondMargin(t *testing.T) {
	w := newTestWorld(t, quiet)

	gone := spawnAsteroid(w, geom.V(testWidth/2+121, 0))
	kept := spawnAsteroid(w, geom.V(testWidth/2+119, 0))
	below := spawnAsteroid(w, geom.V(0, -testHeight/2-121))
	w.Tick()

	assert.False(t, w.Storage.Alive(gone))
	assert.True(t, w.Storage.Alive(kept))
	assert.False(t, w.Storage.Alive(below))
}

func TestDestroyedAsteroidsAreReplacedInTheSameTick(t *testing.T) {
	w := newTestWorld(t, func(tuning *arcade.Tuning) {
		tuning.AsteroidCount = 1
		tuning.StarCount = 0
	})
	stray := spawnAsteroid(w, geom.V(5000, 5000))
	w.Tick()

	assert.False(t, w.Storage.Alive(stray))
	assert.Equal(t, 1, count[arcade.Asteroid](w))
}

func TestSameSeedSameField(t *testing.T) {
	positions := func() []geom.Vec2 {
		w := newTestWorld(t, nil)
		w.Tick()
		var out []geom.Vec2
		for asteroid := range ecs.NewQuery[movingAsteroid](w.Storage).Values() {
			out = append(out, asteroid.Current.Vec2)
		}
		return out
	}

	first := positions()
	assert.Len(t, first, 10)
	assert.Equal(t, first, positions())
}

func TestEdgeSpawnPoint(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	window := arcade.Window{Width: 200, Height: 100}

	cases := []struct {
		edge  arcade.Edge
		check func(p geom.Vec2) bool
	}{
		{arcade.EdgeTop, func(p geom.Vec2) bool { return p.Y == 60 && math.Abs(p.X) <= 110 }},
		{arcade.EdgeRight, func(p geom.Vec2) bool { return p.X == 110 && math.Abs(p.Y) <= 60 }},
		{arcade.EdgeBottom, func(p geom.Vec2) bool { return p.Y == -60 && math.Abs(p.X) <= 110 }},
		{arcade.EdgeLeft, func(p geom.Vec2) bool { return p.X == -110 && math.Abs(p.Y) <= 60 }},
	}

	for _, tc := range cases {
		t.Run(tc.edge.String(), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				p := tc.edge.SpawnPoint(rng, window, 10)
				assert.True(t, tc.check(p), "%v", p)
				assert.False(t, window.Contains(p, 9))
			}
		})
	}
}

func TestPointInsideCollapsesOnSmallWindow(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	p := arcade.PointInside(rng, arcade.Window{Width: 100, Height: 100}, 150)
	assert.Equal(t, geom.Vec2{}, p)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Left", arcade.EdgeLeft.String())
	assert.Equal(t, "Edge(9)", arcade.Edge(9).String())
	assert.Equal(t, "Asteroid", arcade.SpriteAsteroid.String())
}

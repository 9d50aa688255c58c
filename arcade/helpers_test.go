package arcade_test

import (
	"testing"

	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/geom"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1280
	testHeight = 720
)

// newTestWorld builds a seeded world with a window. tune may adjust the
// default constants first.
func newTestWorld(t *testing.T, tune func(*arcade.Tuning), opts ...func(*arcade.Options)) *arcade.World {
	t.Helper()

	tuning := arcade.DefaultTuning()
	if tune != nil {
		tune(&tuning)
	}
	options := arcade.Options{Tuning: tuning, Seed: 42}
	for _, opt := range opts {
		opt(&options)
	}

	w := arcade.NewWorld(options)
	w.SetWindow(testWidth, testHeight)
	return w
}

// quiet removes the spawners' targets so a test controls every entity.
func quiet(t *arcade.Tuning) {
	t.AsteroidCount = 0
	t.StarCount = 0
}

func count[T any](w *arcade.World) int {
	return ecs.NewQuery[struct{ C *T }](w.Storage).Count()
}

type shipView struct {
	*arcade.Spaceship
	*arcade.Transform
	*arcade.Velocity
	Current *arcade.CurrentPosition
	Target  *arcade.TargetPosition
}

func ship(t *testing.T, w *arcade.World) shipView {
	t.Helper()
	s, ok := ecs.NewQuery[shipView](w.Storage).Single()
	require.True(t, ok, "expected exactly one spaceship")
	return s
}

// parkShip moves the ship far outside the window where nothing can reach it.
func parkShip(t *testing.T, w *arcade.World) {
	t.Helper()
	far := geom.V(5000, 5000)
	s := ship(t, w)
	s.Transform.Translation, s.Current.Vec2, s.Target.Vec2 = far, far, far
}

func label[Tag any](t *testing.T, w *arcade.World) string {
	t.Helper()
	l, ok := ecs.NewQuery[struct {
		Marker *Tag
		Text   *arcade.Text
	}](w.Storage).Single()
	require.True(t, ok, "expected exactly one label")
	return l.Text.Value
}

func setScore(w *arcade.World, value int) {
	ecs.NewSingleton[arcade.StarScore](w.Storage).Get().Value = value
}

func spawnStar(w *arcade.World, at geom.Vec2) ecs.EntityId {
	return w.Storage.Spawn(
		arcade.Sprite{Kind: arcade.SpriteStar, Size: 40},
		arcade.Transform{Translation: at, Z: -1},
		arcade.Star{},
	)
}

func spawnAsteroid(w *arcade.World, at geom.Vec2) ecs.EntityId {
	return w.Storage.Spawn(
		arcade.Sprite{Kind: arcade.SpriteAsteroid, Size: 80},
		arcade.Transform{Translation: at},
		arcade.Asteroid{},
	)
}

package arcade

import (
	"math/rand/v2"

	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/geom"
)

//go:generate stringer -type=Edge -trimprefix=Edge

// Edge is the side of the window an asteroid enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

// RandomEdge picks an edge uniformly.
func RandomEdge(rng *rand.Rand) Edge {
	return Edge(rng.IntN(int(edgeCount)))
}

// SpawnPoint returns a point margin pixels outside the window along e. The
// free coordinate is uniform over the edge extended by margin at both ends.
func (e Edge) SpawnPoint(rng *rand.Rand, window Window, margin float64) geom.Vec2 {
	half := window.HalfExtents()
	along := func(h float64) float64 {
		return geom.RandRange(rng, -h-margin, h+margin)
	}

	switch e {
	case EdgeTop:
		return geom.V(along(half.X), half.Y+margin)
	case EdgeRight:
		return geom.V(half.X+margin, along(half.Y))
	case EdgeBottom:
		return geom.V(along(half.X), -half.Y-margin)
	default:
		return geom.V(-half.X-margin, along(half.Y))
	}
}

// PointInside returns a uniform point inside the window shrunk by inset on
// every side. An inset larger than the window collapses to its centre line.
func PointInside(rng *rand.Rand, window Window, inset float64) geom.Vec2 {
	half := window.HalfExtents()
	return geom.V(
		geom.RandRange(rng, -half.X+inset, half.X-inset),
		geom.RandRange(rng, -half.Y+inset, half.Y-inset),
	)
}

// DestroyAsteroidsSystem despawns asteroids that drifted past the despawn
// margin.
type DestroyAsteroidsSystem struct {
	Asteroids ecs.Query[struct {
		*Asteroid
		*Transform
	}]
	Window ecs.Singleton[Window]
	Tuning ecs.Singleton[Tuning]
}

func (s *DestroyAsteroidsSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil || !window.Ready() {
		return
	}
	margin := s.Tuning.Get().AsteroidDespawnMargin

	for id, asteroid := range s.Asteroids.Iter() {
		if !window.Contains(asteroid.Transform.Translation, margin) {
			frame.Commands.Delete(id)
		}
	}
}

// SpawnAsteroidsSystem tops the asteroid field up to its score-scaled target.
// Each asteroid enters from a random edge aimed at a random point inside the
// window.
type SpawnAsteroidsSystem struct {
	Asteroids ecs.Query[struct{ *Asteroid }]
	Score     ecs.Singleton[StarScore]
	Window    ecs.Singleton[Window]
	Tuning    ecs.Singleton[Tuning]
	Rng       ecs.Singleton[Rng]
}

func (s *SpawnAsteroidsSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil || !window.Ready() {
		return
	}
	tuning := s.Tuning.Get()
	rng := s.Rng.Get().Rand

	target := tuning.AsteroidTarget(s.Score.Get().Value)
	for live := s.Asteroids.Count(); live < target; live++ {
		spawn := RandomEdge(rng).SpawnPoint(rng, *window, tuning.AsteroidSpawnMargin)
		aim := PointInside(rng, *window, tuning.AsteroidTargetInset)
		speed := geom.RandRange(rng, tuning.AsteroidSpeedMin, tuning.AsteroidSpeedMax)

		frame.Commands.Spawn(
			Sprite{Kind: SpriteAsteroid, Size: tuning.AsteroidSize},
			Transform{Translation: spawn},
			Velocity{aim.Sub(spawn).NormalizeOrZero().Scale(speed)},
			Asteroid{},
			CurrentPosition{spawn},
			TargetPosition{spawn},
		)
	}
}

// SpawnStarsSystem keeps StarCount stars on screen.
type SpawnStarsSystem struct {
	Stars  ecs.Query[struct{ *Star }]
	Window ecs.Singleton[Window]
	Tuning ecs.Singleton[Tuning]
	Rng    ecs.Singleton[Rng]
}

func (s *SpawnStarsSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil || !window.Ready() {
		return
	}
	tuning := s.Tuning.Get()
	rng := s.Rng.Get().Rand

	for live := s.Stars.Count(); live < tuning.StarCount; live++ {
		frame.Commands.Spawn(
			Sprite{Kind: SpriteStar, Size: tuning.StarSize},
			Transform{Translation: PointInside(rng, *window, tuning.StarInset), Z: -1},
			Star{},
		)
	}
}

package arcade

import (
	"fmt"
	"image/color"

	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/geom"
)

var (
	ScoreColor = color.RGBA{R: 255, G: 215, A: 255}
	BestColor  = color.RGBA{R: 200, G: 200, B: 220, A: 255}
)

// spawnPlayfield queues the ship at the origin and the score labels.
func spawnPlayfield(commands *ecs.Commands, tuning *Tuning, best int) {
	origin := geom.Vec2{}
	commands.Spawn(
		Sprite{Kind: SpriteSpaceship, Size: tuning.SpaceshipSize},
		Transform{Translation: origin},
		CurrentPosition{origin},
		TargetPosition{origin},
		Spaceship{},
		Velocity{},
		HasDrag{},
	)
	commands.Spawn(
		Text{Value: scoreLabel(0), FontSize: 50, Color: ScoreColor, Left: 15, Top: 5},
		ScoreText{},
	)
	commands.Spawn(
		Text{Value: bestLabel(best), FontSize: 28, Color: BestColor, Left: 15, Top: 62},
		BestText{},
	)
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func bestLabel(best int) string {
	return fmt.Sprintf("Best: %d", best)
}

// SetupSystem spawns the ship and labels. It runs once at startup.
type SetupSystem struct {
	Tuning  ecs.Singleton[Tuning]
	Session ecs.Singleton[Session]
}

func (s *SetupSystem) Execute(frame *ecs.UpdateFrame) {
	spawnPlayfield(frame.Commands, s.Tuning.Get(), s.Session.Get().Best)
}

// CollectStarsSystem removes stars the ship touches and scores them.
type CollectStarsSystem struct {
	Ship ecs.Query[struct {
		*Spaceship
		*Transform
	}]
	Stars ecs.Query[struct {
		*Star
		*Transform
	}]
	Score  ecs.Singleton[StarScore]
	Tuning ecs.Singleton[Tuning]
}

func (s *CollectStarsSystem) Execute(frame *ecs.UpdateFrame) {
	ship, ok := s.Ship.Single()
	if !ok {
		return
	}
	radius := s.Tuning.Get().CollectRadius()
	score := s.Score.Get()

	for id, star := range s.Stars.Iter() {
		if ship.Transform.Translation.Distance(star.Transform.Translation) < radius {
			frame.Commands.Delete(id)
			score.Value++
		}
	}
}

type UpdateScoreboardSystem struct {
	ScoreLabels ecs.Query[struct {
		*ScoreText
		*Text
	}]
	BestLabels ecs.Query[struct {
		*BestText
		*Text
	}]
	Score   ecs.Singleton[StarScore]
	Session ecs.Singleton[Session]
}

func (s *UpdateScoreboardSystem) Execute(frame *ecs.UpdateFrame) {
	score := s.Score.Get().Value
	best := max(s.Session.Get().Best, score)

	for label := range s.ScoreLabels.Values() {
		label.Text.Value = scoreLabel(score)
	}
	for label := range s.BestLabels.Values() {
		label.Text.Value = bestLabel(best)
	}
}

// CheckCollisionSystem ends the run when an asteroid reaches the ship.
type CheckCollisionSystem struct {
	Ship ecs.Query[struct {
		*Spaceship
		*Transform
	}]
	Asteroids ecs.Query[struct {
		*Asteroid
		*Transform
	}]
	Reset  ecs.Singleton[ResetGame]
	Tuning ecs.Singleton[Tuning]
}

func (s *CheckCollisionSystem) Execute(frame *ecs.UpdateFrame) {
	ship, ok := s.Ship.Single()
	if !ok {
		return
	}
	reset := s.Reset.Get()
	if reset == nil || reset.System == nil {
		return
	}
	radius := s.Tuning.Get().CollisionRadius()

	for asteroid := range s.Asteroids.Values() {
		if ship.Transform.Translation.Distance(asteroid.Transform.Translation) < radius {
			frame.Commands.RunSystem(reset.System)
			return
		}
	}
}

// GameOverFunc is told the final score of each run and whether it set a new
// best.
type GameOverFunc func(score int, record bool)

// ResetGameSystem closes the current run and starts a fresh one. It is not
// scheduled; CheckCollisionSystem queues it through the ResetGame singleton.
type ResetGameSystem struct {
	Positioned ecs.Query[struct{ *Transform }]
	Labels     ecs.Query[struct{ *Text }]
	Score      ecs.Singleton[StarScore]
	Session    ecs.Singleton[Session]
	Tuning     ecs.Singleton[Tuning]

	onGameOver GameOverFunc
}

func (s *ResetGameSystem) Execute(frame *ecs.UpdateFrame) {
	score := s.Score.Get()
	session := s.Session.Get()
	record := session.Record(score.Value)
	if s.onGameOver != nil {
		s.onGameOver(score.Value, record)
	}

	for id := range s.Positioned.Iter() {
		frame.Commands.Delete(id)
	}
	for id := range s.Labels.Iter() {
		frame.Commands.Delete(id)
	}

	score.Value = 0
	spawnPlayfield(frame.Commands, s.Tuning.Get(), session.Best)
}

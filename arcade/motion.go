package arcade

import (
	"math"

	"github.com/plus3/stardodge/ecs"
)

// PlayerInputSystem turns the ship toward the cursor and thrusts toward it
// while the left button is held.
type PlayerInputSystem struct {
	Ship ecs.Query[struct {
		*Spaceship
		*Transform
		*Velocity
	}]
	Pointer ecs.Singleton[Pointer]
	Tuning  ecs.Singleton[Tuning]
}

func (s *PlayerInputSystem) Execute(frame *ecs.UpdateFrame) {
	pointer := s.Pointer.Get()
	if pointer == nil || !pointer.Inside {
		return
	}
	ship, ok := s.Ship.Single()
	if !ok {
		return
	}

	direction := pointer.Position.Sub(ship.Transform.Translation)
	// the sprite points up at rotation zero
	ship.Transform.Rotation = direction.Angle() - math.Pi/2

	if pointer.Pressed {
		ship.Velocity.Accelerate(direction.NormalizeOrZero().Scale(s.Tuning.Get().SpaceshipAcceleration))
	}
}

// MoveObjectsSystem advances every moving entity by one tick of velocity.
type MoveObjectsSystem struct {
	Objects ecs.Query[struct {
		*CurrentPosition
		*TargetPosition
		*Velocity
	}]
}

func (s *MoveObjectsSystem) Execute(frame *ecs.UpdateFrame) {
	for object := range s.Objects.Values() {
		object.CurrentPosition.Vec2 = object.TargetPosition.Vec2
		object.TargetPosition.Vec2 = object.TargetPosition.Add(object.Velocity.Vec2)
	}
}

type ApplyDragSystem struct {
	Objects ecs.Query[struct {
		*HasDrag
		*Velocity
	}]
	Tuning ecs.Singleton[Tuning]
}

func (s *ApplyDragSystem) Execute(frame *ecs.UpdateFrame) {
	drag := s.Tuning.Get().Drag
	for object := range s.Objects.Values() {
		object.Velocity.Vec2 = object.Velocity.Scale(drag)
	}
}

// InterpolateSystem places moving entities between their last two fixed
// positions according to the fixed clock's overstep. It runs every frame.
type InterpolateSystem struct {
	Objects ecs.Query[struct {
		*Transform
		*CurrentPosition
		*TargetPosition
	}]
	Time ecs.Singleton[ecs.FixedTime]
}

func (s *InterpolateSystem) Execute(frame *ecs.UpdateFrame) {
	fixed := s.Time.Get()
	if fixed == nil {
		return
	}
	alpha := fixed.OverstepFraction()

	for object := range s.Objects.Values() {
		object.Transform.Translation = object.CurrentPosition.Lerp(object.TargetPosition.Vec2, alpha)
	}
}

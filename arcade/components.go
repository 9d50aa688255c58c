package arcade

import (
	"image/color"

	"github.com/plus3/stardodge/geom"
)

// Tags
type (
	Spaceship struct{}
	Asteroid  struct{}
	Star      struct{}
	ScoreText struct{}
	BestText  struct{}

	// HasDrag marks entities whose velocity decays every tick.
	HasDrag struct{}
)

// Transform is where an entity is presented this frame. For moving entities
// the translation is interpolated between CurrentPosition and TargetPosition.
type Transform struct {
	Translation geom.Vec2
	Z           float64 // draw order, lower first
	Rotation    float64 // radians, counter-clockwise
}

// CurrentPosition is the position at the previous fixed tick.
type CurrentPosition struct {
	geom.Vec2
}

// TargetPosition is the position at the latest fixed tick.
type TargetPosition struct {
	geom.Vec2
}

// Velocity is in world units per fixed tick.
type Velocity struct {
	geom.Vec2
}

func (v *Velocity) Accelerate(acceleration geom.Vec2) {
	v.Vec2 = v.Vec2.Add(acceleration)
}

//go:generate stringer -type=SpriteKind -trimprefix=Sprite

// SpriteKind selects the image a Sprite is drawn with.
type SpriteKind int

const (
	SpriteSpaceship SpriteKind = iota
	SpriteAsteroid
	SpriteStar
)

// Sprite is drawn as a Size x Size square centred on the Transform.
type Sprite struct {
	Kind SpriteKind
	Size float64
}

// Text is a label anchored at Left/Top screen pixels, independent of the world
// transform.
type Text struct {
	Value    string
	FontSize float64
	Color    color.RGBA
	Left     float64
	Top      float64
}

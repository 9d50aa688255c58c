package arcade

import (
	"errors"
	"fmt"
)

// Tuning holds the gameplay constants. Distances are world pixels, speeds
// are world pixels per fixed tick.
type Tuning struct {
	SpaceshipAcceleration float64 `yaml:"spaceship_acceleration"`
	Drag                  float64 `yaml:"drag"`

	AsteroidCount int `yaml:"asteroid_count"`
	// One extra asteroid per AsteroidDifficultyScaling points. Zero disables scaling.
	AsteroidDifficultyScaling int `yaml:"asteroid_difficulty_scaling"`
	StarCount                 int `yaml:"star_count"`

	AsteroidSpeedMin float64 `yaml:"asteroid_speed_min"`
	AsteroidSpeedMax float64 `yaml:"asteroid_speed_max"`

	SpaceshipSize float64 `yaml:"spaceship_size"`
	AsteroidSize  float64 `yaml:"asteroid_size"`
	StarSize      float64 `yaml:"star_size"`

	// Overlap tolerated between ship and asteroid before it counts as a hit.
	CollisionMargin float64 `yaml:"collision_margin"`

	AsteroidSpawnMargin   float64 `yaml:"asteroid_spawn_margin"`
	AsteroidDespawnMargin float64 `yaml:"asteroid_despawn_margin"`
	AsteroidTargetInset   float64 `yaml:"asteroid_target_inset"`
	StarInset             float64 `yaml:"star_inset"`
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		SpaceshipAcceleration:     1.0,
		Drag:                      0.96,
		AsteroidCount:             10,
		AsteroidDifficultyScaling: 2,
		StarCount:                 3,
		AsteroidSpeedMin:          1.5,
		AsteroidSpeedMax:          4.0,
		SpaceshipSize:             50,
		AsteroidSize:              80,
		StarSize:                  40,
		CollisionMargin:           25,
		AsteroidSpawnMargin:       100,
		AsteroidDespawnMargin:     120,
		AsteroidTargetInset:       100,
		StarInset:                 150,
	}
}

// AsteroidTarget returns how many asteroids should be live at score.
func (t Tuning) AsteroidTarget(score int) int {
	if t.AsteroidDifficultyScaling <= 0 {
		return t.AsteroidCount
	}
	return t.AsteroidCount + score/t.AsteroidDifficultyScaling
}

// CollectRadius is the ship-to-star distance below which a star is collected.
func (t Tuning) CollectRadius() float64 {
	return t.SpaceshipSize/2 + t.StarSize/2
}

// CollisionRadius is the ship-to-asteroid distance below which the run ends.
func (t Tuning) CollisionRadius() float64 {
	return t.SpaceshipSize/2 + t.AsteroidSize/2 - t.CollisionMargin
}

// Validate reports every inconsistent field.
func (t Tuning) Validate() error {
	var errs []error
	if t.Drag <= 0 || t.Drag > 1 {
		errs = append(errs, fmt.Errorf("drag %v outside (0, 1]", t.Drag))
	}
	if t.SpaceshipAcceleration < 0 {
		errs = append(errs, fmt.Errorf("spaceship_acceleration %v is negative", t.SpaceshipAcceleration))
	}
	if t.AsteroidCount < 0 || t.StarCount < 0 || t.AsteroidDifficultyScaling < 0 {
		errs = append(errs, errors.New("counts must not be negative"))
	}
	if t.AsteroidSpeedMin < 0 || t.AsteroidSpeedMin > t.AsteroidSpeedMax {
		errs = append(errs, fmt.Errorf("asteroid speed range [%v, %v) is invalid", t.AsteroidSpeedMin, t.AsteroidSpeedMax))
	}
	if t.SpaceshipSize <= 0 || t.AsteroidSize <= 0 || t.StarSize <= 0 {
		errs = append(errs, errors.New("sprite sizes must be positive"))
	}
	return errors.Join(errs...)
}

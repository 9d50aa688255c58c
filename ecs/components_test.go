package ecs_test

import "github.com/plus3/stardodge/ecs"

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Hull struct {
	Current int
	Max     int
}

type Callsign string

type Debris struct{}

type Beacon struct{}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Hull](registry)
	ecs.RegisterComponent[Callsign](registry)
	ecs.RegisterComponent[Debris](registry)
	ecs.RegisterComponent[Beacon](registry)
	ecs.RegisterComponent[int](registry)
	ecs.RegisterComponent[string](registry)
	return registry
}

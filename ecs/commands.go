package ecs

import "reflect"

// Commands buffers structural changes made while systems iterate. They are
// applied by Flush, either at the end of Scheduler.Once or by ApplyDeferred.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []func()
	systems []System
}

func newCommands() *Commands {
	return &Commands{}
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues fn to run after the structural changes of this flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: entity, component: component})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: entity, compType: compType})
}

// RunSystem queues a one-shot run of system. The system must have been
// bound with Scheduler.Prepare. A system queued several times in one flush
// runs once.
func (c *Commands) RunSystem(system System) {
	for _, queued := range c.systems {
		if queued == system {
			return
		}
	}
	c.systems = append(c.systems, system)
}

// Empty reports whether nothing is queued.
func (c *Commands) Empty() bool {
	return len(c.spawns) == 0 && len(c.deletes) == 0 && len(c.adds) == 0 &&
		len(c.removes) == 0 && len(c.defers) == 0 && len(c.systems) == 0
}

// Flush applies queued commands to storage in order: deletes, removes, adds,
// spawns, deferred functions, one-shot systems. The buffer is reset first so
// anything queued during the flush lands in the next one.
func (c *Commands) Flush(storage *Storage) {
	deletes, removes, adds, spawns, defers, systems := c.deletes, c.removes, c.adds, c.spawns, c.defers, c.systems
	c.deletes, c.removes, c.adds, c.spawns, c.defers, c.systems = nil, nil, nil, nil, nil, nil

	deleted := make(map[EntityId]bool, len(deletes))
	for _, id := range deletes {
		if deleted[id] {
			continue
		}
		storage.Delete(id)
		deleted[id] = true
	}

	for _, cmd := range removes {
		if !deleted[cmd.entity] {
			storage.RemoveComponent(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range adds {
		if !deleted[cmd.entity] {
			storage.AddComponent(cmd.entity, cmd.component)
		}
	}

	for _, components := range spawns {
		storage.Spawn(components...)
	}

	for _, fn := range defers {
		fn()
	}

	for _, system := range systems {
		frame := newUpdateFrame(0, storage)
		system.Execute(frame)
		frame.Commands.Flush(storage)
	}
}

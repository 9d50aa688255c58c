package ecs

import (
	"reflect"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that carries exactly one combination of
// component types, one column per type.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentColumn
	refs    *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

// NewArchetype creates an archetype for the given sorted component types.
// Every type must be registered in registry.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
		refs:    intmap.New[EntityId, weak.Pointer[EntityRef]](16),
	}

	for i, typ := range types {
		factory := registry.factory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[i] = factory()
	}

	return a
}

// Spawn appends one entity and returns its slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	index := -1
	for i, typ := range a.types {
		comp := findComponent(components, typ)
		if comp == nil {
			panic("missing component " + typ.String() + " for archetype")
		}
		index = a.columns[i].Append(comp)
	}
	return uint32(index)
}

func findComponent(components []any, typ reflect.Type) any {
	for _, comp := range components {
		if componentType(comp) == typ {
			return comp
		}
	}
	return nil
}

func (a *Archetype) columnIndex(compType reflect.Type) int {
	return slices.Index(a.types, compType)
}

// GetComponent returns a pointer to the component of compType at index, or nil.
func (a *Archetype) GetComponent(index uint32, compType reflect.Type) any {
	i := a.columnIndex(compType)
	if i < 0 {
		return nil
	}
	return a.columns[i].Get(int(index))
}

// Contains reports whether the slot at index holds a live entity.
func (a *Archetype) Contains(index uint32) bool {
	return len(a.columns) > 0 && a.columns[0].Has(int(index))
}

// Delete frees the slot at index and invalidates any EntityRef pointing at it.
func (a *Archetype) Delete(index uint32) {
	id := NewEntityId(a.id, index)
	if ptr, ok := a.refs.Get(id); ok {
		if ref := ptr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(id)
	}

	for _, col := range a.columns {
		col.Delete(int(index))
	}
}

// HasComponent reports whether the archetype includes compType.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return a.columnIndex(compType) >= 0
}

// ID returns the archetype's identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of the archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Compact removes holes left by deletions. Live EntityRefs are rewritten to
// the new slot indices; refs whose owners were collected are dropped.
func (a *Archetype) Compact() {
	if len(a.columns) == 0 {
		return
	}

	moved := a.columns[0].Compact()
	for _, col := range a.columns[1:] {
		col.Compact()
	}

	type rebound struct {
		id  EntityId
		ptr weak.Pointer[EntityRef]
	}
	var keep []rebound
	for from, to := range moved {
		ptr, ok := a.refs.Get(NewEntityId(a.id, uint32(from)))
		if !ok {
			continue
		}
		if ref := ptr.Value(); ref != nil {
			ref.Id = NewEntityId(a.id, uint32(to))
			keep = append(keep, rebound{id: ref.Id, ptr: ptr})
		}
	}

	a.refs.Clear()
	for _, r := range keep {
		a.refs.Put(r.id, r.ptr)
	}
}

// Iter yields the ids of all live entities in the archetype.
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

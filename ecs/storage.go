package ecs

import (
	"reflect"
	"sort"
	"weak"
)

// Storage is the entity store: archetypes keyed by their component set plus
// singleton components that belong to no entity.
type Storage struct {
	archetypes map[uint32]*Archetype
	order      []*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
}

// NewStorage creates an empty storage backed by registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Archetypes returns all archetypes in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	archetype, ok := s.archetypes[id]
	if !ok {
		archetype = NewArchetype(id, types, s.registry)
		s.archetypes[id] = archetype
		s.order = append(s.order, archetype)
	}
	return archetype
}

// Spawn creates an entity carrying the given components. Components may be
// passed by value or by pointer; the stored copy is always a value.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	archetype := s.archetypeFor(componentTypes(components))
	index := archetype.Spawn(components)
	return NewEntityId(archetype.id, index)
}

// Alive reports whether id names a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	return ok && archetype.Contains(id.Index())
}

// Delete removes the entity. Deleting a dead entity is a no-op.
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return
	}
	archetype.Delete(id.Index())
}

// EntityCount returns the number of live entities across all archetypes.
func (s *Storage) EntityCount() int {
	total := 0
	for _, archetype := range s.order {
		total += archetype.Len()
	}
	return total
}

// AddComponent attaches component to the entity, moving it to the matching
// archetype. Adding a type the entity already has replaces the value.
// Returns the entity's new id, or 0 if the entity is not alive.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	if !s.Alive(id) {
		return 0
	}
	old := s.archetypes[id.ArchetypeId()]
	compType := componentType(component)

	if old.HasComponent(compType) {
		i := old.columnIndex(compType)
		reflect.ValueOf(old.columns[i].Get(int(id.Index()))).Elem().Set(reflect.Indirect(reflect.ValueOf(component)))
		return id
	}

	types := make([]reflect.Type, 0, len(old.types)+1)
	types = append(types, old.types...)
	types = append(types, compType)
	sort.Sort(byTypeName(types))

	components := make([]any, 0, len(types))
	for _, typ := range old.types {
		components = append(components, old.GetComponent(id.Index(), typ))
	}
	components = append(components, component)

	return s.move(id, old, s.archetypeFor(types), components)
}

// RemoveComponent detaches compType from the entity. An entity left with no
// components is deleted and 0 is returned.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	if !s.Alive(id) {
		return 0
	}
	old := s.archetypes[id.ArchetypeId()]
	if !old.HasComponent(compType) {
		return id
	}

	types := make([]reflect.Type, 0, len(old.types)-1)
	components := make([]any, 0, len(old.types)-1)
	for _, typ := range old.types {
		if typ == compType {
			continue
		}
		types = append(types, typ)
		components = append(components, old.GetComponent(id.Index(), typ))
	}

	if len(types) == 0 {
		old.Delete(id.Index())
		return 0
	}

	return s.move(id, old, s.archetypeFor(types), components)
}

// move copies components into target, rebinds any EntityRef and frees the
// old slot.
func (s *Storage) move(id EntityId, from, to *Archetype, components []any) EntityId {
	newId := NewEntityId(to.id, to.Spawn(components))

	ptr, hasRef := from.refs.Get(id)
	if hasRef {
		from.refs.Del(id)
		if ref := ptr.Value(); ref != nil {
			ref.Id = newId
			ref.Archetype = to
			to.refs.Put(newId, ptr)
		}
	}

	from.Delete(id.Index())
	return newId
}

// GetComponent returns a pointer to the entity's component of compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent reports whether the live entity carries compType.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.HasComponent(compType) && archetype.Contains(id.Index())
}

// GetArchetype returns the archetype for exactly these component types, if it exists.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	return s.archetypes[hashTypes(componentTypes(components))]
}

// GetArchetypeById returns the archetype with the given id, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	return s.archetypes[id]
}

// Compact compacts every archetype.
func (s *Storage) Compact() {
	for _, archetype := range s.order {
		archetype.Compact()
	}
}

// CreateEntityRef returns the ref tracking id, creating one if needed.
// Returns nil for dead entities.
func (s *Storage) CreateEntityRef(id EntityId) *EntityRef {
	if !s.Alive(id) {
		return nil
	}
	archetype := s.archetypes[id.ArchetypeId()]

	if ptr, ok := archetype.refs.Get(id); ok {
		if ref := ptr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &EntityRef{Id: id, Archetype: archetype}
	archetype.refs.Put(id, weak.Make(ref))
	return ref
}

// ResolveEntityRef returns the current id of the referenced entity.
func (s *Storage) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if !ref.Alive() {
		return 0, false
	}
	return ref.Id, true
}

// InvalidateEntityRef detaches ref from its entity without deleting the entity.
func (s *Storage) InvalidateEntityRef(ref *EntityRef) bool {
	if !ref.Alive() {
		return false
	}
	if archetype := s.archetypes[ref.Id.ArchetypeId()]; archetype != nil {
		archetype.refs.Del(ref.Id)
	}
	ref.Id = 0
	ref.Archetype = nil
	return true
}

// componentType returns the stored type of a component value.
func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t == nil {
		panic("component cannot be nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return t
}

func componentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		types = append(types, componentType(comp))
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypes is FNV-1a over the runtime type pointers of a sorted type list.
func hashTypes(types []reflect.Type) uint32 {
	const prime uint32 = 16777619
	h := uint32(2166136261)
	for _, t := range types {
		p := uint64(reflect.ValueOf(t).Pointer())
		h ^= uint32(p) ^ uint32(p>>32)
		h *= prime
	}
	return h
}

// ComponentReader is satisfied by Storage and anything else that can look
// up components by entity.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the entity's T, or nil.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	comp, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return comp
}

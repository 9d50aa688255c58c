package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

// View reads entities through a struct shape. Each pointer field of T names
// a component; embedded pointer fields are required and named fields tagged
// `ecs:"optional"` are set to nil when absent. An embedded EntityId field
// receives the id of the entity being visited.
type View[T any] struct {
	storage  *Storage
	fields   []viewField
	idOffset uintptr
	hasId    bool
}

// NewView builds a view over storage. It panics if T is not a valid view shape.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" {
			if tag != "optional" || field.Anonymous {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" on named fields is supported)")
			}
			optional = true
		}

		v.fields = append(v.fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}

	return v
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for _, f := range v.fields {
		if !f.optional && !archetype.HasComponent(f.typ) {
			return false
		}
	}
	return true
}

// columns maps each view field to its column in archetype, -1 when absent.
func (v *View[T]) columns(archetype *Archetype) []int {
	cols := make([]int, len(v.fields))
	for i, f := range v.fields {
		cols[i] = archetype.columnIndex(f.typ)
	}
	return cols
}

func (v *View[T]) fill(base unsafe.Pointer, archetype *Archetype, index int, cols []int) bool {
	for i, f := range v.fields {
		slot := (*unsafe.Pointer)(unsafe.Add(base, f.offset))

		var comp any
		if cols[i] >= 0 {
			comp = archetype.columns[cols[i]].Get(index)
		}
		if comp == nil {
			if !f.optional {
				return false
			}
			*slot = nil
			continue
		}
		*slot = reflect.ValueOf(comp).UnsafePointer()
	}

	if v.hasId {
		*(*EntityId)(unsafe.Add(base, v.idOffset)) = NewEntityId(archetype.id, uint32(index))
	}
	return true
}

// Fill populates *out for the entity. Returns false if the entity is dead or
// lacks a required component.
func (v *View[T]) Fill(id EntityId, out *T) bool {
	archetype, ok := v.storage.archetypes[id.ArchetypeId()]
	if !ok || !archetype.Contains(id.Index()) || !v.matches(archetype) {
		return false
	}
	return v.fill(unsafe.Pointer(out), archetype, int(id.Index()), v.columns(archetype))
}

// Get returns the populated view for the entity, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// GetRef returns the populated view for the referenced entity, or nil.
func (v *View[T]) GetRef(ref *EntityRef) *T {
	id, ok := v.storage.ResolveEntityRef(ref)
	if !ok {
		return nil
	}
	return v.Get(id)
}

func (v *View[T]) iterArchetype(archetype *Archetype, yield func(EntityId, T) bool) bool {
	if len(archetype.columns) == 0 {
		return true
	}
	cols := v.columns(archetype)

	var result T
	base := unsafe.Pointer(&result)
	for index := range archetype.columns[0].Iter() {
		if !v.fill(base, archetype, index, cols) {
			continue
		}
		if !yield(NewEntityId(archetype.id, uint32(index)), result) {
			return false
		}
	}
	return true
}

// Iter yields every matching entity with its populated view.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.order {
			if !v.matches(archetype) {
				continue
			}
			if !v.iterArchetype(archetype, yield) {
				return
			}
		}
	}
}

// Values yields only the populated views.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates an entity from the non-nil component pointers in data.
func (v *View[T]) Spawn(data T) EntityId {
	base := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.fields))
	for _, f := range v.fields {
		ptr := *(*unsafe.Pointer)(unsafe.Add(base, f.offset))
		if ptr == nil {
			if !f.optional {
				panic("required component is nil in View.Spawn")
			}
			continue
		}
		components = append(components, reflect.NewAt(f.typ, ptr).Interface())
	}

	return v.storage.Spawn(components...)
}

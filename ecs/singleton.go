package ecs

import (
	"reflect"
	"sort"
)

type singletonEntry struct {
	ptr reflect.Value // *T
}

// AddSingleton stores value as the singleton of its type, replacing any
// previous value in place so existing Singleton handles stay valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if entry, ok := s.singletons[v.Type()]; ok {
		entry.ptr.Elem().Set(v)
		return
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	s.singletons[v.Type()] = &singletonEntry{ptr: ptr}
}

// ReadSingleton points *out at the stored singleton. out must be a **T.
// Returns false, leaving *out untouched, when no T singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}
	entry, ok := s.singletons[v.Elem().Type().Elem()]
	if !ok {
		return false
	}
	v.Elem().Set(entry.ptr)
	return true
}

func (s *Storage) singletonTypes() []string {
	names := make([]string, 0, len(s.singletons))
	for t := range s.singletons {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// Singleton is a handle on the single T stored outside any entity. Systems
// declare Singleton fields and the Scheduler binds them on registration.
type Singleton[T any] struct {
	storage *Storage
	value   *T
}

// NewSingleton returns a handle on the T singleton, creating it from the
// optional initializer (or the zero value) if it does not exist yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if _, ok := storage.singletons[reflect.TypeFor[T]()]; !ok {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the handle to storage. Called by the Scheduler.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.value = nil
	s.lookup()
}

func (s *Singleton[T]) lookup() {
	if s.storage == nil {
		return
	}
	if entry, ok := s.storage.singletons[reflect.TypeFor[T]()]; ok {
		s.value = entry.ptr.Interface().(*T)
	}
}

// Get returns the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.value == nil {
		s.lookup()
	}
	return s.value
}

// Exists reports whether the singleton has been added to storage.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

package ecs

import "iter"

// Query is a View that remembers which archetypes match, refreshing the list
// only when new archetypes appear. Systems declare Query fields and the
// Scheduler binds them on registration.
type Query[T any] struct {
	view    *View[T]
	storage *Storage
	matched []*Archetype
	seen    int
}

// NewQuery creates a bound query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage. Called by the Scheduler.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.matched = nil
	q.seen = 0
}

func (q *Query[T]) refresh() {
	if q.storage == nil {
		panic("Query used before Init")
	}
	for _, archetype := range q.storage.order[q.seen:] {
		if q.view.matches(archetype) {
			q.matched = append(q.matched, archetype)
		}
	}
	q.seen = len(q.storage.order)
}

// Iter yields every matching entity id and view.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.refresh()
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range q.matched {
			if !q.view.iterArchetype(archetype, yield) {
				return
			}
		}
	}
}

// Values yields only the views.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range q.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}

// Single returns the only matching entity. ok is false when there are zero
// or several matches.
func (q *Query[T]) Single() (value T, ok bool) {
	n := 0
	for _, v := range q.Iter() {
		value = v
		n++
		if n > 1 {
			var zero T
			return zero, false
		}
	}
	return value, n == 1
}

// Get returns the view for one entity, or nil if it does not match.
func (q *Query[T]) Get(id EntityId) *T {
	return q.view.Get(id)
}

package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry maps component types to storage factories. Each Storage
// owns a registry, so independent worlds never share component columns.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentColumn
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentColumn),
	}
}

// RegisterComponent registers T so that entities may carry it.
// Registering the same type twice is harmless.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentColumn {
		return &column[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) factory(t reflect.Type) func() componentColumn {
	return r.factories[t]
}

// componentColumn is the type-erased view of a column used by archetypes.
// Every column of an archetype sees the same sequence of Append and Delete
// calls, so a slot index means the same entity in all of them.
type componentColumn interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Compact() map[int]int
	Iter() iter.Seq[int]
}

const pageSize = 64

type page[T any] struct {
	values [pageSize]T
	used   [pageSize]bool
}

// column stores components of one type in fixed-size pages so pointers
// handed out by Get stay valid while the column grows.
type column[T any] struct {
	pages []*page[T]
	free  []int
	next  int
	live  int
}

func (c *column[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	var index int
	if n := len(c.free); n > 0 {
		index = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		index = c.next
		c.next++
		if index/pageSize >= len(c.pages) {
			c.pages = append(c.pages, &page[T]{})
		}
	}

	p := c.pages[index/pageSize]
	p.values[index%pageSize] = value
	p.used[index%pageSize] = true
	c.live++
	return index
}

func (c *column[T]) slot(index int) (*page[T], int, bool) {
	if index < 0 || index >= c.next {
		return nil, 0, false
	}
	return c.pages[index/pageSize], index % pageSize, true
}

func (c *column[T]) Get(index int) any {
	p, i, ok := c.slot(index)
	if !ok || !p.used[i] {
		return nil
	}
	return &p.values[i]
}

func (c *column[T]) Has(index int) bool {
	p, i, ok := c.slot(index)
	return ok && p.used[i]
}

func (c *column[T]) Delete(index int) {
	p, i, ok := c.slot(index)
	if !ok || !p.used[i] {
		return
	}
	var zero T
	p.values[i] = zero
	p.used[i] = false
	c.free = append(c.free, index)
	c.live--
}

func (c *column[T]) Len() int {
	return c.live
}

// Compact packs live values to the front and returns old index -> new index.
func (c *column[T]) Compact() map[int]int {
	moved := make(map[int]int, c.live)
	pages := make([]*page[T], 0, (c.live+pageSize-1)/pageSize)

	write := 0
	for read := 0; read < c.next; read++ {
		src := c.pages[read/pageSize]
		if !src.used[read%pageSize] {
			continue
		}
		if write/pageSize >= len(pages) {
			pages = append(pages, &page[T]{})
		}
		dst := pages[write/pageSize]
		dst.values[write%pageSize] = src.values[read%pageSize]
		dst.used[write%pageSize] = true
		moved[read] = write
		write++
	}

	c.pages = pages
	c.free = nil
	c.next = write
	c.live = write
	return moved
}

func (c *column[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.next; i++ {
			if !c.pages[i/pageSize].used[i%pageSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

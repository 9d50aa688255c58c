package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/stardodge/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRefLifecycle(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 2})
	ref := storage.CreateEntityRef(id)
	require.NotNil(t, ref)
	assert.Same(t, ref, storage.CreateEntityRef(id), "refs are shared per entity")

	resolved, ok := storage.ResolveEntityRef(ref)
	require.True(t, ok)
	assert.Equal(t, id, resolved)

	assert.True(t, storage.InvalidateEntityRef(ref))
	assert.False(t, storage.InvalidateEntityRef(ref))
	_, ok = storage.ResolveEntityRef(ref)
	assert.False(t, ok)
	assert.True(t, storage.Alive(id), "invalidating a ref keeps the entity")
}

func TestEntityRefFollowsArchetypeMoves(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 7})
	ref := storage.CreateEntityRef(id)

	storage.AddComponent(id, Velocity{DX: 1})
	require.True(t, ref.Alive())
	assert.NotEqual(t, id, ref.Id)
	assert.NotNil(t, ecs.ReadComponent[Velocity](storage, ref.Id))

	storage.RemoveComponent(ref.Id, reflect.TypeFor[Velocity]())
	require.True(t, ref.Alive())
	assert.Equal(t, 7.0, ecs.ReadComponent[Position](storage, ref.Id).X)

	storage.RemoveComponent(ref.Id, reflect.TypeFor[Position]())
	assert.False(t, ref.Alive())
}

func TestEntityRefClearedOnDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{})
	ref := storage.CreateEntityRef(id)
	storage.Delete(id)

	assert.False(t, ref.Alive())
	assert.Nil(t, ref.Archetype)
	assert.Nil(t, storage.CreateEntityRef(id))

	view := ecs.NewView[struct{ *Position }](storage)
	assert.Nil(t, view.GetRef(ref))
}

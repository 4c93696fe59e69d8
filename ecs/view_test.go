package ecs_test

import (
	"testing"

	"github.com/plus3/puckstick/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	moving := storage.Spawn(Position{X: 1}, Velocity{DX: 2})
	still := storage.Spawn(Position{X: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	item := view.Get(moving)
	require.NotNil(t, item)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Velocity.DX)

	assert.Nil(t, view.Get(still))
	assert.Nil(t, view.Get(ecs.NewEntityId(99, 0)))

	item.Position.X = 10
	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, moving).X)
}

func TestViewOptionalAndEntityId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	a := storage.Spawn(Position{X: 1}, Health{Current: 5})
	b := storage.Spawn(Position{X: 2})

	view := ecs.NewView[struct {
		ecs.EntityId
		*Position
		Health *Health `ecs:"optional"`
	}](storage)

	seen := map[ecs.EntityId]bool{}
	for id, item := range view.Iter() {
		assert.Equal(t, id, item.EntityId)
		seen[id] = item.Health != nil
	}

	assert.Equal(t, map[ecs.EntityId]bool{a: true, b: false}, seen)
}

func TestViewIterSkipsDeleted(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ids := []ecs.EntityId{
		storage.Spawn(Position{X: 0}),
		storage.Spawn(Position{X: 1}),
		storage.Spawn(Position{X: 2}),
	}
	storage.Delete(ids[1])

	view := ecs.NewView[struct{ *Position }](storage)

	var xs []float32
	for item := range view.Values() {
		xs = append(xs, item.Position.X)
	}
	assert.Equal(t, []float32{0, 2}, xs)
}

func TestViewIterStopsEarly(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := 0; i < 5; i++ {
		storage.Spawn(Position{X: float32(i)})
	}

	view := ecs.NewView[struct{ *Position }](storage)
	count := 0
	for range view.Iter() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestViewSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[struct {
		*Position
		Velocity *Velocity `ecs:"optional"`
	}](storage)

	id := view.Spawn(struct {
		*Position
		Velocity *Velocity `ecs:"optional"`
	}{Position: &Position{X: 7}})

	assert.Equal(t, float32(7), ecs.ReadComponent[Position](storage, id).X)
	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))

	assert.Panics(t, func() {
		view.Spawn(struct {
			*Position
			Velocity *Velocity `ecs:"optional"`
		}{})
	})
}

func TestViewInvalidDefinitions(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ P Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"sometimes"`
		}](storage)
	})
}

package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/puckstick/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{0, 0},
		{0xFFFFFFFF, ecs.MaxRows - 1},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDE},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,index=%d", tt.archetypeId, tt.index), func(t *testing.T) {
			id := ecs.NewEntityId(tt.archetypeId, tt.index)
			assert.Equal(t, tt.archetypeId, id.ArchetypeId())
			assert.Equal(t, tt.index, id.Index())
			assert.Zero(t, id.Generation())
		})
	}
}

func TestSpawnAndRead(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 2}, &Velocity{DX: 3, DY: 4}, Score(32))
	assert.NotEqual(t, ecs.EntityId(0), id)
	assert.NotZero(t, id.ArchetypeId())
	assert.True(t, storage.Alive(id))

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)

	vel := ecs.ReadComponent[Velocity](storage, id)
	require.NotNil(t, vel)
	assert.Equal(t, float32(3), vel.DX)

	score := ecs.ReadComponent[Score](storage, id)
	require.NotNil(t, score)
	assert.Equal(t, Score(32), *score)

	assert.Nil(t, ecs.ReadComponent[Health](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Health]()))
}

func TestSpawnComponentOrderDoesNotMatter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
	assert.Len(t, storage.Archetypes(), 1)
}

func TestComponentsAreCopied(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	pos := &Position{X: 5}
	id := storage.Spawn(pos)
	pos.X = 99

	assert.Equal(t, float32(5), ecs.ReadComponent[Position](storage, id).X)
}

func TestMutationThroughPointer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Health{Current: 10, Max: 10})

	ecs.ReadComponent[Health](storage, id).Current = 3

	assert.Equal(t, 3, ecs.ReadComponent[Health](storage, id).Current)
}

func TestPointersSurviveGrowth(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	first := storage.Spawn(Position{X: 1})
	ptr := ecs.ReadComponent[Position](storage, first)

	for i := 0; i < 500; i++ {
		storage.Spawn(Position{X: float32(i)})
	}

	ptr.X = 42
	assert.Equal(t, float32(42), ecs.ReadComponent[Position](storage, first).X)
}

func TestDeleteAndReuse(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Name{Value: "a"})
	b := storage.Spawn(Name{Value: "b"})

	storage.Delete(a)
	assert.False(t, storage.Alive(a))
	assert.Nil(t, ecs.ReadComponent[Name](storage, a))
	assert.Equal(t, "b", ecs.ReadComponent[Name](storage, b).Value)

	c := storage.Spawn(Name{Value: "c"})
	assert.Equal(t, a.Index(), c.Index(), "freed row should be reused")
	assert.NotEqual(t, a, c)
	assert.Equal(t, "c", ecs.ReadComponent[Name](storage, c).Value)

	// Deleting twice or deleting unknown ids is a no-op.
	storage.Delete(b)
	storage.Delete(b)
	storage.Delete(ecs.NewEntityId(12345, 0))
	assert.Equal(t, 1, storage.CollectStats().TotalEntityCount)
}

func TestStaleIdDoesNotReachReusedRow(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[struct{ *Name }](storage)

	stale := storage.Spawn(Name{Value: "old"})
	storage.Delete(stale)
	fresh := storage.Spawn(Name{Value: "new"})
	require.Equal(t, stale.Index(), fresh.Index())
	assert.Equal(t, stale.Generation()+1, fresh.Generation())

	assert.False(t, storage.Alive(stale))
	assert.Nil(t, ecs.ReadComponent[Name](storage, stale))
	assert.False(t, storage.HasComponent(stale, reflect.TypeFor[Name]()))
	assert.Nil(t, view.Get(stale))

	// Deleting through the stale id leaves the new entity alone.
	storage.Delete(stale)
	assert.True(t, storage.Alive(fresh))
	assert.Equal(t, "new", ecs.ReadComponent[Name](storage, fresh).Value)
	assert.Equal(t, "new", view.Get(fresh).Value)

	// Iteration yields the current generation.
	for id := range view.Iter() {
		assert.Equal(t, fresh, id)
	}
}

func TestClearKeepsSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{})
	storage.Spawn(Position{}, Velocity{})
	ecs.NewSingleton[Name](storage, Name{Value: "kept"})

	storage.Clear()

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)

	var name *Name
	require.True(t, storage.ReadSingleton(&name))
	assert.Equal(t, "kept", name.Value)
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() }, "no components")
	assert.Panics(t, func() { storage.Spawn(Position{}, Position{}) }, "duplicate type")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) }, "map component")
	assert.Panics(t, func() { storage.Spawn(float32(1)) }, "unregistered type")
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var missing *Health
	assert.False(t, storage.ReadSingleton(&missing))
	assert.Nil(t, missing)

	storage.AddSingleton(Health{Current: 1, Max: 2})
	var health *Health
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 1, health.Current)

	// Replacing keeps the pointer stable.
	storage.AddSingleton(&Health{Current: 5, Max: 5})
	assert.Equal(t, 5, health.Current)

	assert.Panics(t, func() { storage.ReadSingleton(health) })
}

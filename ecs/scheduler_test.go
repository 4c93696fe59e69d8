package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/puckstick/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type Clock struct {
	Frames uint64
	Total  float64
}

type ClockSystem struct {
	Clock ecs.Singleton[Clock]
	order *[]string
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	c := s.Clock.Get()
	c.Frames = frame.Index + 1
	c.Total += frame.DeltaTime
	if s.order != nil {
		*s.order = append(*s.order, "clock")
	}
}

type orderSystem struct {
	name  string
	order *[]string
}

func (s *orderSystem) Execute(frame *ecs.UpdateFrame) {
	*s.order = append(*s.order, s.name)
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Clock](storage)
	scheduler := ecs.NewScheduler(storage)

	var order []string
	scheduler.Register(&orderSystem{name: "first", order: &order})
	scheduler.Register(&ClockSystem{order: &order})
	scheduler.Register(&orderSystem{name: "last", order: &order})

	scheduler.Once(0.5)
	scheduler.Once(0.5)

	assert.Equal(t, []string{"first", "clock", "last", "first", "clock", "last"}, order)
	assert.Equal(t, uint64(2), scheduler.Frames())

	var clock *Clock
	require.True(t, storage.ReadSingleton(&clock))
	assert.Equal(t, uint64(2), clock.Frames)
	assert.InDelta(t, 1.0, clock.Total, 1e-9)
}

func TestSchedulerBindsQueries(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	movement := &MovementSystem{}
	scheduler.Register(movement)

	id := storage.Spawn(Position{}, Velocity{DX: 1, DY: 2})
	storage.Spawn(Health{Current: 100, Max: 100})

	scheduler.Once(1.0)
	scheduler.Once(1.0)

	assert.Equal(t, 2, movement.ExecuteCount)
	assert.Equal(t, Position{X: 2, Y: 4}, *ecs.ReadComponent[Position](storage, id))
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&orderSystem{name: "x", order: new([]string)})

	stats := scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for i := 0; i < 3; i++ {
		scheduler.Once(0)
	}

	stats = scheduler.Stats()
	assert.Equal(t, uint64(3), stats.Frames)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
	assert.Equal(t, "orderSystem", stats.Systems[1].Name)
	for _, s := range stats.Systems {
		assert.Equal(t, int64(3), s.ExecutionCount)
		assert.LessOrEqual(t, s.MinDuration, s.MaxDuration)
		assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Clock](storage)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClockSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Positive(t, scheduler.Frames())
}

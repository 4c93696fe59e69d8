package ecs

import "iter"

// Query is a View meant to live in a System field. The scheduler binds it to
// its storage on Register and refreshes it right before the system runs, so
// Iter sees the state left by the systems that ran earlier in the frame.
type Query[T any] struct {
	view       *View[T]
	storage    *Storage
	archetypes []*Archetype
	generation uint64

	ids   []EntityId
	items []T
	ready bool
}

func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage and drops any cached state.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.generation = 0
	q.ready = false
}

// Execute rebuilds the per-frame cache. The scheduler calls it; call it
// yourself when using a Query outside a scheduler.
func (q *Query[T]) Execute() {
	if q.archetypes == nil || q.generation != q.storage.generation {
		q.archetypes = q.archetypes[:0]
		for _, a := range q.storage.Archetypes() {
			if q.view.matches(a) {
				q.archetypes = append(q.archetypes, a)
			}
		}
		q.generation = q.storage.generation
	}

	q.ids = q.ids[:0]
	q.items = q.items[:0]
	for _, a := range q.archetypes {
		q.view.iterArchetype(a, func(id EntityId, item T) bool {
			q.ids = append(q.ids, id)
			q.items = append(q.items, item)
			return true
		})
	}
	q.ready = true
}

func (q *Query[T]) mustBeReady() {
	if !q.ready {
		panic("ecs: Query used before Execute")
	}
}

func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	q.mustBeReady()
	return func(yield func(EntityId, T) bool) {
		for i := range q.ids {
			if !yield(q.ids[i], q.items[i]) {
				return
			}
		}
	}
}

func (q *Query[T]) Values() iter.Seq[T] {
	q.mustBeReady()
	return func(yield func(T) bool) {
		for _, item := range q.items {
			if !yield(item) {
				return
			}
		}
	}
}

// First returns the first match, for queries that expect a single entity.
func (q *Query[T]) First() (T, bool) {
	q.mustBeReady()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

func (q *Query[T]) Len() int {
	q.mustBeReady()
	return len(q.items)
}

package ecs

import (
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// Storage owns every entity and singleton of one world.
type Storage struct {
	registry *ComponentRegistry

	archetypes *intmap.Map[uint32, *Archetype]
	// Archetype ids in creation order, so iteration is deterministic.
	order []uint32
	// Bumped whenever the archetype set changes; queries use it to drop
	// their cached matches.
	generation uint64

	singletons map[reflect.Type]reflect.Value
}

func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]reflect.Value),
	}
}

func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

func (s *Storage) archetype(id uint32) *Archetype {
	a, _ := s.archetypes.Get(id)
	return a
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := archetypeIdFor(types)
	if a, ok := s.archetypes.Get(id); ok {
		return a
	}
	a := newArchetype(id, types, s.registry)
	s.archetypes.Put(id, a)
	s.order = append(s.order, id)
	s.generation++
	return a
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	out := make([]*Archetype, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.archetype(id))
	}
	return out
}

// Spawn creates an entity from the given components. Components may be
// passed by value or by pointer; the storage keeps its own copy.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("ecs: cannot spawn entity without components")
	}

	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := componentType(comp)
		if slices.Contains(types, t) {
			panic("ecs: duplicate component type " + t.String())
		}
		types = append(types, t)
	}
	sortTypes(types)

	a := s.archetypeFor(types)
	return a.spawn(components)
}

// Delete removes an entity. Unknown and already deleted ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if a := s.archetype(id.ArchetypeId()); a != nil {
		a.delete(id)
	}
}

// Alive reports whether id names a live entity.
func (s *Storage) Alive(id EntityId) bool {
	a := s.archetype(id.ArchetypeId())
	return a != nil && a.live(id)
}

// Clear drops every entity but keeps singletons. Ids handed out before Clear
// must not be used afterwards.
func (s *Storage) Clear() {
	s.archetypes.Clear()
	s.order = s.order[:0]
	s.generation++
}

// GetComponent returns a pointer to the component of type t, or nil.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	a := s.archetype(id.ArchetypeId())
	if a == nil {
		return nil
	}
	return a.component(id, t)
}

func (s *Storage) HasComponent(id EntityId, t reflect.Type) bool {
	return s.GetComponent(id, t) != nil
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent is the typed form of GetComponent.
func ReadComponent[T any](reader ComponentReader, id EntityId) *T {
	comp, _ := reader.GetComponent(id, reflect.TypeFor[T]()).(*T)
	return comp
}

// AddSingleton stores value as the single instance of its type, replacing
// any previous instance in place so cached pointers stay valid.
func (s *Storage) AddSingleton(value any) {
	t := componentType(value)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if existing, ok := s.singletons[t]; ok {
		existing.Elem().Set(v)
		return
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	s.singletons[t] = ptr
}

// ReadSingleton points *target at the stored singleton. target must be a
// pointer to a pointer, e.g. var cfg *Config; storage.ReadSingleton(&cfg).
func (s *Storage) ReadSingleton(target any) bool {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.Elem().Kind() != reflect.Pointer {
		panic("ecs: ReadSingleton needs a pointer to a pointer")
	}
	ptr, ok := s.singletons[tv.Elem().Type().Elem()]
	if !ok {
		return false
	}
	tv.Elem().Set(ptr)
	return true
}

func (s *Storage) singleton(t reflect.Type) (reflect.Value, bool) {
	v, ok := s.singletons[t]
	return v, ok
}

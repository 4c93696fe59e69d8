package ecs

import "reflect"

// ComponentRegistry knows how to build a column for every component type a
// Storage may hold. Registries can be shared between storages.
type ComponentRegistry struct {
	columns map[reflect.Type]func() column
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		columns: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent makes T usable as an entity component. Registering the
// same type twice is harmless.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.columns[reflect.TypeFor[T]()] = func() column {
		return &pagedColumn[T]{}
	}
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.columns[t]
	return ok
}

func (r *ComponentRegistry) newColumn(t reflect.Type) column {
	factory, ok := r.columns[t]
	if !ok {
		panic("ecs: component type " + t.String() + " not registered")
	}
	return factory()
}

package ecs

import (
	"hash/fnv"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Archetype groups every entity that carries exactly the same set of
// component types.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
	index   map[reflect.Type]int
	// generations holds the current generation of every row ever used.
	generations []uint8
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
		index:   make(map[reflect.Type]int, len(types)),
	}
	for i, t := range types {
		a.columns[i] = registry.newColumn(t)
		a.index[t] = i
	}
	return a
}

// spawn stores one entity. components must match a.types one to one.
func (a *Archetype) spawn(components []any) EntityId {
	row := -1
	for _, comp := range components {
		col := a.columns[a.index[componentType(comp)]]
		r := col.append(comp)
		if row >= 0 && r != row {
			panic("ecs: archetype columns out of step")
		}
		row = r
	}
	if row > rowMask {
		panic("ecs: archetype is full")
	}
	for len(a.generations) <= row {
		a.generations = append(a.generations, 0)
	}
	return a.entityId(row)
}

func (a *Archetype) entityId(row int) EntityId {
	return newEntityId(a.id, uint32(row), a.generations[row])
}

// live reports whether id names an entity currently stored in a.
func (a *Archetype) live(id EntityId) bool {
	row := int(id.Index())
	if row >= len(a.generations) || a.generations[row] != id.Generation() {
		return false
	}
	return len(a.columns) > 0 && a.columns[0].has(row)
}

func (a *Archetype) delete(id EntityId) {
	if !a.live(id) {
		return
	}
	row := int(id.Index())
	for _, col := range a.columns {
		col.remove(row)
	}
	a.generations[row]++
}

func (a *Archetype) component(id EntityId, t reflect.Type) any {
	i, ok := a.index[t]
	if !ok || !a.live(id) {
		return nil
	}
	return a.columns[i].get(int(id.Index()))
}

func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types of the archetype, sorted by name.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

func (a *Archetype) HasComponent(t reflect.Type) bool {
	_, ok := a.index[t]
	return ok
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].len()
}

// Iter yields the id of every live entity in row order.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for row := range a.columns[0].rows() {
			if !yield(a.entityId(row)) {
				return
			}
		}
	}
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t == nil {
		panic("ecs: nil component")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("ecs: components cannot be pointers, maps, channels, or functions")
	}
	return t
}

func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(typeKey(a), typeKey(b))
	})
}

func typeKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.String()
}

// archetypeIdFor hashes a sorted type list with FNV-1a. Zero is reserved so
// that EntityId(0) never names a live entity.
func archetypeIdFor(types []reflect.Type) uint32 {
	h := fnv.New32a()
	for _, t := range types {
		h.Write([]byte(typeKey(t)))
		h.Write([]byte{0})
	}
	id := h.Sum32()
	if id == 0 {
		id = 1
	}
	return id
}

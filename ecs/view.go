package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View reads entities through a struct of component pointers.
//
//	view := ecs.NewView[struct {
//		ecs.EntityId
//		*Position
//		Velocity *Velocity `ecs:"optional"`
//	}](storage)
//
// Embedded pointer fields are required. Named pointer fields may be tagged
// `ecs:"optional"` and are left nil when the entity lacks the component. A
// field of type EntityId receives the entity's id.
type View[T any] struct {
	storage *Storage
	fields  []viewField
	idField uintptr
	hasId   bool
}

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
}

func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idField = field.Offset
			v.hasId = true
			continue
		}
		if field.Type.Kind() != reflect.Pointer {
			panic("ecs: View fields must be component pointers or EntityId")
		}

		optional := false
		switch tag := field.Tag.Get("ecs"); tag {
		case "":
		case "optional":
			if field.Anonymous {
				panic("ecs: embedded View fields cannot be optional")
			}
			optional = true
		default:
			panic("ecs: invalid ecs tag value \"" + tag + "\"")
		}

		v.fields = append(v.fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: optional,
		})
	}
	return v
}

// matches reports whether a carries every required component of the view.
func (v *View[T]) matches(a *Archetype) bool {
	if len(a.columns) == 0 {
		return false
	}
	for _, f := range v.fields {
		if !f.optional && !a.HasComponent(f.typ) {
			return false
		}
	}
	return true
}

// columnsFor maps each view field to a column of a, or nil when absent.
func (v *View[T]) columnsFor(a *Archetype) []column {
	cols := make([]column, len(v.fields))
	for i, f := range v.fields {
		if idx, ok := a.index[f.typ]; ok {
			cols[i] = a.columns[idx]
		}
	}
	return cols
}

func (v *View[T]) fill(dst *T, id EntityId, cols []column) bool {
	base := unsafe.Pointer(dst)
	row := int(id.Index())
	for i, f := range v.fields {
		var ptr unsafe.Pointer
		if cols[i] != nil {
			ptr = cols[i].pointer(row)
		}
		if ptr == nil && !f.optional {
			return false
		}
		*(*unsafe.Pointer)(unsafe.Add(base, f.offset)) = ptr
	}
	if v.hasId {
		*(*EntityId)(unsafe.Add(base, v.idField)) = id
	}
	return true
}

// Get returns the view of one entity, or nil if it lacks a required
// component.
func (v *View[T]) Get(id EntityId) *T {
	a := v.storage.archetype(id.ArchetypeId())
	if a == nil || !v.matches(a) || !a.live(id) {
		return nil
	}
	var out T
	if !v.fill(&out, id, v.columnsFor(a)) {
		return nil
	}
	return &out
}

func (v *View[T]) iterArchetype(a *Archetype, yield func(EntityId, T) bool) bool {
	cols := v.columnsFor(a)
	var item T
	for id := range a.Iter() {
		if !v.fill(&item, id, cols) {
			continue
		}
		if !yield(id, item) {
			return false
		}
	}
	return true
}

// Iter yields every matching entity, archetypes in creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, a := range v.storage.Archetypes() {
			if !v.matches(a) {
				continue
			}
			if !v.iterArchetype(a, yield) {
				return
			}
		}
	}
}

func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Spawn creates an entity from the non-nil component pointers of data.
func (v *View[T]) Spawn(data T) EntityId {
	base := unsafe.Pointer(&data)
	components := make([]any, 0, len(v.fields))
	for _, f := range v.fields {
		ptr := *(*unsafe.Pointer)(unsafe.Add(base, f.offset))
		if ptr == nil {
			if !f.optional {
				panic("ecs: required component is nil in View.Spawn")
			}
			continue
		}
		components = append(components, reflect.NewAt(f.typ, ptr).Interface())
	}
	return v.storage.Spawn(components...)
}

package ecs

// EntityId packs the archetype id into the upper 32 bits, the row's
// generation into the next 8 and the row inside that archetype into the
// lower 24. The generation changes each time a row is freed, so an id kept
// after Delete no longer names the entity that later reuses its row. It
// wraps after 256 reuses of the same row.
type EntityId uint64

const (
	rowBits = 24
	rowMask = 1<<rowBits - 1
	// MaxRows is the number of entities one archetype can hold.
	MaxRows = rowMask + 1
)

// NewEntityId builds a generation 0 id. row must be below MaxRows.
func NewEntityId(archetypeId uint32, row uint32) EntityId {
	return newEntityId(archetypeId, row, 0)
}

func newEntityId(archetypeId uint32, row uint32, generation uint8) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(generation)<<rowBits | uint64(row&rowMask))
}

func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index returns the row inside the archetype.
func (e EntityId) Index() uint32 {
	return uint32(e) & rowMask
}

func (e EntityId) Generation() uint8 {
	return uint8(uint32(e) >> rowBits)
}

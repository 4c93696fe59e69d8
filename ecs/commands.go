package ecs

// Commands buffers structural changes made while systems run. The scheduler
// flushes the buffer once every system of the frame has executed.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

func (c *Commands) Delete(id EntityId) {
	c.deletes = append(c.deletes, id)
}

// Defer runs fn after the frame's deletes and spawns have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies deletes, then spawns, then deferred functions, and empties
// the buffer.
func (c *Commands) Flush(storage *Storage) {
	for _, id := range c.deletes {
		storage.Delete(id)
	}
	for _, components := range c.spawns {
		storage.Spawn(components...)
	}
	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}

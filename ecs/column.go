package ecs

import (
	"iter"
	"unsafe"
)

const pageSize = 64

// column holds every value of one component type inside an archetype. Rows
// are stable: deleting a row leaves a hole that a later append may reuse.
type column interface {
	append(value any) int
	remove(row int)
	has(row int) bool
	get(row int) any
	pointer(row int) unsafe.Pointer
	rows() iter.Seq[int]
	len() int
	reset()
}

type page[T any] struct {
	values [pageSize]T
	used   [pageSize]bool
}

// pagedColumn stores values in fixed pages so pointers handed out to views
// survive later appends.
type pagedColumn[T any] struct {
	pages []*page[T]
	free  []int
	next  int
	live  int
}

func (c *pagedColumn[T]) append(value any) int {
	var v T
	switch item := value.(type) {
	case T:
		v = item
	case *T:
		v = *item
	default:
		panic("ecs: column type mismatch")
	}

	var row int
	if n := len(c.free); n > 0 {
		row = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		row = c.next
		c.next++
		if row/pageSize >= len(c.pages) {
			c.pages = append(c.pages, &page[T]{})
		}
	}

	p := c.pages[row/pageSize]
	p.values[row%pageSize] = v
	p.used[row%pageSize] = true
	c.live++
	return row
}

func (c *pagedColumn[T]) slot(row int) (*page[T], int, bool) {
	if row < 0 || row >= c.next {
		return nil, 0, false
	}
	p := c.pages[row/pageSize]
	i := row % pageSize
	return p, i, p.used[i]
}

func (c *pagedColumn[T]) remove(row int) {
	p, i, ok := c.slot(row)
	if !ok {
		return
	}
	var zero T
	p.values[i] = zero
	p.used[i] = false
	c.free = append(c.free, row)
	c.live--
}

func (c *pagedColumn[T]) has(row int) bool {
	_, _, ok := c.slot(row)
	return ok
}

func (c *pagedColumn[T]) get(row int) any {
	p, i, ok := c.slot(row)
	if !ok {
		return nil
	}
	return &p.values[i]
}

func (c *pagedColumn[T]) pointer(row int) unsafe.Pointer {
	p, i, ok := c.slot(row)
	if !ok {
		return nil
	}
	return unsafe.Pointer(&p.values[i])
}

func (c *pagedColumn[T]) rows() iter.Seq[int] {
	return func(yield func(int) bool) {
		for row := 0; row < c.next; row++ {
			if !c.pages[row/pageSize].used[row%pageSize] {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}

func (c *pagedColumn[T]) len() int {
	return c.live
}

func (c *pagedColumn[T]) reset() {
	c.pages = nil
	c.free = nil
	c.next = 0
	c.live = 0
}

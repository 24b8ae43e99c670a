// Package pool provides unified object pooling for Tabular.
// It offers type-safe object recycling for the scratch buffers the search and
// ingestion paths burn through, reducing garbage collection pressure when many
// tables are constructed and queried in a tight loop.
//
// The package provides:
//   - Generic type-safe object pooling with Pool[T]
//   - Pre-configured global pools for common scratch types (position slices,
//     cell slices)
//   - Usage statistics for monitoring
//
// Example usage:
//
//	positions := pool.GetPositions()
//	defer pool.PutPositions(positions)
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool represents a generic object pool with type safety.
// It wraps sync.Pool with statistics tracking and automatic reset
// functionality. The pool is safe for concurrent use.
type Pool[T any] struct {
	pool  sync.Pool
	new   func() T
	reset func(T)
	stats struct {
		allocated int64
		inUse     int64
		hits      int64
	}
}

// New creates a new typed pool with custom allocation and reset functions.
// The new function is called when the pool is empty and a new object is
// needed. The reset function, if non-nil, is called before returning an
// object to the pool.
func New[T any](newFn func() T, reset func(T)) *Pool[T] {
	p := &Pool[T]{
		new:   newFn,
		reset: reset,
	}
	p.pool.New = func() interface{} {
		atomic.AddInt64(&p.stats.allocated, 1)
		return newFn()
	}
	return p
}

// Get retrieves an object from the pool, creating one if the pool is empty.
// The returned object should be handed back with Put when no longer needed.
func (p *Pool[T]) Get() T {
	atomic.AddInt64(&p.stats.inUse, 1)
	obj := p.pool.Get().(T)
	atomic.AddInt64(&p.stats.hits, 1)
	return obj
}

// Put returns an object to the pool for reuse, resetting it first if a reset
// function was provided.
func (p *Pool[T]) Put(obj T) {
	if p.reset != nil {
		p.reset(obj)
	}
	atomic.AddInt64(&p.stats.inUse, -1)
	p.pool.Put(obj)
}

// Stats returns current pool statistics: total objects created, objects
// currently checked out, and successful Get operations.
func (p *Pool[T]) Stats() (allocated, inUse, hits int64) {
	return atomic.LoadInt64(&p.stats.allocated),
		atomic.LoadInt64(&p.stats.inUse),
		atomic.LoadInt64(&p.stats.hits)
}

// Global pools for the scratch types the core burns through.
var (
	// PositionsPool provides pooling for position scratch slices used while
	// assembling search candidates before they are sorted and copied out.
	PositionsPool = New(
		func() []int {
			return make([]int, 0, 64)
		},
		nil,
	)

	// CellsPool provides pooling for cell scratch slices used while
	// flattening rowset input into the canonical row-major buffer.
	CellsPool = New(
		func() []interface{} {
			return make([]interface{}, 0, 256)
		},
		func(s []interface{}) {
			for i := range s {
				s[i] = nil
			}
		},
	)
)

// GetPositions retrieves a zero-length position scratch slice
func GetPositions() []int {
	return PositionsPool.Get()[:0]
}

// PutPositions returns a position scratch slice to the pool
func PutPositions(s []int) {
	PositionsPool.Put(s)
}

// GetCells retrieves a zero-length cell scratch slice
func GetCells() []interface{} {
	return CellsPool.Get()[:0]
}

// PutCells returns a cell scratch slice to the pool
func PutCells(s []interface{}) {
	CellsPool.Put(s)
}

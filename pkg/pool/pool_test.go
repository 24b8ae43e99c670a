package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_GetPut(t *testing.T) {
	p := New(
		func() *[]byte {
			b := make([]byte, 0, 8)
			return &b
		},
		func(b *[]byte) {
			*b = (*b)[:0]
		},
	)

	buf := p.Get()
	*buf = append(*buf, 1, 2, 3)
	p.Put(buf)

	again := p.Get()
	assert.Empty(t, *again)
	p.Put(again)
}

func TestPool_Stats(t *testing.T) {
	p := New(func() int { return 0 }, nil)

	a := p.Get()
	b := p.Get()

	allocated, inUse, hits := p.Stats()
	assert.GreaterOrEqual(t, allocated, int64(1))
	assert.Equal(t, int64(2), inUse)
	assert.Equal(t, int64(2), hits)

	p.Put(a)
	p.Put(b)

	_, inUse, _ = p.Stats()
	assert.Equal(t, int64(0), inUse)
}

func TestPool_Concurrent(t *testing.T) {
	p := New(
		func() map[string]int { return make(map[string]int, 4) },
		func(m map[string]int) {
			for k := range m {
				delete(m, k)
			}
		},
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m := p.Get()
				m["key"] = j
				p.Put(m)
			}
		}()
	}
	wg.Wait()

	_, inUse, _ := p.Stats()
	assert.Equal(t, int64(0), inUse)
}

func TestGetPositions_StartsEmpty(t *testing.T) {
	s := GetPositions()
	require.Empty(t, s)

	s = append(s, 4, 2, 7)
	PutPositions(s)

	again := GetPositions()
	assert.Empty(t, again)
	PutPositions(again)
}

func TestGetCells_ResetClearsReferences(t *testing.T) {
	s := GetCells()
	require.Empty(t, s)

	s = append(s, "a", "b")
	PutCells(s)

	again := GetCells()
	assert.Empty(t, again)
	PutCells(again)
}

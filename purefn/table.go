package purefn

import (
	"sync"
	"sync/atomic"
)

// TableKey is a single hop in a Table path. It must be comparable.
type TableKey any

// Table is a bounded memo trie keyed by argument paths.
//
// Entries live in two generations. Stores go to the head generation; once it
// holds maxSize entries the generations rotate and the older one is discarded.
// Loads consult the head first, then the previous generation.
type Table[O any] struct {
	mu      sync.Mutex
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTable creates a table that holds at most maxSize entries per generation.
func NewTable[O any](maxSize uint32) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Table[O]{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

// Load returns the value stored under keys. Load never creates trie nodes.
func (t *Table[O]) Load(keys []TableKey) (O, bool) {
	mustHaveKeys(keys)

	head := t.headIdx.Load()
	for _, idx := range [2]uint32{head, 1 - head} {
		if v, ok := lookup(t.gens[idx].Load(), keys); ok {
			if e, ok := v.(entry[O]); ok {
				return e.value, true
			}
		}
	}
	var zero O
	return zero, false
}

// Store saves value under keys in the head generation, rotating first when
// the head generation is full.
func (t *Table[O]) Store(keys []TableKey, value O) {
	mustHaveKeys(keys)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size.Load() >= t.maxSize {
		next := 1 - t.headIdx.Load()
		t.gens[next].Store(&sync.Map{})
		t.headIdx.Store(next)
		t.size.Store(0)
	}
	m, last := descend(t.gens[t.headIdx.Load()].Load(), keys)
	if _, loaded := m.Swap(last, entry[O]{value}); !loaded {
		t.size.Add(1)
	}
}

// Len reports the number of entries in the head generation.
func (t *Table[O]) Len() int {
	return int(t.size.Load())
}

// entry wraps stored values so they are never confused with trie nodes.
type entry[O any] struct {
	value O
}

func lookup(m *sync.Map, keys []TableKey) (any, bool) {
	for _, k := range keys[:len(keys)-1] {
		next, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		if m, ok = next.(*sync.Map); !ok {
			return nil, false
		}
	}
	return m.Load(keys[len(keys)-1])
}

func descend(m *sync.Map, keys []TableKey) (*sync.Map, TableKey) {
	for _, k := range keys[:len(keys)-1] {
		next, _ := m.LoadOrStore(k, &sync.Map{})
		child, ok := next.(*sync.Map)
		if !ok {
			// a shorter path ended here; the longer path replaces it
			child = &sync.Map{}
			m.Store(k, child)
		}
		m = child
	}
	return m, keys[len(keys)-1]
}

func mustHaveKeys(keys []TableKey) {
	if len(keys) == 0 {
		panic("table: empty keys")
	}
}

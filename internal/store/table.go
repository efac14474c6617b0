package store

import "sync"

// table is the arena backing one entity type: records keyed by a
// monotonically increasing int64 identity. Identifiers start at 1, are
// assigned in strictly increasing order, and are never reused. No delete
// operation exists, so ids stay contiguous and iteration in id order is
// insertion order.
//
// Every access takes the table lock; the store is called concurrently from
// request handlers and the async activity worker.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

// create assigns the next identity, builds the record with it, and stores
// it. It never fails for well-typed input.
func (t *table[T]) create(build func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// update applies merge to the stored record under the write lock. If id is
// absent nothing is mutated and ok is false.
func (t *table[T]) update(id int64, merge func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	merge(&row)
	t.rows[id] = row
	return row, true
}

// list returns all records in insertion order.
func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for id := int64(1); id < t.nextID; id++ {
		out = append(out, t.rows[id])
	}
	return out
}

// filter returns, in insertion order, every record matching pred.
func (t *table[T]) filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []T
	for id := int64(1); id < t.nextID; id++ {
		if row := t.rows[id]; pred(row) {
			out = append(out, row)
		}
	}
	return out
}

// find returns the first record in insertion order matching pred. With
// duplicate business keys the first match wins.
func (t *table[T]) find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for id := int64(1); id < t.nextID; id++ {
		if row := t.rows[id]; pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Package freq implements the frequency table that accumulates pattern
// counts over a corpus.
package freq

// Table counts occurrences of comparable keys. Counts only grow; a key is
// present only with a count of at least 1. Iteration follows first
// insertion order.
type Table[K comparable] struct {
	counts map[K]int
	order  []K
}

// New returns an empty Table.
func New[K comparable]() *Table[K] {
	return &Table[K]{counts: map[K]int{}}
}

// Inc increments the count of k by one.
func (t *Table[K]) Inc(k K) {
	t.Add(k, 1)
}

// Add increments the count of k by n. Non-positive n is ignored.
func (t *Table[K]) Add(k K, n int) {
	if n <= 0 {
		return
	}
	if _, ok := t.counts[k]; !ok {
		t.order = append(t.order, k)
	}
	t.counts[k] += n
}

// Count returns the count of k, 0 if absent.
func (t *Table[K]) Count(k K) int {
	return t.counts[k]
}

// Len returns the number of distinct keys.
func (t *Table[K]) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *Table[K]) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Merge adds every count of o to t. Keys new to t are appended in o's order.
func (t *Table[K]) Merge(o *Table[K]) {
	if o == nil {
		return
	}
	for _, k := range o.order {
		t.Add(k, o.counts[k])
	}
}

// Each calls fn for every key in insertion order.
func (t *Table[K]) Each(fn func(k K, n int)) {
	for _, k := range t.order {
		fn(k, t.counts[k])
	}
}

// Keys returns the keys in insertion order.
func (t *Table[K]) Keys() []K {
	return append([]K(nil), t.order...)
}

// Equal reports whether both tables hold the same counts, regardless of
// order.
func (t *Table[K]) Equal(o *Table[K]) bool {
	if t.Len() != o.Len() {
		return false
	}
	for k, n := range t.counts {
		if o.counts[k] != n {
			return false
		}
	}
	return true
}

// Package registry provides the ordered name table behind a MAT-file.
package registry

import (
	"iter"

	"github.com/arloliu/matfile/errs"
)

// Registry maps unique, non-empty names to values and remembers the order in
// which names were first inserted. Replacing the value of an existing name
// keeps its original position.
//
// Registry is not safe for concurrent use.
type Registry[V any] struct {
	index  map[string]int // name -> position in names/values
	names  []string
	values []V
}

// New creates an empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{
		index:  make(map[string]int),
		names:  make([]string, 0),
		values: make([]V, 0),
	}
}

// Set inserts value under name, or replaces the current value if name is
// already present. It reports whether an existing value was replaced.
func (r *Registry[V]) Set(name string, value V) (bool, error) {
	if name == "" {
		return false, errs.ErrInvalidName
	}

	if pos, ok := r.index[name]; ok {
		r.values[pos] = value
		return true, nil
	}

	r.insert(name, value)

	return false, nil
}

// SetIfAbsent inserts value under name only when name is not yet present.
// It reports whether the value was inserted.
func (r *Registry[V]) SetIfAbsent(name string, value V) (bool, error) {
	if name == "" {
		return false, errs.ErrInvalidName
	}

	if _, ok := r.index[name]; ok {
		return false, nil
	}

	r.insert(name, value)

	return true, nil
}

func (r *Registry[V]) insert(name string, value V) {
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
	r.values = append(r.values, value)
}

// Get returns the value stored under name.
func (r *Registry[V]) Get(name string) (V, bool) {
	pos, ok := r.index[name]
	if !ok {
		var zero V
		return zero, false
	}

	return r.values[pos], true
}

// Contains reports whether name is present.
func (r *Registry[V]) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Delete removes name and reports whether it was present. Later entries keep
// their relative order.
func (r *Registry[V]) Delete(name string) bool {
	pos, ok := r.index[name]
	if !ok {
		return false
	}

	delete(r.index, name)
	r.names = append(r.names[:pos], r.names[pos+1:]...)

	var zero V
	copy(r.values[pos:], r.values[pos+1:])
	r.values[len(r.values)-1] = zero
	r.values = r.values[:len(r.values)-1]

	for i := pos; i < len(r.names); i++ {
		r.index[r.names[i]] = i
	}

	return true
}

// Len returns the number of entries.
func (r *Registry[V]) Len() int {
	return len(r.names)
}

// Names returns a copy of the names in insertion order.
func (r *Registry[V]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Values returns a snapshot of the values in insertion order.
func (r *Registry[V]) Values() []V {
	out := make([]V, len(r.values))
	copy(out, r.values)

	return out
}

// All iterates over name/value pairs in insertion order.
func (r *Registry[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i, name := range r.names {
			if !yield(name, r.values[i]) {
				return
			}
		}
	}
}

// Reset removes every entry, keeping allocated capacity.
func (r *Registry[V]) Reset() {
	clear(r.index)
	r.names = r.names[:0]

	var zero V
	for i := range r.values {
		r.values[i] = zero
	}
	r.values = r.values[:0]
}

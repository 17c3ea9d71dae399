package core

import "sort"

// Handle identifies an entry in a Registry. Handles are dense and assigned
// in registration order starting at zero.
type Handle int

// Registry is a growable table of named variants. Entries are appended at
// startup and addressed afterwards by handle or by name.
type Registry[T any] struct {
	names   []string
	entries []T
	byName  map[string]Handle
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{byName: map[string]Handle{}}
}

// Register adds an entry under the provided name and returns its handle.
// Registering an existing name replaces the entry and keeps the handle.
// Empty names are rejected with a negative handle.
func (r *Registry[T]) Register(name string, entry T) Handle {
	if name == "" {
		return -1
	}
	if h, ok := r.byName[name]; ok {
		r.entries[h] = entry
		return h
	}
	h := Handle(len(r.entries))
	r.names = append(r.names, name)
	r.entries = append(r.entries, entry)
	r.byName[name] = h
	return h
}

// Get returns the entry stored under a handle.
func (r *Registry[T]) Get(h Handle) (T, bool) {
	var zero T
	if h < 0 || int(h) >= len(r.entries) {
		return zero, false
	}
	return r.entries[h], true
}

// Lookup resolves a name to its handle and entry.
func (r *Registry[T]) Lookup(name string) (Handle, T, bool) {
	h, ok := r.byName[name]
	if !ok {
		var zero T
		return -1, zero, false
	}
	return h, r.entries[h], true
}

// Name returns the name registered for a handle.
func (r *Registry[T]) Name(h Handle) string {
	if h < 0 || int(h) >= len(r.names) {
		return ""
	}
	return r.names[h]
}

// Len reports the number of registered entries.
func (r *Registry[T]) Len() int { return len(r.entries) }

// Names returns the registered names in lexical order.
func (r *Registry[T]) Names() []string {
	out := append([]string(nil), r.names...)
	sort.Strings(out)
	return out
}

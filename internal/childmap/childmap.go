// Package childmap is the hash-indexed child-name-to-node map each tree node
// owns. Spec.md lists it as an external collaborator ("out of scope...
// referenced only by interface", spec §6); this is the Go implementation of
// that interface, grounded on the map[string]*Inode child table the teacher
// keeps on every Inode (nodefs/inode.go) and on the map[string]*TrieNode
// child table used the same way in the pack's gcsfuse folder-trie reference.
//
// A Map carries no synchronization of its own — callers (the tree package)
// hold the owning node's RWLock for the duration of any call.
package childmap

import (
	"sort"
	"strings"
)

// Map is a name -> value map with insert-fails-on-collision and
// remove-fails-on-absence semantics, matching the hmap_insert/hmap_remove
// contract in spec §6.
type Map[V any] struct {
	entries map[string]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{entries: make(map[string]V)}
}

// Get returns the value stored under key, or the zero value and false if
// key is absent.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Insert adds key -> value. It reports false and leaves the map unchanged
// if key is already present.
func (m *Map[V]) Insert(key string, value V) bool {
	if _, exists := m.entries[key]; exists {
		return false
	}
	m.entries[key] = value
	return true
}

// Remove deletes key from the map. It reports false if key was absent.
func (m *Map[V]) Remove(key string) bool {
	if _, exists := m.entries[key]; !exists {
		return false
	}
	delete(m.entries, key)
	return true
}

// Len returns the number of entries currently stored.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Each calls fn once per (key, value) pair, in unspecified order (spec §6:
// "iteration order irrelevant"). fn must not mutate the map.
func (m *Map[V]) Each(fn func(key string, value V)) {
	for k, v := range m.entries {
		fn(k, v)
	}
}

// Keys returns the map's keys in unspecified order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// Render renders the map's keys as a comma-separated string, the
// make_map_contents_string collaborator from spec §6. Keys are sorted so
// that repeated calls against an unchanged map are stable even though the
// underlying map iteration order is not.
func (m *Map[V]) Render() string {
	keys := m.Keys()
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

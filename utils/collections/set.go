package collections

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// NewSet creates a thread-unsafe set. Sets combined through Union, Intersect and
// friends must share the same flavour, so every set handed around by this module
// is built here.
func NewSet[V comparable](vals ...V) mapset.Set[V] {
	return mapset.NewThreadUnsafeSet[V](vals...)
}

// CloneSet rebuilds s as a set owned by the caller. A nil set clones to an empty one.
func CloneSet[V comparable](s mapset.Set[V]) mapset.Set[V] {
	if s == nil {
		return NewSet[V]()
	}
	return NewSet(s.ToSlice()...)
}

func SetOrEmpty[V comparable](s mapset.Set[V], ok bool) mapset.Set[V] {
	if !ok || s == nil {
		return NewSet[V]()
	}
	return s
}

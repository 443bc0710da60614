package dictset

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tuannh982/dictset/utils/collections"
)

// Assign replaces the set stored at key with one built from values. An empty
// values stores an empty set; the key stays in storage.
func (d *DictSet[K, V]) Assign(key K, values interface{}) error {
	e, err := coerceEntry[K, V](key, values)
	if err != nil {
		return err
	}
	d.init()
	d.m[key] = collections.NewSet(e.values...)
	return nil
}

// Add inserts value into the set at key, creating the set if needed.
func (d *DictSet[K, V]) Add(key K, value V) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := checkElement(value); err != nil {
		return err
	}
	d.init()
	s, ok := d.m[key]
	if !ok {
		s = collections.NewSet[V]()
		d.m[key] = s
	}
	s.Add(value)
	return nil
}

// Remove deletes value from the set at key. It fails with ErrMissingEntry when
// key is not stored or value is not a member.
func (d *DictSet[K, V]) Remove(key K, value V) error {
	if err := checkKey(key); err != nil {
		return err
	}
	s, ok := d.m[key]
	if !ok {
		return missingEntry("missing key %v", key)
	}
	if !hashable(value) || !s.Contains(value) {
		return missingEntry("missing value %v for key %v", value, key)
	}
	s.Remove(value)
	return nil
}

// Discard is Remove without the failures.
func (d *DictSet[K, V]) Discard(key K, value V) {
	if !hashable(key) || !hashable(value) {
		return
	}
	if s, ok := d.m[key]; ok {
		s.Remove(value)
	}
}

// Contains reports whether key holds a non-empty set.
func (d *DictSet[K, V]) Contains(key K) bool {
	if !hashable(key) {
		return false
	}
	s, ok := d.m[key]
	return ok && s.Cardinality() > 0
}

// Get returns a copy of the set stored at key, empty or not.
func (d *DictSet[K, V]) Get(key K) (mapset.Set[V], bool) {
	if !hashable(key) {
		return nil, false
	}
	s, ok := d.m[key]
	if !ok {
		return nil, false
	}
	return collections.CloneSet(s), true
}

// GetOr is Get with a fallback: when key is not stored it returns def coerced
// into a set, or nil if def is nil.
func (d *DictSet[K, V]) GetOr(key K, def interface{}) (mapset.Set[V], error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if s, ok := d.Get(key); ok {
		return s, nil
	}
	if def == nil {
		return nil, nil
	}
	values, err := coerceValues[V](def)
	if err != nil {
		return nil, err
	}
	return collections.NewSet(values...), nil
}

// SetDefault is GetOr that also stores the coerced def when key is not stored.
// A nil def stores nothing.
func (d *DictSet[K, V]) SetDefault(key K, def interface{}) (mapset.Set[V], error) {
	s, err := d.GetOr(key, def)
	if err != nil || s == nil {
		return s, err
	}
	if _, ok := d.m[key]; !ok {
		d.init()
		d.m[key] = collections.CloneSet(s)
	}
	return s, nil
}

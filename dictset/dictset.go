// Package dictset provides DictSet, a mapping from keys to sets of values that
// also behaves like a set of (key, value) members.
//
// A key whose set is empty is logically absent: Contains, Len, Keys and every
// comparison ignore it, and the algebra operations drop it from their results.
// Such keys are still kept in storage after Assign or SetDefault until an algebra
// operation touches them.
//
// Accessors hand out copies of the stored sets; nothing returned by a DictSet
// aliases its internal state. A DictSet is not safe for concurrent use.
package dictset

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/dictset/utils/collections"
)

type DictSet[K, V comparable] struct {
	m map[K]mapset.Set[V]
}

// New builds a DictSet from at most one positional source plus any number of
// Keyword arguments. Accepted sources are *DictSet[K, V], map[K][]V,
// map[K]mapset.Set[V], map[K]map[V]struct{}, map[K]string, map[K]interface{},
// []Pair[K, V], []Keyword[K] and []interface{} of pairs.
//
//	d, err := New[string, int](map[string][]int{"one": {1}}, Kw("two", []int{2}))
func New[K, V comparable](args ...interface{}) (*DictSet[K, V], error) {
	d := &DictSet[K, V]{
		m: make(map[K]mapset.Set[V]),
	}
	if err := d.Update(args...); err != nil {
		return nil, err
	}
	return d, nil
}

func MustNew[K, V comparable](args ...interface{}) *DictSet[K, V] {
	d, err := New[K, V](args...)
	if err != nil {
		panic(err)
	}
	return d
}

// Update merges the sources into d by union. Nothing is written unless every
// entry of every argument validates.
func (d *DictSet[K, V]) Update(args ...interface{}) error {
	entries, err := coerceArgs[K, V](args)
	if err != nil {
		return err
	}
	d.merge(entries)
	return nil
}

func (d *DictSet[K, V]) merge(entries []entry[K, V]) {
	d.init()
	for _, e := range entries {
		s, ok := d.m[e.key]
		if !ok {
			s = collections.NewSet[V]()
			d.m[e.key] = s
		}
		for _, v := range e.values {
			s.Add(v)
		}
	}
}

func (d *DictSet[K, V]) init() {
	if d.m == nil {
		d.m = make(map[K]mapset.Set[V])
	}
}

// lookup is the stored set for k, or an empty set when k is not stored. The
// result must not be modified.
func (d *DictSet[K, V]) lookup(k K) mapset.Set[V] {
	s, ok := d.m[k]
	return collections.SetOrEmpty(s, ok)
}

func (d *DictSet[K, V]) Copy() *DictSet[K, V] {
	c := &DictSet[K, V]{
		m: make(map[K]mapset.Set[V], len(d.m)),
	}
	for k, s := range d.m {
		c.m[k] = collections.CloneSet(s)
	}
	return c
}

// Len returns the number of keys with a non-empty set.
func (d *DictSet[K, V]) Len() int {
	return len(d.effectiveKeys())
}

func (d *DictSet[K, V]) IsEmpty() bool {
	return d.Len() == 0
}

// Keys returns the keys with a non-empty set, in no particular order.
func (d *DictSet[K, V]) Keys() []K {
	return d.effectiveKeys()
}

func (d *DictSet[K, V]) effectiveKeys() []K {
	return collections.FilterKeys(d.m, func(s mapset.Set[V]) bool {
		return s.Cardinality() > 0
	})
}

// Each calls fn with a copy of every stored entry, empty ones included, until fn
// returns false.
func (d *DictSet[K, V]) Each(fn func(K, mapset.Set[V]) bool) {
	for k, s := range d.m {
		if !fn(k, collections.CloneSet(s)) {
			return
		}
	}
}

// Delete removes k from storage and reports whether it was stored.
func (d *DictSet[K, V]) Delete(k K) bool {
	if !hashable(k) {
		return false
	}
	if _, ok := d.m[k]; !ok {
		return false
	}
	delete(d.m, k)
	return true
}

func (d *DictSet[K, V]) Clear() {
	d.m = make(map[K]mapset.Set[V])
}

// String renders the stored entries with keys and elements sorted by their fmt
// representation, e.g. {a:[1 2 3] b:[]}.
func (d *DictSet[K, V]) String() string {
	type rendered struct {
		key   string
		entry string
	}
	entries := make([]rendered, 0, len(d.m))
	for k, s := range d.m {
		entries = append(entries, rendered{
			key:   fmt.Sprint(k),
			entry: fmt.Sprintf("%v:[%s]", k, strings.Join(collections.SortedStrings(s.ToSlice()), " ")),
		})
	}
	// keys of different dynamic types may render alike, so ties fall back to the entry
	slices.SortFunc(entries, func(a, b rendered) bool {
		if a.key != b.key {
			return a.key < b.key
		}
		return a.entry < b.entry
	})
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.entry)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

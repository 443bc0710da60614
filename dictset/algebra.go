package dictset

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tuannh982/dictset/utils/collections"
)

type setOp[V comparable] func(a, b mapset.Set[V]) mapset.Set[V]

func unionOp[V comparable](a, b mapset.Set[V]) mapset.Set[V] {
	return a.Union(b)
}

func intersectionOp[V comparable](a, b mapset.Set[V]) mapset.Set[V] {
	return a.Intersect(b)
}

func differenceOp[V comparable](a, b mapset.Set[V]) mapset.Set[V] {
	return a.Difference(b)
}

func symmetricDifferenceOp[V comparable](a, b mapset.Set[V]) mapset.Set[V] {
	return a.SymmetricDifference(b)
}

// combine applies op key by key over the stored keys of a and b and keeps only
// the non-empty results. Every set in the result is freshly allocated.
func combine[K, V comparable](a, b *DictSet[K, V], op setOp[V]) *DictSet[K, V] {
	result := &DictSet[K, V]{
		m: make(map[K]mapset.Set[V]),
	}
	for _, k := range collections.UnionKeys(a.m, b.m) {
		s := op(a.lookup(k), b.lookup(k))
		if s.Cardinality() == 0 {
			continue
		}
		result.m[k] = s
	}
	return result
}

func (d *DictSet[K, V]) apply(other interface{}, op setOp[V]) (*DictSet[K, V], error) {
	o, err := coerce[K, V](other)
	if err != nil {
		return nil, err
	}
	return combine(d, o, op), nil
}

func (d *DictSet[K, V]) applyInPlace(other interface{}, op setOp[V]) error {
	result, err := d.apply(other, op)
	if err != nil {
		return err
	}
	d.m = result.m
	return nil
}

// Union returns a new DictSet holding, for every key, the elements found under
// that key in d or other.
func (d *DictSet[K, V]) Union(other interface{}) (*DictSet[K, V], error) {
	return d.apply(other, unionOp[V])
}

// Intersection returns a new DictSet holding, for every key, the elements found
// under that key in both d and other.
func (d *DictSet[K, V]) Intersection(other interface{}) (*DictSet[K, V], error) {
	return d.apply(other, intersectionOp[V])
}

// Difference returns a new DictSet holding, for every key, the elements of d not
// found under that key in other.
func (d *DictSet[K, V]) Difference(other interface{}) (*DictSet[K, V], error) {
	return d.apply(other, differenceOp[V])
}

// SymmetricDifference returns a new DictSet holding, for every key, the elements
// found under that key in exactly one of d and other.
func (d *DictSet[K, V]) SymmetricDifference(other interface{}) (*DictSet[K, V], error) {
	return d.apply(other, symmetricDifferenceOp[V])
}

func (d *DictSet[K, V]) UnionUpdate(other interface{}) error {
	return d.applyInPlace(other, unionOp[V])
}

func (d *DictSet[K, V]) IntersectionUpdate(other interface{}) error {
	return d.applyInPlace(other, intersectionOp[V])
}

func (d *DictSet[K, V]) DifferenceUpdate(other interface{}) error {
	return d.applyInPlace(other, differenceOp[V])
}

func (d *DictSet[K, V]) SymmetricDifferenceUpdate(other interface{}) error {
	return d.applyInPlace(other, symmetricDifferenceOp[V])
}

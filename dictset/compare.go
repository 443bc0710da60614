package dictset

import (
	"github.com/tuannh982/dictset/utils/collections"
)

// Equal reports whether d and other have the same non-empty entries. Operands
// that cannot be read as a DictSet are never equal.
func (d *DictSet[K, V]) Equal(other interface{}) bool {
	o, err := coerce[K, V](other)
	if err != nil {
		return false
	}
	keys := d.effectiveKeys()
	if len(keys) != o.Len() {
		return false
	}
	for _, k := range keys {
		if !d.lookup(k).Equal(o.lookup(k)) {
			return false
		}
	}
	return true
}

func (d *DictSet[K, V]) NotEqual(other interface{}) bool {
	return !d.Equal(other)
}

// IsSubset reports whether every element under every key of d is also under that
// key in other.
func (d *DictSet[K, V]) IsSubset(other interface{}) (bool, error) {
	o, err := coerce[K, V](other)
	if err != nil {
		return false, err
	}
	return d.subsetOf(o), nil
}

// IsSuperset reports whether other is a subset of d.
func (d *DictSet[K, V]) IsSuperset(other interface{}) (bool, error) {
	o, err := coerce[K, V](other)
	if err != nil {
		return false, err
	}
	return o.subsetOf(d), nil
}

func (d *DictSet[K, V]) subsetOf(o *DictSet[K, V]) bool {
	for _, k := range collections.UnionKeys(d.m, o.m) {
		if !d.lookup(k).IsSubset(o.lookup(k)) {
			return false
		}
	}
	return true
}

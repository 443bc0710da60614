package collections

import (
	"golang.org/x/exp/maps"
)

// UnionKeys returns every key present in at least one of ms, each exactly once.
func UnionKeys[K comparable, V any](ms ...map[K]V) []K {
	if len(ms) == 0 {
		return nil
	}
	seen := make(map[K]struct{})
	arr := make([]K, 0)
	for _, m := range ms {
		for _, k := range maps.Keys(m) {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			arr = append(arr, k)
		}
	}
	return arr
}

// FilterKeys returns the keys of m whose value satisfies keep.
func FilterKeys[K comparable, V any](m map[K]V, keep func(V) bool) []K {
	arr := make([]K, 0, len(m))
	for k, v := range m {
		if keep(v) {
			arr = append(arr, k)
		}
	}
	return arr
}

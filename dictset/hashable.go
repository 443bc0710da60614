package dictset

import (
	"reflect"
)

// hashable reports whether v can be used as a map key without panicking. Type
// parameters are already bound by comparable, so this only matters when K or V is
// an interface type holding, say, a slice.
func hashable(v interface{}) bool {
	if v == nil {
		return true
	}
	return hashableValue(reflect.ValueOf(v))
}

func hashableValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return hashableValue(rv.Elem())
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !hashableValue(rv.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !hashableValue(rv.Index(i)) {
				return false
			}
		}
		return true
	default:
		return rv.Type().Comparable()
	}
}

func checkKey[K comparable](k K) error {
	if !hashable(k) {
		return invalidOperand("unhashable type: '%T'", k)
	}
	return nil
}

func checkElement[V comparable](v V) error {
	if !hashable(v) {
		return invalidOperand("unhashable type: '%T'", v)
	}
	return nil
}

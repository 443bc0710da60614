package dictset

import (
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// Pair is one (key, values) item of a pair sequence source.
type Pair[K, V comparable] struct {
	Key    K
	Values []V
}

func P[K, V comparable](key K, values ...V) Pair[K, V] {
	return Pair[K, V]{Key: key, Values: values}
}

// Keyword is a named argument to New and Update. Values accepts any of the value
// shapes Assign accepts, so Kw("b", "123") contributes the elements "1", "2" and "3".
type Keyword[K comparable] struct {
	Key    K
	Values interface{}
}

func Kw[K comparable](key K, values interface{}) Keyword[K] {
	return Keyword[K]{Key: key, Values: values}
}

// keywordArg is satisfied by every Keyword instantiation, so a keyword built for
// another key type is reported as such instead of as a positional source.
type keywordArg interface {
	keywordKey() interface{}
}

func (kw Keyword[K]) keywordKey() interface{} {
	return kw.Key
}

func keywordMismatch[K comparable](kw keywordArg) error {
	kt := reflect.TypeOf((*K)(nil)).Elem()
	return invalidOperand("keyword %T has key %#v, want key type '%s'; build it with Kw[%s]", kw, kw.keywordKey(), kt, kt)
}

type entry[K, V comparable] struct {
	key    K
	values []V
}

var stringType = reflect.TypeOf("")

// coerceArgs validates everything in args and returns the entries to merge. It
// never touches a DictSet, callers commit only on a nil error.
func coerceArgs[K, V comparable](args []interface{}) ([]entry[K, V], error) {
	var source interface{}
	positional := 0
	keywords := make([]Keyword[K], 0)
	for _, arg := range args {
		if kw, ok := arg.(Keyword[K]); ok {
			keywords = append(keywords, kw)
			continue
		}
		if kw, ok := arg.(keywordArg); ok {
			return nil, keywordMismatch[K](kw)
		}
		source = arg
		positional++
	}
	if positional > 1 {
		return nil, invalidOperand("expected at most 1 arguments, got %d", positional)
	}
	entries := make([]entry[K, V], 0)
	if positional == 1 {
		es, err := coerceSource[K, V](source)
		if err != nil {
			return nil, err
		}
		entries = append(entries, es...)
	}
	for _, kw := range keywords {
		e, err := coerceEntry[K, V](kw.Key, kw.Values)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// coerce turns an algebra or comparison operand into a DictSet. A DictSet of the
// same type is returned as is and must be treated as read-only.
func coerce[K, V comparable](other interface{}) (*DictSet[K, V], error) {
	if d, ok := other.(*DictSet[K, V]); ok && d != nil {
		return d, nil
	}
	entries, err := coerceSource[K, V](other)
	if err != nil {
		return nil, err
	}
	d := &DictSet[K, V]{}
	d.merge(entries)
	return d, nil
}

func coerceSource[K, V comparable](src interface{}) ([]entry[K, V], error) {
	switch s := src.(type) {
	case *DictSet[K, V]:
		if s == nil {
			return nil, invalidOperand("'%T' object is nil", s)
		}
		entries := make([]entry[K, V], 0, len(s.m))
		for k, vs := range s.m {
			entries = append(entries, entry[K, V]{key: k, values: vs.ToSlice()})
		}
		return entries, nil
	case map[K][]V:
		entries := make([]entry[K, V], 0, len(s))
		for k, vs := range s {
			e, err := typedEntry(k, vs)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	case map[K]mapset.Set[V]:
		entries := make([]entry[K, V], 0, len(s))
		for k, vs := range s {
			var values []V
			if vs != nil {
				values = vs.ToSlice()
			}
			e, err := typedEntry(k, values)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	case map[K]map[V]struct{}:
		entries := make([]entry[K, V], 0, len(s))
		for k, vs := range s {
			values := make([]V, 0, len(vs))
			for v := range vs {
				values = append(values, v)
			}
			e, err := typedEntry(k, values)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	case map[K]string:
		entries := make([]entry[K, V], 0, len(s))
		for k, vs := range s {
			e, err := coerceEntry[K, V](k, vs)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	case map[K]interface{}:
		entries := make([]entry[K, V], 0, len(s))
		for k, vs := range s {
			e, err := coerceEntry[K, V](k, vs)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	case []Pair[K, V]:
		entries := make([]entry[K, V], 0, len(s))
		for _, p := range s {
			e, err := typedEntry(p.Key, p.Values)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	case []Keyword[K]:
		entries := make([]entry[K, V], 0, len(s))
		for _, kw := range s {
			e, err := coerceEntry[K, V](kw.Key, kw.Values)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	case []interface{}:
		entries := make([]entry[K, V], 0, len(s))
		for _, item := range s {
			if p, ok := item.(Pair[K, V]); ok {
				e, err := typedEntry(p.Key, p.Values)
				if err != nil {
					return nil, err
				}
				entries = append(entries, e)
				continue
			}
			k, vs, err := unpack[K](item)
			if err != nil {
				return nil, err
			}
			e, err := coerceEntry[K, V](k, vs)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	default:
		return nil, invalidOperand("'%T' object is not a mapping or sequence of pairs", src)
	}
}

func unpack[K comparable](item interface{}) (k K, values interface{}, err error) {
	var rawKey interface{}
	switch p := item.(type) {
	case Keyword[K]:
		return p.Key, p.Values, nil
	case [2]interface{}:
		rawKey, values = p[0], p[1]
	case []interface{}:
		if len(p) != 2 {
			return k, nil, invalidOperand("could not unpack arg to key/value pairs")
		}
		rawKey, values = p[0], p[1]
	case keywordArg:
		return k, nil, keywordMismatch[K](p)
	default:
		return k, nil, invalidOperand("could not unpack arg to key/value pairs")
	}
	if !hashable(rawKey) {
		return k, nil, invalidOperand("unhashable type: '%T'", rawKey)
	}
	key, ok := rawKey.(K)
	if !ok {
		return k, nil, invalidOperand("key type '%T' is not '%T'", rawKey, k)
	}
	return key, values, nil
}

func typedEntry[K, V comparable](k K, vs []V) (entry[K, V], error) {
	if err := checkKey(k); err != nil {
		return entry[K, V]{}, err
	}
	values := make([]V, 0, len(vs))
	for _, v := range vs {
		if err := checkElement(v); err != nil {
			return entry[K, V]{}, err
		}
		values = append(values, v)
	}
	return entry[K, V]{key: k, values: values}, nil
}

func coerceEntry[K, V comparable](k K, raw interface{}) (entry[K, V], error) {
	if err := checkKey(k); err != nil {
		return entry[K, V]{}, err
	}
	values, err := coerceValues[V](raw)
	if err != nil {
		return entry[K, V]{}, err
	}
	return entry[K, V]{key: k, values: values}, nil
}

// coerceValues accepts []V, mapset.Set[V], map[V]struct{}, []interface{} holding V,
// and strings, which are split into characters when V can hold them.
func coerceValues[V comparable](raw interface{}) ([]V, error) {
	var values []V
	switch vs := raw.(type) {
	case []V:
		values = make([]V, 0, len(vs))
		values = append(values, vs...)
	case mapset.Set[V]:
		values = vs.ToSlice()
	case map[V]struct{}:
		values = make([]V, 0, len(vs))
		for v := range vs {
			values = append(values, v)
		}
	case string:
		return splitString[V](vs)
	case []interface{}:
		values = make([]V, 0, len(vs))
		for _, item := range vs {
			if !hashable(item) {
				return nil, invalidOperand("unhashable type: '%T'", item)
			}
			v, ok := item.(V)
			if !ok {
				return nil, invalidOperand("element type '%T' is not '%T'", item, v)
			}
			values = append(values, v)
		}
		return values, nil
	default:
		return nil, invalidOperand("'%T' object is not iterable", raw)
	}
	for _, v := range values {
		if err := checkElement(v); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func splitString[V comparable](s string) ([]V, error) {
	vt := reflect.TypeOf((*V)(nil)).Elem()
	values := make([]V, 0, len(s))
	switch {
	case vt.Kind() == reflect.String, vt.Kind() == reflect.Interface && stringType.AssignableTo(vt):
		for _, r := range s {
			values = append(values, reflect.ValueOf(string(r)).Convert(vt).Interface().(V))
		}
	case vt.Kind() == reflect.Int32:
		for _, r := range s {
			values = append(values, reflect.ValueOf(r).Convert(vt).Interface().(V))
		}
	case vt.Kind() == reflect.Uint8:
		for i := 0; i < len(s); i++ {
			values = append(values, reflect.ValueOf(s[i]).Convert(vt).Interface().(V))
		}
	default:
		return nil, invalidOperand("'string' object is not iterable over '%s'", vt)
	}
	return values, nil
}

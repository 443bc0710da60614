package dictset

import (
	"strings"

	"github.com/tuannh982/dictset/utils/collections"
)

// Parse reads the compact notation used by the CLI and tests. Lowercase letters
// start a key, the digits 1-9 are elements of the latest key, and everything else,
// including 0, is ignored:
//
//	Parse("a0b123c  567") // {a:[] b:[1 2 3] c:[5 6 7]}
func Parse(notation string) (*DictSet[string, string], error) {
	d := MustNew[string, string]()
	key := ""
	for _, c := range notation {
		switch {
		case c >= 'a' && c <= 'z':
			key = string(c)
			if _, ok := d.m[key]; !ok {
				d.m[key] = collections.NewSet[string]()
			}
		case c >= '1' && c <= '9':
			if key == "" {
				return nil, invalidOperand("element %q before any key in %q", c, notation)
			}
			d.m[key].Add(string(c))
		}
	}
	return d, nil
}

func MustParse(notation string) *DictSet[string, string] {
	d, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders d back into notation, sorted, with 0 marking an empty set. It is
// only lossless for single-character keys and elements.
func Format(d *DictSet[string, string]) string {
	var sb strings.Builder
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	for _, k := range collections.SortedStrings(keys) {
		sb.WriteString(k)
		elements := collections.SortedStrings(d.m[k].ToSlice())
		if len(elements) == 0 {
			sb.WriteString("0")
		}
		for _, e := range elements {
			sb.WriteString(e)
		}
	}
	return sb.String()
}

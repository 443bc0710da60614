package dictset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashable(t *testing.T) {
	type flat struct {
		A string
		B int
	}
	type nested struct {
		A interface{}
	}
	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"nil", nil, true},
		{"int", 1, true},
		{"string", "a", true},
		{"pointer", &flat{}, true},
		{"struct", flat{A: "a", B: 1}, true},
		{"array", [2]int{1, 2}, true},
		{"slice", []int{1}, false},
		{"map", map[string]int{}, false},
		{"func", func() {}, false},
		{"struct holding slice", nested{A: []int{1}}, false},
		{"struct holding nil", nested{}, true},
		{"array holding slice", [1]interface{}{[]int{1}}, false},
		{"array holding int", [1]interface{}{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, hashable(tt.v))
		})
	}
}

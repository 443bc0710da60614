package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SortedStrings renders each item with fmt and sorts the result.
func SortedStrings[T any](items []T) []string {
	ss := make([]string, 0, len(items))
	for _, item := range items {
		ss = append(ss, fmt.Sprint(item))
	}
	slices.Sort(ss)
	return ss
}

package collections

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"
)

func TestCloneSet(t *testing.T) {
	s := NewSet(1, 2, 3)
	c := CloneSet(s)
	require.True(t, s.Equal(c))
	c.Add(4)
	require.Equal(t, 3, s.Cardinality())
	require.Equal(t, 4, c.Cardinality())

	// thread-safe sets from callers are rebuilt into the thread-unsafe flavour
	safe := mapset.NewSet("x", "y")
	require.True(t, CloneSet(safe).Union(NewSet("z")).Equal(NewSet("x", "y", "z")))

	require.Equal(t, 0, CloneSet[int](nil).Cardinality())
}

func TestSetOrEmpty(t *testing.T) {
	s := NewSet(1)
	require.Equal(t, s, SetOrEmpty(s, true))
	require.Equal(t, 0, SetOrEmpty(s, false).Cardinality())
	require.Equal(t, 0, SetOrEmpty[int](nil, true).Cardinality())
}

package dictset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannh982/dictset/utils/collections"
)

func TestAssign(t *testing.T) {
	t.Run("overwrite existing item", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		require.Nil(t, d.Assign("c", "42"))
		require.Equal(t, "a1c24", Format(d))
	})

	t.Run("create new item", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		require.Nil(t, d.Assign("z", "42"))
		require.Equal(t, "a1c5678z24", Format(d))
	})

	t.Run("not iterable", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		err := d.Assign("a", 42)
		require.ErrorIs(t, err, ErrInvalidOperand)
		require.Equal(t, "'int' object is not iterable: invalid operand", err.Error())
		require.Equal(t, "a1c5678", Format(d))
	})

	t.Run("unhashable key", func(t *testing.T) {
		d := MustNew[interface{}, string]()
		require.ErrorIs(t, d.Assign([]string{}, "8"), ErrInvalidOperand)
	})

	t.Run("empty set is kept but not effective", func(t *testing.T) {
		d := MustNew[string, string]()
		require.Nil(t, d.Assign("a", []string{}))
		require.Equal(t, "a0", Format(d))
		s, ok := d.Get("a")
		require.True(t, ok)
		require.Equal(t, 0, s.Cardinality())
		require.False(t, d.Contains("a"))
		require.True(t, d.Equal(map[string][]string{}))
		require.True(t, d.Equal(MustNew[string, string]()))
	})

	t.Run("populated set emptied", func(t *testing.T) {
		d := MustParse("a12")
		require.Nil(t, d.Assign("a", ""))
		require.Equal(t, "a0", Format(d))
	})

	t.Run("assigned set is not aliased", func(t *testing.T) {
		src := collections.NewSet("1", "2")
		d := MustNew[string, string]()
		require.Nil(t, d.Assign("a", src))
		src.Add("3")
		require.Equal(t, "a12", Format(d))
	})
}

func TestAdd(t *testing.T) {
	t.Run("add to existing set", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		require.Nil(t, d.Add("c", "9"))
		require.Equal(t, "a1c56789", Format(d))
	})

	t.Run("idempotent", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		require.Nil(t, d.Add("c", "7"))
		require.Nil(t, d.Add("c", "7"))
		require.Equal(t, "a1c5678", Format(d))
	})

	t.Run("create new set", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		require.Nil(t, d.Add("d", "7"))
		require.Equal(t, "a1c5678d7", Format(d))
	})

	t.Run("zero value", func(t *testing.T) {
		var d DictSet[int, int]
		require.Nil(t, d.Add(1, 1))
		require.True(t, d.Contains(1))
	})

	t.Run("unhashable value", func(t *testing.T) {
		d := MustNew[string, interface{}]()
		err := d.Add("d", []string{})
		require.ErrorIs(t, err, ErrInvalidOperand)
		require.Contains(t, err.Error(), "unhashable type: '[]string'")
		require.Equal(t, 0, len(d.m))
	})

	t.Run("unhashable key", func(t *testing.T) {
		d := MustNew[interface{}, string]()
		err := d.Add([]string{}, "8")
		require.ErrorIs(t, err, ErrInvalidOperand)
		require.Contains(t, err.Error(), "unhashable type: '[]string'")
	})
}

func TestRemove(t *testing.T) {
	t.Run("remove member", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		require.Nil(t, d.Remove("c", "8"))
		require.Equal(t, "a1c567", Format(d))
	})

	t.Run("missing value", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		require.Nil(t, d.Remove("c", "8"))
		err := d.Remove("c", "8")
		require.ErrorIs(t, err, ErrMissingEntry)
		require.Contains(t, err.Error(), "missing value 8")
	})

	t.Run("missing key", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		err := d.Remove("d", "8")
		require.ErrorIs(t, err, ErrMissingEntry)
		require.Contains(t, err.Error(), "missing key d")
	})

	t.Run("unhashable key", func(t *testing.T) {
		d := MustNew[interface{}, string]()
		require.ErrorIs(t, d.Remove([]string{}, "8"), ErrInvalidOperand)
	})

	t.Run("unhashable value", func(t *testing.T) {
		d := MustNew[string, interface{}](Kw("a", []interface{}{1}))
		require.ErrorIs(t, d.Remove("a", []int{1}), ErrMissingEntry)
	})

	t.Run("last member leaves an empty set", func(t *testing.T) {
		d := MustNew[string, int](map[string][]int{"a": {1}})
		require.ErrorIs(t, d.Remove("a", 2), ErrMissingEntry)
		require.ErrorIs(t, d.Remove("z", 1), ErrMissingEntry)
		require.Nil(t, d.Remove("a", 1))
		require.False(t, d.Contains("a"))
		_, ok := d.Get("a")
		require.True(t, ok)
	})
}

func TestDiscard(t *testing.T) {
	d := MustParse("a1 c5666788")
	d.Discard("c", "8")
	require.Equal(t, "a1c567", Format(d))
	d.Discard("c", "8")
	d.Discard("d", "8")
	require.Equal(t, "a1c567", Format(d))

	anyKeys := MustNew[interface{}, interface{}](Kw[interface{}]("a", "1"))
	anyKeys.Discard([]string{}, "8")
	anyKeys.Discard("a", []string{})
	require.True(t, anyKeys.Contains("a"))
}

func TestContains(t *testing.T) {
	d := MustParse("a1b0")
	require.True(t, d.Contains("a"))
	require.False(t, d.Contains("b"))
	require.False(t, d.Contains("z"))
	require.False(t, MustNew[interface{}, int]().Contains([]int{}))
}

func TestGet(t *testing.T) {
	d := MustParse("a1 c5666788")

	s, ok := d.Get("c")
	require.True(t, ok)
	require.True(t, s.Equal(collections.NewSet("5", "6", "7", "8")))
	s.Add("9")
	require.Equal(t, "a1c5678", Format(d))

	s, ok = d.Get("d")
	require.False(t, ok)
	require.Nil(t, s)

	_, ok = MustNew[interface{}, int]().Get([]int{})
	require.False(t, ok)
}

func TestGetOr(t *testing.T) {
	d := MustParse("a1 c5666788")

	s, err := d.GetOr("c", "9")
	require.Nil(t, err)
	require.True(t, s.Equal(collections.NewSet("5", "6", "7", "8")))

	s, err = d.GetOr("d", nil)
	require.Nil(t, err)
	require.Nil(t, s)

	s, err = d.GetOr("d", []string{})
	require.Nil(t, err)
	require.Equal(t, 0, s.Cardinality())

	s, err = d.GetOr("d", "234")
	require.Nil(t, err)
	require.True(t, s.Equal(collections.NewSet("2", "3", "4")))
	require.Equal(t, "a1c5678", Format(d))

	_, err = d.GetOr("d", 234)
	require.ErrorIs(t, err, ErrInvalidOperand)

	_, err = MustNew[interface{}, int]().GetOr([]int{}, nil)
	require.ErrorIs(t, err, ErrInvalidOperand)
}

func TestSetDefault(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		s, err := d.SetDefault("c", nil)
		require.Nil(t, err)
		require.True(t, s.Equal(collections.NewSet("5", "6", "7", "8")))
	})

	t.Run("absent without default", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		s, err := d.SetDefault("d", nil)
		require.Nil(t, err)
		require.Nil(t, s)
		require.Equal(t, "a1c5678", Format(d))
	})

	t.Run("absent with empty default", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		s, err := d.SetDefault("d", []string{})
		require.Nil(t, err)
		require.Equal(t, 0, s.Cardinality())
		require.Equal(t, "a1c5678d0", Format(d))
	})

	t.Run("absent with default", func(t *testing.T) {
		d := MustParse("a1 c5666788")
		s, err := d.SetDefault("d", "234")
		require.Nil(t, err)
		require.True(t, s.Equal(collections.NewSet("2", "3", "4")))
		require.Equal(t, "a1c5678d234", Format(d))

		s.Add("9")
		require.Equal(t, "a1c5678d234", Format(d))

		s, err = d.SetDefault("d", "5")
		require.Nil(t, err)
		require.True(t, s.Equal(collections.NewSet("2", "3", "4")))
	})

	t.Run("invalid default", func(t *testing.T) {
		d := MustParse("a1")
		_, err := d.SetDefault("d", 5)
		require.ErrorIs(t, err, ErrInvalidOperand)
		require.Equal(t, "a1", Format(d))
	})
}

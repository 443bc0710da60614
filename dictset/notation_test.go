package dictset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("a0b123c  567")
	require.Nil(t, err)
	require.Equal(t, "{a:[] b:[1 2 3] c:[5 6 7]}", d.String())

	d, err = Parse("")
	require.Nil(t, err)
	require.Equal(t, 0, len(d.m))

	d, err = Parse("b312a0c756, ZZ!")
	require.Nil(t, err)
	require.Equal(t, "a0b123c567", Format(d))

	_, err = Parse("1a")
	require.ErrorIs(t, err, ErrInvalidOperand)
	require.Panics(t, func() {
		MustParse("9")
	})
}

func TestFormat(t *testing.T) {
	require.Equal(t, "", Format(MustNew[string, string]()))
	require.Equal(t, "a0b12", Format(MustNew[string, string](Kw("b", "2211"), Kw("a", ""))))
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBinaryMask_CopiesInput(t *testing.T) {
	pix := []bool{true, false, false, true}
	m, err := NewBinaryMask(2, 2, pix)
	require.NoError(t, err)

	pix[0] = false
	require.True(t, m.At(0, 0))
	require.True(t, m.At(1, 1))
	require.False(t, m.At(1, 0))
	require.Equal(t, 2, m.Foreground())
}

func TestNewBinaryMask_BadLength(t *testing.T) {
	_, err := NewBinaryMask(3, 3, make([]bool, 8))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMaskFromRows(t *testing.T) {
	m, err := MaskFromRows([][]bool{
		{false, true, false},
		{false, false, false},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())
	require.True(t, m.At(1, 0))
	require.False(t, m.At(-1, 0))
	require.False(t, m.At(3, 1))
	require.False(t, m.Empty())

	_, err = MaskFromRows([][]bool{{true}, {true, false}})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	empty, err := MaskFromRows(nil)
	require.NoError(t, err)
	require.True(t, empty.Empty())
}

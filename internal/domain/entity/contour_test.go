package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundaryPerimeter_Closed(t *testing.T) {
	square := Boundary{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	require.InDelta(t, 8.0, square.Perimeter(), 1e-12)
	require.Zero(t, Boundary{{1, 1}}.Perimeter())
}

func TestShapeVector_RoundTrip(t *testing.T) {
	c := &NormalizedContour{InterpOutline: Boundary{{1, 10}, {2, 20}, {3, 30}}}
	v := c.ShapeVector()
	require.Equal(t, []float64{1, 2, 3, 10, 20, 30}, v)

	b, err := ContourFromShapeVector(v)
	require.NoError(t, err)
	require.Equal(t, c.InterpOutline, b)

	_, err = ContourFromShapeVector([]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewShapeMatrix(t *testing.T) {
	a := &NormalizedContour{InterpOutline: Boundary{{0, 0}, {1, 0}, {1, 1}}}
	b := &NormalizedContour{InterpOutline: Boundary{{0, 0}, {2, 0}, {2, 2}}}
	m, err := NewShapeMatrix(a, b)
	require.NoError(t, err)
	n, d := m.Dims()
	require.Equal(t, 2, n)
	require.Equal(t, 6, d)

	short := &NormalizedContour{InterpOutline: Boundary{{0, 0}, {1, 1}}}
	_, err = NewShapeMatrix(a, short)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewShapeMatrix_NilContour(t *testing.T) {
	a := &NormalizedContour{InterpOutline: Boundary{{0, 0}, {1, 0}, {1, 1}}}

	_, err := NewShapeMatrix(a, nil)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewShapeMatrix(nil)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

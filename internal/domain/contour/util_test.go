package contour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"hypocotyl-bot/internal/domain/entity"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// maskFromArt строит маску из строк, где '#' — передний план
func maskFromArt(t *testing.T, art ...string) *entity.BinaryMask {
	t.Helper()
	rows := make([][]bool, len(art))
	for y, line := range art {
		rows[y] = make([]bool, len(line))
		for x, ch := range line {
			rows[y][x] = ch == '#'
		}
	}
	m, err := entity.MaskFromRows(rows)
	require.NoError(t, err)
	return m
}

// rectMask маска w×h с заполненным прямоугольником [x0,x1]×[y0,y1]
func rectMask(t *testing.T, w, h, x0, y0, x1, y1 int) *entity.BinaryMask {
	t.Helper()
	pix := make([]bool, w*h)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			pix[y*w+x] = true
		}
	}
	m, err := entity.NewBinaryMask(w, h, pix)
	require.NoError(t, err)
	return m
}

// diskMask маска size×size с кругом радиуса r в центре
func diskMask(t *testing.T, size int, r float64) *entity.BinaryMask {
	t.Helper()
	c := float64(size-1) / 2
	pix := make([]bool, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			pix[y*size+x] = dx*dx+dy*dy <= r*r
		}
	}
	m, err := entity.NewBinaryMask(size, size, pix)
	require.NoError(t, err)
	return m
}

// signedArea площадь по формуле шнурования; знак задаёт направление обхода
func signedArea(b entity.Boundary) float64 {
	s := 0.0
	for i := range b {
		p, q := b[i], b[(i+1)%len(b)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}

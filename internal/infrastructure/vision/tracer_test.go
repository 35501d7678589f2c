//go:build gocv
// +build gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hypocotyl-bot/internal/domain/contour"
	"hypocotyl-bot/internal/domain/entity"
)

func TestGoCVTracer_MatchesMooreOnSquares(t *testing.T) {
	rows := make([][]bool, 12)
	for y := range rows {
		rows[y] = make([]bool, 12)
		for x := range rows[y] {
			big := x >= 5 && x <= 9 && y >= 5 && y <= 9
			small := x >= 1 && x <= 2 && y >= 1 && y <= 2
			rows[y][x] = big || small
		}
	}
	mask, err := entity.MaskFromRows(rows)
	require.NoError(t, err)

	got, err := NewGoCVTracer().Trace(mask)
	require.NoError(t, err)
	want, err := contour.MooreTracer{}.Trace(mask)
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]))
		require.Equal(t, rasterFirst(want[i]), rasterFirst(got[i]))
	}
}

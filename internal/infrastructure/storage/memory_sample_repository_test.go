package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"hypocotyl-bot/internal/domain/entity"
)

func TestMemorySampleRepository_AddListClear(t *testing.T) {
	repo := NewMemorySampleRepository()
	ctx := context.Background()

	a := entity.NewSample(1, "col-0", &entity.NormalizedContour{})
	b := entity.NewSample(1, "pif4", &entity.NormalizedContour{})
	c := entity.NewSample(2, "col-0", &entity.NormalizedContour{})
	for _, s := range []*entity.Sample{a, b, c} {
		require.NoError(t, repo.Add(ctx, s))
	}
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(3), c.ID)

	all, err := repo.List(ctx, 1, "")
	require.NoError(t, err)
	require.Equal(t, []*entity.Sample{a, b}, all)

	col, err := repo.List(ctx, 1, "col-0")
	require.NoError(t, err)
	require.Equal(t, []*entity.Sample{a}, col)

	require.NoError(t, repo.Clear(ctx, 1))
	all, err = repo.List(ctx, 1, "")
	require.NoError(t, err)
	require.Empty(t, all)

	other, err := repo.List(ctx, 2, "")
	require.NoError(t, err)
	require.Len(t, other, 1)
}

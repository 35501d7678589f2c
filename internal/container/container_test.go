package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"hypocotyl-bot/config"
	"hypocotyl-bot/internal/domain/contour"
	"hypocotyl-bot/internal/infrastructure/storage"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		ContourSamples:  50,
		ReferencePolicy: contour.LeftTop,
		PCAComponents:   2,
		Tracer:          config.TracerMoore,
		MaskThreshold:   128,
	}

	c, err := New(cfg, storage.NewMemoryUserRepository(), storage.NewMemorySampleRepository())
	require.NoError(t, err)
	require.NotNil(t, c.UserService)
	require.NotNil(t, c.PhenotypeService)
	require.Equal(t, contour.Options{Samples: 50, Reference: contour.LeftTop}, c.Options)

	n, err := c.PhenotypeService.CountSamples(context.Background(), 1, "")
	require.NoError(t, err)
	require.Zero(t, n)
}

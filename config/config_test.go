package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hypocotyl-bot/internal/domain/contour"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	for _, key := range []string{"CONTOUR_SAMPLES", "REFERENCE_POLICY", "PCA_COMPONENTS", "TRACER", "MASK_THRESHOLD", "MASK_INVERT", "MASK_MAX_SIDE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, contour.DefaultSamples, cfg.ContourSamples)
	require.Equal(t, contour.TopLeft, cfg.ReferencePolicy)
	require.Equal(t, 3, cfg.PCAComponents)
	require.Equal(t, TracerMoore, cfg.Tracer)
	require.Equal(t, uint8(128), cfg.MaskThreshold)
	require.False(t, cfg.MaskInvert)
	require.Equal(t, 1024, cfg.MaskMaxSide)
	require.Equal(t, contour.Options{Samples: contour.DefaultSamples, Reference: contour.TopLeft}, cfg.ContourOptions())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CONTOUR_SAMPLES", "64")
	t.Setenv("REFERENCE_POLICY", "bottom-left")
	t.Setenv("PCA_COMPONENTS", "5")
	t.Setenv("TRACER", "gocv")
	t.Setenv("MASK_THRESHOLD", "40")
	t.Setenv("MASK_INVERT", "true")
	t.Setenv("MASK_MAX_SIDE", "512")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 64, cfg.ContourSamples)
	require.Equal(t, contour.BottomLeft, cfg.ReferencePolicy)
	require.Equal(t, 5, cfg.PCAComponents)
	require.Equal(t, TracerGoCV, cfg.Tracer)
	require.Equal(t, uint8(40), cfg.MaskThreshold)
	require.True(t, cfg.MaskInvert)
	require.Equal(t, 512, cfg.MaskMaxSide)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"CONTOUR_SAMPLES":  "2",
		"REFERENCE_POLICY": "centroid",
		"PCA_COMPONENTS":   "zero",
		"TRACER":           "canny",
		"MASK_THRESHOLD":   "300",
		"MASK_INVERT":      "maybe",
		"MASK_MAX_SIDE":    "big",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}

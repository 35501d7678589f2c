package telegram

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	app "hypocotyl-bot/internal/application"
	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/pca"
)

func TestParsePCAArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		k        int
		genotype string
		wantErr  bool
	}{
		{name: "empty", args: ""},
		{name: "only k", args: "3", k: 3},
		{name: "k and genotype", args: "2 col-0", k: 2, genotype: "col-0"},
		{name: "only genotype", args: "pif4 pif5", genotype: "pif4 pif5"},
		{name: "extra spaces", args: "  4   phyB  ", k: 4, genotype: "phyB"},
		{name: "zero", args: "0", wantErr: true},
		{name: "negative", args: "-1 col-0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, genotype, err := parsePCAArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.k, k)
			require.Equal(t, tt.genotype, genotype)
		})
	}
}

func TestFormatContourSummary(t *testing.T) {
	sample := entity.NewSample(1, "col-0", &entity.NormalizedContour{
		Outline:       entity.Boundary{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}},
		InterpOutline: entity.Boundary{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}},
	})
	sample.ID = 7

	text := formatContourSummary(sample)
	require.Contains(t, text, "#7")
	require.Contains(t, text, "col-0")
	require.Contains(t, text, "периметр: 12.0")
	require.Contains(t, text, "начало: (0.0; 0.0)")
}

func TestFormatPCAReport(t *testing.T) {
	result, err := pca.Compute(entity.ShapeMatrix{
		{0, 0, 1},
		{2, 1, 0},
		{4, 2, 1},
		{6, 3, 0},
	}, 2)
	require.NoError(t, err)

	text := formatPCAReport(&app.PCAOutput{Result: result, Samples: 4})
	require.Contains(t, text, "все генотипы")
	require.Contains(t, text, "масок 4, компонент 2")
	require.Contains(t, text, "PC1:")
	require.Contains(t, text, "PC2:")
	require.NotContains(t, text, "PC3:")
	require.Contains(t, text, "Суммарно: 100.0%")

	text = formatPCAReport(&app.PCAOutput{Result: result, Samples: 4, Genotype: "pif4"})
	require.True(t, strings.HasPrefix(text, "📊 PCA (pif4)"))
}

func TestErrorMessage(t *testing.T) {
	require.Equal(t, msgNoForeground, errorMessage(fmt.Errorf("extract: %w", entity.ErrNoForegroundFound)))
	require.Equal(t, msgNotEnoughSamples, errorMessage(fmt.Errorf("pca: %w", entity.ErrInsufficientComponents)))
	require.Equal(t, msgProcessingError, errorMessage(errors.New("boom")))
}

func TestIsImageDocument(t *testing.T) {
	require.True(t, isImageDocument(&tgbotapi.Document{MimeType: "image/png"}))
	require.True(t, isImageDocument(&tgbotapi.Document{FileName: "plate_03.TIF"}))
	require.False(t, isImageDocument(&tgbotapi.Document{MimeType: "application/pdf", FileName: "notes.pdf"}))
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/pca"
	"hypocotyl-bot/internal/domain/port"
)

// PhenotypeService принимает маски, извлекает контуры и считает PCA по ним.
type PhenotypeService struct {
	users      *UserService
	decoder    port.MaskDecoder
	extractor  port.ContourExtractor
	samples    port.SampleRepository
	renderer   port.ShapeRenderer
	components int
}

// MaskOutput содержит сохранённый образец и картинку с наложенным контуром.
type MaskOutput struct {
	Sample  *entity.Sample
	Overlay []byte
}

// PCAOutput содержит результат PCA и картинку с модами формы.
type PCAOutput struct {
	Result   *entity.PCAResult
	Samples  int
	Genotype string
	Modes    []byte
}

// NewPhenotypeService создаёт сервис, components: число компонент по умолчанию.
func NewPhenotypeService(users *UserService, decoder port.MaskDecoder, extractor port.ContourExtractor,
	samples port.SampleRepository, renderer port.ShapeRenderer, components int) *PhenotypeService {
	return &PhenotypeService{
		users:      users,
		decoder:    decoder,
		extractor:  extractor,
		samples:    samples,
		renderer:   renderer,
		components: components,
	}
}

// AcceptMask декодирует маску, извлекает контур и сохраняет образец.
// Пустой genotype заменяется меткой пользователя.
func (s *PhenotypeService) AcceptMask(ctx context.Context, userID, chatID int64, genotype string, imageData []byte) (*MaskOutput, error) {
	if s.decoder == nil || s.extractor == nil {
		return nil, errors.New("mask pipeline is not configured")
	}

	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if genotype == "" {
		genotype = user.Genotype
	}

	mask, err := s.decoder.Decode(ctx, imageData)
	if err != nil {
		return nil, err
	}

	contour, err := s.extractor.Extract(mask)
	if err != nil {
		return nil, err
	}

	sample := entity.NewSample(userID, genotype, contour)
	if err := s.samples.Add(ctx, sample); err != nil {
		return nil, fmt.Errorf("save sample: %w", err)
	}

	var overlay []byte
	if s.renderer != nil {
		if overlay, err = s.renderer.RenderContour(mask, contour); err != nil {
			log.Printf("Error rendering contour for sample %d: %v", sample.ID, err)
		}
	}

	return &MaskOutput{Sample: sample, Overlay: overlay}, nil
}

// RunPCA считает главные компоненты по образцам пользователя.
// components <= 0 означает значение по умолчанию.
func (s *PhenotypeService) RunPCA(ctx context.Context, userID int64, genotype string, components int) (*PCAOutput, error) {
	if components <= 0 {
		components = s.components
	}

	samples, err := s.samples.List(ctx, userID, genotype)
	if err != nil {
		return nil, err
	}

	contours := make([]*entity.NormalizedContour, len(samples))
	for i, sample := range samples {
		contours[i] = sample.Contour
	}
	data, err := entity.NewShapeMatrix(contours...)
	if err != nil {
		return nil, fmt.Errorf("build shape matrix: %w", err)
	}

	result, err := pca.Compute(data, components)
	if err != nil {
		return nil, err
	}

	var modes []byte
	if s.renderer != nil {
		if modes, err = s.renderer.RenderModes(result); err != nil {
			log.Printf("Error rendering pca modes: %v", err)
		}
	}

	return &PCAOutput{
		Result:   result,
		Samples:  len(samples),
		Genotype: genotype,
		Modes:    modes,
	}, nil
}

// CountSamples число сохранённых образцов пользователя
func (s *PhenotypeService) CountSamples(ctx context.Context, userID int64, genotype string) (int, error) {
	samples, err := s.samples.List(ctx, userID, genotype)
	if err != nil {
		return 0, err
	}
	return len(samples), nil
}

// Reset удаляет образцы пользователя
func (s *PhenotypeService) Reset(ctx context.Context, userID int64) error {
	return s.samples.Clear(ctx, userID)
}

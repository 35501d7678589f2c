package contour

import (
	"fmt"

	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
)

// Extractor извлекает нормализованный контур наибольшей области маски.
// Не хранит изменяемого состояния и безопасен для параллельного вызова,
// если таков используемый трассировщик.
type Extractor struct {
	tracer port.BoundaryTracer
	opts   Options
}

// NewExtractor создаёт экстрактор; при tracer == nil используется MooreTracer.
func NewExtractor(tracer port.BoundaryTracer, opts Options) *Extractor {
	if tracer == nil {
		tracer = MooreTracer{}
	}
	return &Extractor{tracer: tracer, opts: opts}
}

// Options возвращает параметры экстрактора
func (e *Extractor) Options() Options {
	return e.opts
}

// Extract находит самый длинный внешний контур маски, перевыбирает его
// в opts.Samples точек по длине дуги и переиндексирует по opts.Reference.
func (e *Extractor) Extract(mask *entity.BinaryMask) (*entity.NormalizedContour, error) {
	if e.opts.Samples < 3 {
		return nil, fmt.Errorf("extract contour: %d samples: %w", e.opts.Samples, entity.ErrInvalidSampleCount)
	}
	policy := e.opts.Reference
	if policy == "" {
		policy = TopLeft
	}
	if _, err := ParseReferencePolicy(string(policy)); err != nil {
		return nil, fmt.Errorf("extract contour: %w", err)
	}
	if mask == nil {
		return nil, fmt.Errorf("extract contour: nil mask: %w", entity.ErrNoForegroundFound)
	}

	boundaries, err := e.tracer.Trace(mask)
	if err != nil {
		return nil, fmt.Errorf("extract contour: trace: %w", err)
	}

	// При равной длине остаётся первый найденный контур
	var outline entity.Boundary
	for _, b := range boundaries {
		if len(b) > len(outline) {
			outline = b
		}
	}
	if len(outline) == 0 {
		return nil, fmt.Errorf("extract contour: %dx%d mask: %w", mask.Width(), mask.Height(), entity.ErrNoForegroundFound)
	}

	interp := reindex(resampleClosed(outline, e.opts.Samples), policy)
	return &entity.NormalizedContour{
		Outline:       outline,
		InterpOutline: interp,
	}, nil
}

// Extract извлекает контур трассировщиком Мура с правилом TopLeft.
func Extract(mask *entity.BinaryMask, maxSize int) (*entity.NormalizedContour, error) {
	return NewExtractor(nil, Options{Samples: maxSize, Reference: TopLeft}).Extract(mask)
}

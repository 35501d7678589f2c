package port

import "hypocotyl-bot/internal/domain/entity"

// ContourExtractor интерфейс извлечения нормализованного контура из маски
type ContourExtractor interface {
	Extract(mask *entity.BinaryMask) (*entity.NormalizedContour, error)
}

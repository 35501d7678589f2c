package port

import "hypocotyl-bot/internal/domain/entity"

// ShapeRenderer интерфейс слоя визуализации результатов
type ShapeRenderer interface {
	// RenderContour рисует маску с наложенным нормализованным контуром
	RenderContour(mask *entity.BinaryMask, contour *entity.NormalizedContour) ([]byte, error)

	// RenderModes рисует среднюю форму и отклонения вдоль первой компоненты
	RenderModes(result *entity.PCAResult) ([]byte, error)
}

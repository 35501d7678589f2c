package port

import "hypocotyl-bot/internal/domain/entity"

// BoundaryTracer интерфейс трассировщика внешних контуров маски
type BoundaryTracer interface {
	// Trace возвращает внешние контуры всех связных областей без дыр,
	// в порядке обнаружения
	Trace(mask *entity.BinaryMask) ([]entity.Boundary, error)
}

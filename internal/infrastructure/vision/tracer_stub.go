//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
)

// ErrGoCVDisabled сборка без тега gocv
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// GoCVTracer заглушка трассировщика (без OpenCV).
type GoCVTracer struct{}

// NewGoCVTracer создаёт трассировщик-заглушку (без OpenCV).
func NewGoCVTracer() *GoCVTracer {
	return &GoCVTracer{}
}

// Trace возвращает ошибку, если сборка без тега gocv.
func (t *GoCVTracer) Trace(mask *entity.BinaryMask) ([]entity.Boundary, error) {
	_ = mask
	return nil, ErrGoCVDisabled
}

// Проверка реализации интерфейса
var _ port.BoundaryTracer = (*GoCVTracer)(nil)

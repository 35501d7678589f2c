package port

import (
	"context"

	"hypocotyl-bot/internal/domain/entity"
)

// MaskDecoder интерфейс декодера изображений в бинарную маску
type MaskDecoder interface {
	// Decode превращает байты изображения в маску
	Decode(ctx context.Context, imageData []byte) (*entity.BinaryMask, error)
}

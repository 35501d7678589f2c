package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder (микроскопия)

	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
)

// MaskDecoder превращает изображение в бинарную маску порогом по яркости.
type MaskDecoder struct {
	Threshold uint8 // пиксели ярче или равные порогу — передний план
	Invert    bool  // инвертировать яркость (тёмный объект на светлом фоне)
	MaxSide   int   // большие изображения уменьшаются до этой стороны, 0 — без ограничения
}

// NewMaskDecoder создаёт декодер масок.
func NewMaskDecoder(threshold uint8, invert bool, maxSide int) *MaskDecoder {
	return &MaskDecoder{
		Threshold: threshold,
		Invert:    invert,
		MaxSide:   maxSide,
	}
}

// Decode декодирует PNG, JPEG, GIF, BMP или TIFF и бинаризует его.
func (d *MaskDecoder) Decode(ctx context.Context, imageData []byte) (*entity.BinaryMask, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, errors.New("empty image")
	}

	// Ближайший сосед не добавляет промежуточных значений на краях маски
	b := img.Bounds()
	if d.MaxSide > 0 && (b.Dx() > d.MaxSide || b.Dy() > d.MaxSide) {
		img = imaging.Fit(img, d.MaxSide, d.MaxSide, imaging.NearestNeighbor)
	}

	gray := imaging.Grayscale(img)
	if d.Invert {
		gray = imaging.Invert(gray)
	}
	bin := segment.Threshold(gray, d.Threshold)

	bb := bin.Bounds()
	w, h := bb.Dx(), bb.Dy()
	pix := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = bin.GrayAt(bb.Min.X+x, bb.Min.Y+y).Y > 0
		}
	}

	return entity.NewBinaryMask(w, h, pix)
}

// Проверка реализации интерфейса
var _ port.MaskDecoder = (*MaskDecoder)(nil)

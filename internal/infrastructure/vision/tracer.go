//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"sort"

	"gocv.io/x/gocv"

	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
)

// GoCVTracer трассирует внешние контуры маски через OpenCV FindContours.
type GoCVTracer struct{}

// NewGoCVTracer создаёт трассировщик на OpenCV.
func NewGoCVTracer() *GoCVTracer {
	return &GoCVTracer{}
}

// Trace возвращает внешние контуры без аппроксимации. Контуры упорядочены
// по первому пикселю в построчном обходе, как у MooreTracer.
func (t *GoCVTracer) Trace(mask *entity.BinaryMask) ([]entity.Boundary, error) {
	if mask == nil || mask.Width() == 0 || mask.Height() == 0 {
		return nil, nil
	}

	mat, err := maskToMat(mask)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxNone)
	defer contours.Close()

	boundaries := make([]entity.Boundary, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		pts := contours.At(i).ToPoints()
		if len(pts) == 0 {
			continue
		}
		b := make(entity.Boundary, len(pts))
		for j, p := range pts {
			b[j] = entity.Point{X: float64(p.X), Y: float64(p.Y)}
		}
		boundaries = append(boundaries, b)
	}

	sort.SliceStable(boundaries, func(i, j int) bool {
		a, b := rasterFirst(boundaries[i]), rasterFirst(boundaries[j])
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return boundaries, nil
}

// maskToMat превращает маску в 8-битную gocv.Mat (0 / 255).
func maskToMat(mask *entity.BinaryMask) (gocv.Mat, error) {
	w, h := mask.Width(), mask.Height()
	data := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.At(x, y) {
				data[y*w+x] = 255
			}
		}
	}
	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8U, data)
	if err != nil {
		return gocv.NewMat(), errors.New("failed to convert mask")
	}
	return mat, nil
}

func rasterFirst(b entity.Boundary) entity.Point {
	best := b[0]
	for _, p := range b[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best
}

// Проверка реализации интерфейса
var _ port.BoundaryTracer = (*GoCVTracer)(nil)

package contour

import (
	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
)

// Соседи по часовой стрелке на экране: E, SE, S, SW, W, NW, N, NE.
var (
	mooreDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	mooreDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// dirWest индекс направления на запад
const dirWest = 4

// MooreTracer трассирует внешние контуры 8-связных областей маски
// методом обхода окрестности Мура.
type MooreTracer struct{}

// Trace возвращает по одному внешнему контуру на каждую связную область.
// Области нумеруются в порядке построчного обхода, дыры не трассируются.
func (MooreTracer) Trace(mask *entity.BinaryMask) ([]entity.Boundary, error) {
	if mask == nil {
		return nil, nil
	}
	w, h := mask.Width(), mask.Height()
	labels, starts := labelComponents(mask)

	boundaries := make([]entity.Boundary, 0, len(starts))
	for i, s := range starts {
		label := i + 1
		inside := func(x, y int) bool {
			return x >= 0 && y >= 0 && x < w && y < h && labels[y*w+x] == label
		}
		boundaries = append(boundaries, traceOuter(inside, s%w, s/w, 4*w*h+8))
	}
	return boundaries, nil
}

// labelComponents размечает 8-связные области обходом в ширину.
// Возвращает метки (0 — фон) и индекс первого пикселя каждой области.
func labelComponents(mask *entity.BinaryMask) ([]int, []int) {
	w, h := mask.Width(), mask.Height()
	labels := make([]int, w*h)
	var starts []int

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i0 := y*w + x
			if !mask.At(x, y) || labels[i0] != 0 {
				continue
			}
			starts = append(starts, i0)
			label := len(starts)
			labels[i0] = label
			queue := []int{i0}
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := queue[qi]%w, queue[qi]/w
				for d := 0; d < 8; d++ {
					vx, vy := ux+mooreDX[d], uy+mooreDY[d]
					if !mask.At(vx, vy) {
						continue
					}
					vi := vy*w + vx
					if labels[vi] == 0 {
						labels[vi] = label
						queue = append(queue, vi)
					}
				}
			}
		}
	}
	return labels, starts
}

// traceOuter обходит границу от стартового пикселя (первого в построчном порядке).
// Обход останавливается, когда из старта повторяется первый шаг.
func traceOuter(inside func(x, y int) bool, sx, sy, maxSteps int) entity.Boundary {
	boundary := entity.Boundary{{X: float64(sx), Y: float64(sy)}}

	cx, cy := sx, sy
	back := dirWest // слева от первого пикселя всегда фон
	firstX, firstY, moved := 0, 0, false

	for step := 0; step < maxSteps; step++ {
		nx, ny, nback, found := nextBoundaryPixel(inside, cx, cy, back)
		if !found {
			break // одиночный пиксель
		}
		if !moved {
			firstX, firstY, moved = nx, ny, true
		} else if cx == sx && cy == sy && nx == firstX && ny == firstY {
			break
		}
		boundary = append(boundary, entity.Point{X: float64(nx), Y: float64(ny)})
		cx, cy, back = nx, ny, nback
	}

	// Последней точкой записывается возврат в старт
	if n := len(boundary); n > 1 && boundary[n-1] == boundary[0] {
		boundary = boundary[:n-1]
	}
	return boundary
}

// nextBoundaryPixel ищет следующий пиксель границы, обходя соседей по часовой
// стрелке начиная с направления back. Возвращает направление нового возврата
// относительно найденного пикселя.
func nextBoundaryPixel(inside func(x, y int) bool, cx, cy, back int) (int, int, int, bool) {
	for k := 1; k <= 8; k++ {
		d := (back + k) % 8
		tx, ty := cx+mooreDX[d], cy+mooreDY[d]
		if !inside(tx, ty) {
			continue
		}
		prev := (back + k - 1) % 8
		bx, by := cx+mooreDX[prev], cy+mooreDY[prev]
		return tx, ty, direction(bx-tx, by-ty), true
	}
	return 0, 0, back, false
}

func direction(dx, dy int) int {
	for i := 0; i < 8; i++ {
		if mooreDX[i] == dx && mooreDY[i] == dy {
			return i
		}
	}
	return dirWest
}

// Проверка реализации интерфейса
var _ port.BoundaryTracer = MooreTracer{}

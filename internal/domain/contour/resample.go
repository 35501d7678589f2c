package contour

import "hypocotyl-bot/internal/domain/entity"

// cumulativeLength накопленная длина дуги замкнутого контура.
// Последний элемент — полный периметр с замыкающим отрезком.
func cumulativeLength(points entity.Boundary) []float64 {
	n := len(points)
	cum := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		cum[i] = cum[i-1] + points[i-1].Distance(points[i%n])
	}
	return cum
}

// resampleClosed перевыбирает замкнутый контур в n точек с равным шагом L/n
// по длине дуги; первая точка совпадает с первой точкой исходного контура.
func resampleClosed(points entity.Boundary, n int) entity.Boundary {
	out := make(entity.Boundary, n)
	if len(points) == 0 {
		return out
	}

	cum := cumulativeLength(points)
	total := cum[len(points)]
	if total == 0 {
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	step := total / float64(n)
	seg := 0
	for j := 0; j < n; j++ {
		t := step * float64(j)
		for seg < len(points)-1 && cum[seg+1] <= t {
			seg++
		}
		a := points[seg]
		b := points[(seg+1)%len(points)]
		frac := 0.0
		if span := cum[seg+1] - cum[seg]; span > 0 {
			frac = (t - cum[seg]) / span
		}
		out[j] = a.Lerp(b, frac)
	}
	return out
}

// reindex сдвигает контур по кругу так, чтобы опорная точка стала первой.
// Направление обхода сохраняется; при равенстве берётся меньший индекс.
func reindex(points entity.Boundary, policy ReferencePolicy) entity.Boundary {
	best := 0
	for i := 1; i < len(points); i++ {
		if policy.before(points[i].X, points[i].Y, points[best].X, points[best].Y) {
			best = i
		}
	}
	out := make(entity.Boundary, 0, len(points))
	out = append(out, points[best:]...)
	return append(out, points[:best]...)
}

package entity

import "math"

// Point точка в пиксельных координатах (0,0 — левый верхний угол, Y растёт вниз)
type Point struct {
	X float64
	Y float64
}

// Distance возвращает евклидово расстояние до другой точки
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Lerp возвращает точку на отрезке p→other при параметре t ∈ [0, 1]
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}

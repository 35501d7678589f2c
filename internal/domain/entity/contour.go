package entity

// Boundary замкнутая ломаная, упорядоченная по обходу контура
type Boundary []Point

// Perimeter длина замкнутого контура, включая отрезок от последней точки к первой
func (b Boundary) Perimeter() float64 {
	if len(b) < 2 {
		return 0
	}
	total := 0.0
	for i := range b {
		total += b[i].Distance(b[(i+1)%len(b)])
	}
	return total
}

// NormalizedContour результат извлечения контура.
type NormalizedContour struct {
	Outline       Boundary // исходный трассированный контур
	InterpOutline Boundary // контур, перевыбранный по длине дуги и переиндексированный
}

// ShapeVector разворачивает InterpOutline в строку [x0..xm-1, y0..ym-1]
func (c *NormalizedContour) ShapeVector() []float64 {
	m := len(c.InterpOutline)
	v := make([]float64, 2*m)
	for i, p := range c.InterpOutline {
		v[i] = p.X
		v[m+i] = p.Y
	}
	return v
}

// ContourFromShapeVector собирает контур обратно из строки формата ShapeVector
func ContourFromShapeVector(v []float64) (Boundary, error) {
	if len(v)%2 != 0 {
		return nil, ErrDimensionMismatch
	}
	m := len(v) / 2
	b := make(Boundary, m)
	for i := range b {
		b[i] = Point{X: v[i], Y: v[m+i]}
	}
	return b, nil
}

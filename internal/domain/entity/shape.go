package entity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ShapeMatrix матрица N×d, каждая строка — один развёрнутый контур
type ShapeMatrix [][]float64

// NewShapeMatrix строит матрицу форм из контуров одинаковой длины
func NewShapeMatrix(contours ...*NormalizedContour) (ShapeMatrix, error) {
	rows := make(ShapeMatrix, 0, len(contours))
	for i, c := range contours {
		if c == nil {
			return nil, fmt.Errorf("contour %d is nil: %w", i, ErrDimensionMismatch)
		}
		v := c.ShapeVector()
		if len(rows) > 0 && len(v) != len(rows[0]) {
			return nil, ErrDimensionMismatch
		}
		rows = append(rows, v)
	}
	return rows, nil
}

// Dims возвращает число строк и ширину первой строки
func (m ShapeMatrix) Dims() (n, d int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// PCAResult результат анализа главных компонент; после вычисления не изменяется.
type PCAResult struct {
	MeanVector       *mat.Dense    // 1×d
	MeanCentered     *mat.Dense    // N×d
	CovarianceMatrix *mat.SymDense // d×d
	EigenVectors     *mat.Dense    // d×k
	EigenValues      *mat.DiagDense
	Scores           *mat.Dense // N×k
	Reconstruction   *mat.Dense // N×d
}

// Components число сохранённых компонент k
func (r *PCAResult) Components() int {
	_, k := r.EigenVectors.Dims()
	return k
}

// ReconstructionMSE среднеквадратичная ошибка восстановления исходных данных
func (r *PCAResult) ReconstructionMSE() float64 {
	n, d := r.Reconstruction.Dims()
	if n == 0 || d == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			orig := r.MeanCentered.At(i, j) + r.MeanVector.At(0, j)
			diff := r.Reconstruction.At(i, j) - orig
			sum += diff * diff
		}
	}
	return sum / float64(n*d)
}

// ExplainedVariance доля общей дисперсии, приходящаяся на каждую компоненту
func (r *PCAResult) ExplainedVariance() []float64 {
	k := r.Components()
	out := make([]float64, k)
	total := mat.Trace(r.CovarianceMatrix)
	if total <= 0 || math.IsNaN(total) {
		return out
	}
	for i := range out {
		out[i] = r.EigenValues.At(i, i) / total
	}
	return out
}

// Package pca вычисляет главные компоненты матрицы развёрнутых контуров.
package pca

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"hypocotyl-bot/internal/domain/entity"
)

// ErrEigenFailed разложение ковариационной матрицы не сошлось
var ErrEigenFailed = errors.New("eigen decomposition did not converge")

// Compute центрирует данные, строит ковариацию (CᵀC)/N, берёт numComponents
// собственных векторов с наибольшими по модулю собственными значениями,
// проецирует данные и восстанавливает их приближение.
//
// При равных собственных значениях порядок повторяет порядок разложения.
// Знак каждого вектора выбирается так, чтобы его наибольший по модулю
// элемент был положительным.
func Compute(data entity.ShapeMatrix, numComponents int) (*entity.PCAResult, error) {
	x, err := toDense(data)
	if err != nil {
		return nil, err
	}
	n, d := x.Dims()
	if limit := min(n-1, d); numComponents < 1 || numComponents > limit {
		return nil, fmt.Errorf("pca: %d components for %dx%d data (max %d): %w",
			numComponents, n, d, max(limit, 0), entity.ErrInsufficientComponents)
	}

	// Центрирование по столбцам
	mean := mat.NewDense(1, d, nil)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mean.Set(0, j, stat.Mean(mat.Col(col, j, x), nil))
	}
	centered := mat.NewDense(n, d, nil)
	centered.Apply(func(i, j int, v float64) float64 {
		return v - mean.At(0, j)
	}, x)

	// SymOuterK даёт точно симметричную матрицу
	covar := mat.NewSymDense(d, nil)
	covar.SymOuterK(1/float64(n), centered.T())

	var eig mat.EigenSym
	if ok := eig.Factorize(covar, true); !ok {
		return nil, fmt.Errorf("pca: %dx%d covariance: %w", d, d, ErrEigenFailed)
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(values[order[a]]) > math.Abs(values[order[b]])
	})

	k := numComponents
	eigVecs := mat.NewDense(d, k, nil)
	eigVals := mat.NewDiagDense(k, nil)
	for c := 0; c < k; c++ {
		src := order[c]
		v := mat.Col(nil, src, &vectors)
		canonicalSign(v)
		eigVecs.SetCol(c, v)
		// Отрицательный численный шум обнуляется
		eigVals.SetDiag(c, math.Max(values[src], 0))
	}

	scores := mat.NewDense(n, k, nil)
	scores.Mul(centered, eigVecs)

	recon := mat.NewDense(n, d, nil)
	recon.Mul(scores, eigVecs.T())
	recon.Apply(func(i, j int, v float64) float64 {
		return v + mean.At(0, j)
	}, recon)

	return &entity.PCAResult{
		MeanVector:       mean,
		MeanCentered:     centered,
		CovarianceMatrix: covar,
		EigenVectors:     eigVecs,
		EigenValues:      eigVals,
		Scores:           scores,
		Reconstruction:   recon,
	}, nil
}

// toDense проверяет размеры строк и копирует данные в mat.Dense
func toDense(data entity.ShapeMatrix) (*mat.Dense, error) {
	n, d := data.Dims()
	if n == 0 {
		return nil, fmt.Errorf("pca: empty shape matrix: %w", entity.ErrInsufficientComponents)
	}
	if d == 0 {
		return nil, fmt.Errorf("pca: zero-width rows: %w", entity.ErrDimensionMismatch)
	}
	x := mat.NewDense(n, d, nil)
	for i, row := range data {
		if len(row) != d {
			return nil, fmt.Errorf("pca: row %d has %d values, want %d: %w", i, len(row), d, entity.ErrDimensionMismatch)
		}
		x.SetRow(i, row)
	}
	return x, nil
}

// canonicalSign меняет знак вектора так, чтобы первый из наибольших по модулю
// элементов был положительным
func canonicalSign(v []float64) {
	maxAbs := 0.0
	for _, x := range v {
		maxAbs = math.Max(maxAbs, math.Abs(x))
	}
	for _, x := range v {
		if math.Abs(x) < maxAbs*(1-1e-9) {
			continue
		}
		if x < 0 {
			for i := range v {
				v[i] = -v[i]
			}
		}
		return
	}
}

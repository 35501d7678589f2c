package entity

import "errors"

var (
	// ErrNoForegroundFound в маске нет ни одного контура переднего плана
	ErrNoForegroundFound = errors.New("no foreground boundary found")
	// ErrInvalidSampleCount число точек перевыборки меньше 3
	ErrInvalidSampleCount = errors.New("invalid sample count: need at least 3 points")
	// ErrInsufficientComponents запрошено больше компонент, чем min(N-1, d)
	ErrInsufficientComponents = errors.New("insufficient components: requested count exceeds rank bound")
	// ErrDimensionMismatch строки матрицы форм разной длины
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

package contour

import "fmt"

// ReferencePolicy правило выбора точки, с которой начинается контур
type ReferencePolicy string

const (
	TopLeft    ReferencePolicy = "top-left"    // минимальный Y, затем минимальный X
	BottomLeft ReferencePolicy = "bottom-left" // максимальный Y, затем минимальный X
	LeftTop    ReferencePolicy = "left-top"    // минимальный X, затем минимальный Y
)

// DefaultSamples число точек контура по умолчанию
const DefaultSamples = 200

// tieEpsilon координаты ближе этого порога считаются равными
const tieEpsilon = 1e-9

// Options параметры извлечения контура
type Options struct {
	Samples   int             // число точек после перевыборки, не меньше 3
	Reference ReferencePolicy // правило переиндексации
}

// DefaultOptions возвращает параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		Samples:   DefaultSamples,
		Reference: TopLeft,
	}
}

// ParseReferencePolicy разбирает название правила из конфигурации
func ParseReferencePolicy(s string) (ReferencePolicy, error) {
	switch p := ReferencePolicy(s); p {
	case TopLeft, BottomLeft, LeftTop:
		return p, nil
	default:
		return "", fmt.Errorf("unknown reference policy %q", s)
	}
}

// before сообщает, что точка a предпочтительнее b по правилу p
func (p ReferencePolicy) before(ax, ay, bx, by float64) bool {
	switch p {
	case BottomLeft:
		if ay > by+tieEpsilon {
			return true
		}
		return ay >= by-tieEpsilon && ax < bx-tieEpsilon
	case LeftTop:
		if ax < bx-tieEpsilon {
			return true
		}
		return ax <= bx+tieEpsilon && ay < by-tieEpsilon
	default:
		if ay < by-tieEpsilon {
			return true
		}
		return ay <= by+tieEpsilon && ax < bx-tieEpsilon
	}
}

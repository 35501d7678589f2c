package entity

// BinaryMask неизменяемая бинарная маска (true — передний план)
type BinaryMask struct {
	width  int
	height int
	pix    []bool
}

// NewBinaryMask создаёт маску из построчного среза; pix копируется.
func NewBinaryMask(width, height int, pix []bool) (*BinaryMask, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, ErrDimensionMismatch
	}
	cp := make([]bool, len(pix))
	copy(cp, pix)
	return &BinaryMask{width: width, height: height, pix: cp}, nil
}

// MaskFromRows создаёт маску из двумерного среза, строки должны быть одной длины
func MaskFromRows(rows [][]bool) (*BinaryMask, error) {
	if len(rows) == 0 {
		return &BinaryMask{}, nil
	}
	w := len(rows[0])
	pix := make([]bool, 0, w*len(rows))
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrDimensionMismatch
		}
		pix = append(pix, row...)
	}
	return &BinaryMask{width: w, height: len(rows), pix: pix}, nil
}

// Width ширина маски в пикселях
func (m *BinaryMask) Width() int { return m.width }

// Height высота маски в пикселях
func (m *BinaryMask) Height() int { return m.height }

// At возвращает значение пикселя; за пределами маски — false
func (m *BinaryMask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.pix[y*m.width+x]
}

// Empty сообщает, что в маске нет ни одного пикселя переднего плана
func (m *BinaryMask) Empty() bool {
	return m.Foreground() == 0
}

// Foreground количество пикселей переднего плана
func (m *BinaryMask) Foreground() int {
	n := 0
	for _, v := range m.pix {
		if v {
			n++
		}
	}
	return n
}

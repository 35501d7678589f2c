package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/mat"

	"hypocotyl-bot/internal/domain/entity"
	"hypocotyl-bot/internal/domain/port"
)

var (
	maskBackground = color.Gray{Y: 20}
	maskForeground = color.Gray{Y: 90}
	startMarker    = color.White
	outlineFill    = color.NRGBA{R: 0, G: 160, B: 255, A: 90}
	meanFill       = color.NRGBA{R: 220, G: 220, B: 220, A: 120}
)

// Renderer рисует маски, контуры и моды формы в PNG.
type Renderer struct {
	MinSide int // маленькие маски увеличиваются, пока сторона не станет не меньше
	Canvas  int // размер стороны изображения с модами
}

// NewRenderer создаёт слой визуализации.
func NewRenderer(minSide, canvas int) *Renderer {
	return &Renderer{MinSide: minSide, Canvas: canvas}
}

// RenderContour рисует маску, залитый перевыбранный контур и его точки.
// Цвет точки идёт по кругу оттенков от начала обхода, первая точка белая.
func (r *Renderer) RenderContour(mask *entity.BinaryMask, contour *entity.NormalizedContour) ([]byte, error) {
	if mask == nil || mask.Width() == 0 || mask.Height() == 0 {
		return nil, errors.New("empty mask")
	}
	w, h := mask.Width(), mask.Height()

	base := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := maskBackground
			if mask.At(x, y) {
				c = maskForeground
			}
			base.SetGray(x, y, c)
		}
	}

	scale := 1
	if side := max(w, h); side < r.MinSide {
		scale = (r.MinSide + side - 1) / side
	}
	canvas := imaging.Resize(base, w*scale, h*scale, imaging.NearestNeighbor)

	// Точка (x, y) — центр пикселя
	toCanvas := func(p entity.Point) (float64, float64) {
		s := float64(scale)
		return (p.X + 0.5) * s, (p.Y + 0.5) * s
	}

	if contour != nil {
		pts := contour.InterpOutline
		fillPolygon(canvas, pts, toCanvas, outlineFill)

		radius := max(1, scale/3)
		for i, p := range pts {
			hue := 300 * float64(i) / float64(len(pts))
			x, y := toCanvas(p)
			drawDot(canvas, x, y, radius, colorful.Hsv(hue, 0.9, 1))
		}
		if len(pts) > 0 {
			x, y := toCanvas(pts[0])
			drawDot(canvas, x, y, radius+1, startMarker)
		}
	}

	return encodePNG(canvas)
}

// RenderModes рисует среднюю форму и её сдвиги на ±2σ вдоль первой компоненты.
func (r *Renderer) RenderModes(result *entity.PCAResult) ([]byte, error) {
	if result == nil || result.Components() == 0 {
		return nil, errors.New("empty pca result")
	}

	mean := mat.Row(nil, 0, result.MeanVector)
	pc := mat.Col(nil, 0, result.EigenVectors)
	sigma := math.Sqrt(result.EigenValues.At(0, 0))

	meanShape, err := entity.ContourFromShapeVector(mean)
	if err != nil {
		return nil, err
	}
	shifted := func(k float64) (entity.Boundary, error) {
		v := make([]float64, len(mean))
		for i := range v {
			v[i] = mean[i] + k*sigma*pc[i]
		}
		return entity.ContourFromShapeVector(v)
	}
	minus, err := shifted(-2)
	if err != nil {
		return nil, err
	}
	plus, err := shifted(2)
	if err != nil {
		return nil, err
	}

	side := r.Canvas
	if side <= 0 {
		side = 512
	}
	toCanvas := fitTransform(side, meanShape, minus, plus)

	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(maskBackground), image.Point{}, draw.Src)
	fillPolygon(canvas, meanShape, toCanvas, meanFill)

	modes := []struct {
		shape entity.Boundary
		c     colorful.Color
	}{
		{minus, colorful.Hsv(220, 0.8, 1)},
		{plus, colorful.Hsv(30, 0.9, 1)},
	}
	for _, m := range modes {
		for _, p := range m.shape {
			x, y := toCanvas(p)
			drawDot(canvas, x, y, 1, m.c)
		}
	}

	return encodePNG(canvas)
}

// fitTransform вписывает все контуры в квадрат side×side с полями.
func fitTransform(side int, shapes ...entity.Boundary) func(entity.Point) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range shapes {
		for _, p := range s {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	margin := float64(side) * 0.05
	span := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if span > 0 {
		scale = (float64(side) - 2*margin) / span
	}
	return func(p entity.Point) (float64, float64) {
		return (p.X-minX)*scale + margin, (p.Y-minY)*scale + margin
	}
}

func fillPolygon(dst draw.Image, pts entity.Boundary, toCanvas func(entity.Point) (float64, float64), c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.DrawOp = draw.Over
	x, y := toCanvas(pts[0])
	ras.MoveTo(float32(x), float32(y))
	for _, p := range pts[1:] {
		x, y = toCanvas(p)
		ras.LineTo(float32(x), float32(y))
	}
	ras.ClosePath()
	ras.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func drawDot(dst draw.Image, x, y float64, radius int, c color.Color) {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	rect := image.Rect(cx-radius, cy-radius, cx+radius+1, cy+radius+1)
	draw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Проверка реализации интерфейса
var _ port.ShapeRenderer = (*Renderer)(nil)

// pkg/render/canvas.go
package render

import (
	"image"
	"image/color"

	"steering-box/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// sourceImage — белый участок 1x1, текстура для заливки фигур
func sourceImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Canvas рисует примитивы на ebiten.Image
type Canvas struct {
	dst          *ebiten.Image
	face         font.Face
	outlineWidth float32
}

// NewCanvas оборачивает dst. При outlineWidth = 0 контур не рисуется.
func NewCanvas(dst *ebiten.Image, outlineWidth float32) *Canvas {
	return &Canvas{
		dst:          dst,
		face:         basicfont.Face7x13,
		outlineWidth: outlineWidth,
	}
}

// SetTarget меняет целевое изображение, чтобы переиспользовать Canvas между кадрами
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

// FillQuad заливает четырёхугольник и обводит его более тёмным цветом
func (c *Canvas) FillQuad(q geom.Quad, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(q[0].X), float32(q[0].Y))
	for _, p := range q[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := vertexColor(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	c.dst.DrawTriangles(vs, is, sourceImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if c.outlineWidth <= 0 {
		return
	}
	edge := DarkenColor(toRGBA(clr))
	for i := range q {
		from, to := q[i], q[(i+1)%len(q)]
		vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), c.outlineWidth, edge, true)
	}
}

// FillCircle рисует круг с обводкой в один пиксель
func (c *Canvas) FillCircle(x, y, radius float32, fill, stroke color.Color) {
	vector.DrawFilledCircle(c.dst, x, y, radius, fill, true)
	vector.StrokeCircle(c.dst, x, y, radius, 1, stroke, true)
}

func (c *Canvas) Text(s string, x, y int, clr color.Color) {
	text.Draw(c.dst, s, c.face, x, y, clr)
}

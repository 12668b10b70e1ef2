// pkg/geom/box.go
package geom

import "github.com/go-gl/mathgl/mgl64"

// Point — точка на экране, в пикселях
type Point struct {
	X, Y float64
}

// Quad — четыре угла в порядке обхода
type Quad [4]Point

// Box — прямоугольник машины относительно точки поворота:
// [-Width/2, Width/2] поперёк и [Tip, Tip+Length] вдоль локальной оси Y
type Box struct {
	Width  float64
	Length float64
	Tip    float64
}

// Quad возвращает углы, повёрнутые на heading вокруг pivot.
// Экранная ось Y смотрит вниз, поэтому положительный угол поворачивает по часовой.
func (b Box) Quad(pivot Point, heading float64) Quad {
	half := b.Width / 2
	local := [4]mgl64.Vec2{
		{-half, b.Tip},
		{half, b.Tip},
		{half, b.Tip + b.Length},
		{-half, b.Tip + b.Length},
	}

	rot := mgl64.Rotate2D(heading)
	origin := mgl64.Vec2{pivot.X, pivot.Y}

	var q Quad
	for i, v := range local {
		p := rot.Mul2x1(v).Add(origin)
		q[i] = Point{X: p.X(), Y: p.Y()}
	}
	return q
}

// Center — среднее четырёх углов
func (q Quad) Center() Point {
	var c Point
	for _, p := range q {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= 4
	c.Y /= 4
	return c
}

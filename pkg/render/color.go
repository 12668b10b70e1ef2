// pkg/render/color.go
package render

import "image/color"

// DarkenColor уменьшает яркость цвета вдвое
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// toRGBA приводит любой цвет к 8-битному RGBA
func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// vertexColor возвращает компоненты в [0, 1] без предумножения альфы,
// как ожидает DrawTriangles по умолчанию
func vertexColor(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}

package ggchart

import "github.com/gogpu/gg"

// nullSurface discards every call.
type nullSurface struct{}

func (nullSurface) Size() (int, int)                                        { return 0, 0 }
func (nullSurface) Resize(int, int) error                                   { return nil }
func (nullSurface) Clear(gg.RGBA)                                           {}
func (nullSurface) StrokePolyline([]gg.Point, LineStyle)                    {}
func (nullSurface) FillCircle(gg.Point, float64, gg.RGBA)                   {}
func (nullSurface) FillSector(gg.Point, float64, float64, float64, gg.RGBA) {}
func (nullSurface) DrawText(string, gg.Point, TextStyle)                    {}

const eps = 1e-9

func approx(a, b, tol float64) bool {
	d := a - b
	return d <= tol && d >= -tol
}

func pts(values ...float64) []SeriesPoint {
	p := make([]SeriesPoint, len(values))
	for i, v := range values {
		p[i] = SeriesPoint{Value: v}
	}
	return p
}

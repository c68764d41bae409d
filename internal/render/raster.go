package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa is the control-point offset that makes a cubic Bezier segment
// approximate a quarter circle of unit radius.
const kappa = 0.552284749831

// Raster is an offscreen RGBA canvas with antialiased shape fills. The
// canvas starts fully transparent; every fill is composited alpha-over onto
// what is already there.
type Raster struct {
	img *image.RGBA
	z   vector.Rasterizer
}

// NewRaster allocates a transparent canvas of the given size in pixels.
func NewRaster(widthPx, heightPx int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))}
}

// Image exposes the underlying canvas, e.g. for PNG encoding.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size returns the canvas dimensions in pixels.
func (r *Raster) Size() (widthPx, heightPx int) {
	bounds := r.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// FillRoundedRect fills rect with quarter-circle corners of radius radiusPx,
// clamped to half the shorter side. Radius zero fills a plain rectangle.
func (r *Raster) FillRoundedRect(rect image.Rectangle, radiusPx int, fill color.RGBA) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	if maxRadius := min(rect.Dx(), rect.Dy()) / 2; radiusPx > maxRadius {
		radiusPx = maxRadius
	}

	x0 := float32(rect.Min.X)
	y0 := float32(rect.Min.Y)
	x1 := float32(rect.Max.X)
	y1 := float32(rect.Max.Y)

	r.resetPath()
	if radiusPx <= 0 {
		r.z.MoveTo(x0, y0)
		r.z.LineTo(x1, y0)
		r.z.LineTo(x1, y1)
		r.z.LineTo(x0, y1)
	} else {
		radius := float32(radiusPx)
		k := radius * kappa
		r.z.MoveTo(x0+radius, y0)
		r.z.LineTo(x1-radius, y0)
		r.z.CubeTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
		r.z.LineTo(x1, y1-radius)
		r.z.CubeTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
		r.z.LineTo(x0+radius, y1)
		r.z.CubeTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
		r.z.LineTo(x0, y0+radius)
		r.z.CubeTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	}
	r.z.ClosePath()
	r.fill(fill)
}

// FillEllipse fills the ellipse inscribed in rect, built from four cubic
// Bezier quadrants.
func (r *Raster) FillEllipse(rect image.Rectangle, fill color.RGBA) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}

	x0 := float32(rect.Min.X)
	y0 := float32(rect.Min.Y)
	x1 := float32(rect.Max.X)
	y1 := float32(rect.Max.Y)
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	kx := (x1 - x0) / 2 * kappa
	ky := (y1 - y0) / 2 * kappa

	r.resetPath()
	r.z.MoveTo(x1, cy)
	r.z.CubeTo(x1, cy+ky, cx+kx, y1, cx, y1)
	r.z.CubeTo(cx-kx, y1, x0, cy+ky, x0, cy)
	r.z.CubeTo(x0, cy-ky, cx-kx, y0, cx, y0)
	r.z.CubeTo(cx+kx, y0, x1, cy-ky, x1, cy)
	r.z.ClosePath()
	r.fill(fill)
}

func (r *Raster) resetPath() {
	bounds := r.img.Bounds()
	r.z.Reset(bounds.Dx(), bounds.Dy())
}

// fill composites the accumulated path coverage onto the canvas with the
// given color using the alpha-over operator.
func (r *Raster) fill(fill color.RGBA) {
	r.z.DrawOp = draw.Over
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(fill), image.Point{})
}

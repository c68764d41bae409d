package render

import (
	"image"
	"image/color"
)

// Drawer is an abstraction the renderer provides to artwork code to fill
// shapes without exposing rasterization details.
//
// Rectangles are in canvas pixel coordinates. Fills composite over existing
// content with standard alpha-over, so a later opaque fill occludes earlier
// fills inside its area.
type Drawer interface {
	// FillRoundedRect fills rect with quarter-circle corners of the given
	// radius. A zero radius fills a sharp-cornered rectangle.
	FillRoundedRect(rect image.Rectangle, radiusPx int, fill color.RGBA)

	// FillEllipse fills the ellipse inscribed in rect.
	FillEllipse(rect image.Rectangle, fill color.RGBA)
}

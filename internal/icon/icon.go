// Package icon defines the application icon artwork: a water tank glyph on a
// rounded blue panel, drawn at a fixed 256x256 size.
package icon

import (
	"image"
	"image/color"

	"github.com/shipdocs/tank-monitoring-system/internal/render"
	"github.com/shipdocs/tank-monitoring-system/internal/render/layout"
)

// Geometry of the icon, in canvas pixels.
const (
	// Size is the canvas width and height.
	Size = 256

	Margin      = 20 // panel inset from the canvas edge
	PanelRadius = 20

	TankWidth  = 80
	TankHeight = 60
	TankRadius = 8

	LevelInset  = 5 // from the body's left, right, and bottom edges
	LevelHeight = 35
	LevelRadius = 4

	RimOverhang   = 5  // past the body on each side
	RimHalfHeight = 10 // rim ellipse half-height, centered on the body's top edge
)

// Palette for the icon artwork.
var (
	PanelBlue  = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff} // #2563eb
	TankWhite  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // #ffffff
	LevelGreen = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff} // #22c55e
)

// CanvasRect is the full icon canvas.
func CanvasRect() image.Rectangle {
	return image.Rect(0, 0, Size, Size)
}

// PanelRect is the rounded background panel.
func PanelRect() image.Rectangle {
	return layout.Inset(CanvasRect(), Margin)
}

// TankRect is the tank body, centered on the canvas.
func TankRect() image.Rectangle {
	return layout.Centered(CanvasRect(), TankWidth, TankHeight)
}

// LevelRect is the fill-level bar sitting on the bottom of the tank body.
func LevelRect() image.Rectangle {
	return layout.AnchorBottom(layout.Inset(TankRect(), LevelInset), LevelHeight)
}

// RimRect is the bounding box of the rim ellipse lying across the body's top
// edge.
func RimRect() image.Rectangle {
	tank := TankRect()
	rim := layout.ExpandX(tank, RimOverhang)
	rim.Min.Y = tank.Min.Y - RimHalfHeight
	rim.Max.Y = tank.Min.Y + RimHalfHeight
	return rim
}

// Compose draws the icon onto d. Fill order matters: the level bar paints
// over the body, and the rim paints over both.
func Compose(d render.Drawer) {
	d.FillRoundedRect(PanelRect(), PanelRadius, PanelBlue)
	d.FillRoundedRect(TankRect(), TankRadius, TankWhite)
	d.FillRoundedRect(LevelRect(), LevelRadius, LevelGreen)
	d.FillEllipse(RimRect(), TankWhite)
}

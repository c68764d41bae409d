package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// ExpandX grows rect by marginPx on the left and right sides only.
func ExpandX(rect image.Rectangle, marginPx int) image.Rectangle {
	if marginPx <= 0 {
		return rect
	}
	rect = Normalize(rect)
	return image.Rect(rect.Min.X-marginPx, rect.Min.Y, rect.Max.X+marginPx, rect.Max.Y)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// AnchorBottom returns a strip of height heightPx pinned to the bottom edge of rect.
// heightPx is clamped to [0, rect.Dy()].
func AnchorBottom(rect image.Rectangle, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if heightPx < 0 {
		heightPx = 0
	}
	if heightPx > rect.Dy() {
		heightPx = rect.Dy()
	}
	return image.Rect(rect.Min.X, rect.Max.Y-heightPx, rect.Max.X, rect.Max.Y)
}

// Centered returns a widthPx x heightPx rectangle centered on the center of rect.
// Odd remainders lean toward the top-left, matching integer division.
func Centered(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	centerX := rect.Min.X + rect.Dx()/2
	centerY := rect.Min.Y + rect.Dy()/2
	minX := centerX - widthPx/2
	minY := centerY - heightPx/2
	return image.Rect(minX, minY, minX+widthPx, minY+heightPx)
}

package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	tests := []struct {
		name      string
		rect      image.Rectangle
		paddingPx int
		want      image.Rectangle
	}{
		{"panel margin", image.Rect(0, 0, 256, 256), 20, image.Rect(20, 20, 236, 236)},
		{"single pixel", image.Rect(10, 10, 20, 20), 1, image.Rect(11, 11, 19, 19)},
		{"zero padding", image.Rect(0, 0, 10, 10), 0, image.Rect(0, 0, 10, 10)},
		{"negative padding is a no-op", image.Rect(0, 0, 10, 10), -3, image.Rect(0, 0, 10, 10)},
		{"collapses past center", image.Rect(0, 0, 10, 10), 8, image.Rect(2, 2, 8, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inset(tt.rect, tt.paddingPx)
			if got != tt.want {
				t.Errorf("Inset(%v, %d) = %v, want %v", tt.rect, tt.paddingPx, got, tt.want)
			}
		})
	}
}

func TestExpandX(t *testing.T) {
	tests := []struct {
		name     string
		rect     image.Rectangle
		marginPx int
		want     image.Rectangle
	}{
		{"rim overhang", image.Rect(88, 88, 168, 108), 5, image.Rect(83, 88, 173, 108)},
		{"zero margin", image.Rect(1, 2, 3, 4), 0, image.Rect(1, 2, 3, 4)},
		{"negative margin is a no-op", image.Rect(1, 2, 3, 4), -5, image.Rect(1, 2, 3, 4)},
		{"inverted input is normalized", image.Rectangle{Min: image.Pt(10, 0), Max: image.Pt(4, 4)}, 2, image.Rect(2, 0, 12, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandX(tt.rect, tt.marginPx)
			if got != tt.want {
				t.Errorf("ExpandX(%v, %d) = %v, want %v", tt.rect, tt.marginPx, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
		want image.Rectangle
	}{
		{"already normal", image.Rect(0, 0, 5, 5), image.Rect(0, 0, 5, 5)},
		{"swapped x", image.Rectangle{Min: image.Pt(5, 0), Max: image.Pt(0, 5)}, image.Rect(0, 0, 5, 5)},
		{"swapped y", image.Rectangle{Min: image.Pt(0, 5), Max: image.Pt(5, 0)}, image.Rect(0, 0, 5, 5)},
		{"swapped both", image.Rectangle{Min: image.Pt(5, 5), Max: image.Pt(0, 0)}, image.Rect(0, 0, 5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.rect)
			if got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.rect, got, tt.want)
			}
		})
	}
}

func TestAnchorBottom(t *testing.T) {
	tests := []struct {
		name     string
		rect     image.Rectangle
		heightPx int
		want     image.Rectangle
	}{
		{"level strip", image.Rect(93, 103, 163, 153), 35, image.Rect(93, 118, 163, 153)},
		{"full height", image.Rect(0, 0, 10, 10), 10, image.Rect(0, 0, 10, 10)},
		{"clamped to rect height", image.Rect(0, 0, 10, 10), 99, image.Rect(0, 0, 10, 10)},
		{"negative height clamps to empty", image.Rect(0, 0, 10, 10), -1, image.Rect(0, 10, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnchorBottom(tt.rect, tt.heightPx)
			if got != tt.want {
				t.Errorf("AnchorBottom(%v, %d) = %v, want %v", tt.rect, tt.heightPx, got, tt.want)
			}
		})
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		name     string
		rect     image.Rectangle
		widthPx  int
		heightPx int
		want     image.Rectangle
	}{
		{"tank body on canvas", image.Rect(0, 0, 256, 256), 80, 60, image.Rect(88, 98, 168, 158)},
		{"same size", image.Rect(0, 0, 10, 10), 10, 10, image.Rect(0, 0, 10, 10)},
		{"odd remainder leans top-left", image.Rect(0, 0, 10, 10), 3, 3, image.Rect(4, 4, 7, 7)},
		{"negative size clamps to point", image.Rect(0, 0, 10, 10), -2, -2, image.Rect(5, 5, 5, 5)},
		{"offset parent", image.Rect(100, 200, 110, 210), 4, 4, image.Rect(103, 203, 107, 207)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Centered(tt.rect, tt.widthPx, tt.heightPx)
			if got != tt.want {
				t.Errorf("Centered(%v, %d, %d) = %v, want %v", tt.rect, tt.widthPx, tt.heightPx, got, tt.want)
			}
		})
	}
}

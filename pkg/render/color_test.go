package render

import (
	"image/color"
	"testing"
)

func TestLerpColor(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	red := color.RGBA{255, 0, 0, 255}
	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"start", 0, green},
		{"end", 1, red},
		{"clamped low", -1, green},
		{"clamped high", 2, red},
		{"middle", 0.5, color.RGBA{128, 128, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpColor(green, red, tt.t); got != tt.want {
				t.Errorf("LerpColor(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestDarkenColor(t *testing.T) {
	if got := DarkenColor(color.RGBA{200, 100, 50, 255}); got != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("DarkenColor = %v", got)
	}
}

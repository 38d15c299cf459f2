package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBAClampsToLastEntry(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 6}}
	got := make([]byte, 12)
	fillPaletteRGBA(got, []uint8{0, 1, 5}, palette)
	want := []byte{1, 2, 3, 4, 9, 8, 7, 6, 9, 8, 7, 6}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{5, 5, 5, 5}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	if !slices.Equal(buf, []byte{0, 0, 0, 0}) {
		t.Fatalf("expected transparent black, got %v", buf)
	}
}

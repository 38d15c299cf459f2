//go:build ebiten

package ui

import (
	"image/color"

	"predprey/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws cell boundaries on top of the grid, toggled with G.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance. Grid lines start visible when
// cells are large enough to separate.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showGrid: scale >= 8}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw paints the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.scale < 2 {
		return
	}
	size := o.sim.Size()
	w := float64(size.W * o.scale)
	h := float64(size.H * o.scale)
	line := color.RGBA{R: 0, G: 0, B: 0, A: 90}
	for x := 0; x <= size.W; x++ {
		o.fillRect(screen, float64(x*o.scale), 0, 1, h, line)
	}
	for y := 0; y <= size.H; y++ {
		o.fillRect(screen, 0, float64(y*o.scale), w, 1, line)
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}

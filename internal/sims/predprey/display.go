package predprey

import "image/color"

var speciesPalette = []color.RGBA{
	SpeciesNone:   {R: 70, G: 52, B: 32, A: 255},
	SpeciesPlant:  {R: 70, G: 160, B: 80, A: 255},
	SpeciesRabbit: {R: 225, G: 215, B: 200, A: 255},
	SpeciesSalmon: {R: 250, G: 128, B: 114, A: 255},
	SpeciesWolf:   {R: 90, G: 90, B: 110, A: 255},
}

// Palette maps each species code in Cells to a color.
func (w *World) Palette() []color.RGBA {
	return speciesPalette
}

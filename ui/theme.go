package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type palette struct {
	background rl.Color
	border     rl.Color
	text       rl.Color
	overlay    rl.Color
	head       rl.Color
	food       rl.Color
	flash      rl.Color
}

var (
	darkPalette = palette{
		background: rl.Black,
		border:     rl.DarkGray,
		text:       rl.White,
		overlay:    rl.Color{R: 0, G: 0, B: 0, A: 153},
		head:       rl.Color{R: 0, G: 255, B: 0, A: 255},
		food:       rl.Red,
		flash:      rl.Color{R: 230, G: 41, B: 55, A: 90},
	}
	lightPalette = palette{
		background: rl.RayWhite,
		border:     rl.LightGray,
		text:       rl.DarkGray,
		overlay:    rl.Color{R: 245, G: 245, B: 245, A: 178},
		head:       rl.DarkGreen,
		food:       rl.Maroon,
		flash:      rl.Color{R: 190, G: 33, B: 55, A: 64},
	}
)

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// segmentColor fades the body from green towards blue, tail-wards.
func segmentColor(segment int) rl.Color {
	green := 200 - segment*5
	if green < 0 {
		green = 0
	}
	blue := segment * 8
	if blue > 255 {
		blue = 255
	}
	return rl.Color{R: 0, G: uint8(green), B: uint8(blue), A: 255}
}

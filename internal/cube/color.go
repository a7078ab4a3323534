package cube

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/navcube/internal/regions"
)

// Color is an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

// RGBA8 returns the color as 8-bit components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5), uint8(c.A*255 + 0.5)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return Color{}, fmt.Errorf("color %q: %w", s, regions.ErrInvalidArgument)
	}
	v, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, regions.ErrInvalidArgument)
	}

	if len(s) == 9 {
		return RGB(uint8(v>>24), uint8(v>>16), uint8(v>>8)).WithAlpha(float32(uint8(v)) / 255.0), nil
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

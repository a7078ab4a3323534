package cube

import (
	"image"
	stdcolor "image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/navcube/internal/regions"
)

// labelTileSize is the unscaled face texture size in pixels. The bitmap
// font stays crisp under integer upscaling.
const labelTileSize = 64

// LabelImage renders a face label centered on a square tile of background
// color, upscaled by the given integer factor.
func LabelImage(text string, textColor, background Color, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	tile := image.NewRGBA(image.Rect(0, 0, labelTileSize, labelTileSize))
	br, bg, bb, ba := background.RGBA8()
	draw.Draw(tile, tile.Bounds(), image.NewUniform(stdcolor.RGBA{br, bg, bb, ba}), image.Point{}, draw.Src)

	if text != "" {
		tr, tg, tb, ta := textColor.RGBA8()
		face := basicfont.Face7x13
		d := &font.Drawer{
			Dst:  tile,
			Src:  image.NewUniform(stdcolor.RGBA{tr, tg, tb, ta}),
			Face: face,
		}

		width := d.MeasureString(text).Ceil()
		x := (labelTileSize - width) / 2
		y := (labelTileSize + face.Ascent - face.Descent) / 2
		d.Dot = fixed.P(x, y)
		d.DrawString(text)
	}

	if scale == 1 {
		return tile
	}
	return upscale(tile, scale)
}

// upscale performs nearest-neighbor integer upscaling.
func upscale(src *image.RGBA, factor int) *image.RGBA {
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()*factor, sb.Dy()*factor))
	for y := 0; y < dst.Bounds().Dy(); y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			dst.SetRGBA(x, y, src.RGBAAt(x/factor, y/factor))
		}
	}
	return dst
}

// FaceLabels bakes the six face textures in face-ID order (Front through
// Bottom).
func FaceLabels(labels [6]string, textColor, background Color, scale int) [6]*image.RGBA {
	var out [6]*image.RGBA
	for face := regions.Front; face <= regions.Bottom; face++ {
		out[face-regions.Front] = LabelImage(labels[face-regions.Front], textColor, background, scale)
	}
	return out
}

package glcd

import (
	"image"

	"go.uber.org/zap"

	"seriallcd/pkg/bitmap"
)

func (d *Display) monochrome(img image.Image) *bitmap.Mono {
	if d.dither {
		return bitmap.Dither(img)
	}
	return bitmap.Threshold(img)
}

// renderImage issues one clear for the rectangle and then one pixel command
// per lit pixel, row by row. Unlit pixels rely on the clear.
func (d *Display) renderImage(img image.Image, rect image.Rectangle, invert bool) error {
	r := rect.Canon()
	mono := d.monochrome(img).Resize(r.Dx(), r.Dy())

	if err := d.clearBlock(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y); err != nil {
		return err
	}

	var lit int
	for j := 0; j < mono.Height(); j++ {
		for i := 0; i < mono.Width(); i++ {
			if mono.Bit(i, j) == invert {
				continue
			}
			if err := d.setPixel(r.Min.X+i, r.Min.Y+j, true); err != nil {
				return err
			}
			lit++
		}
	}

	d.logger.With(
		zap.String("rect", r.String()),
		zap.Bool("invert", invert),
		zap.Int("pixels", lit),
	).Debug("image rendered")

	return nil
}

// RenderImage draws img scaled into rect. Each lit pixel costs one serial command.
func (d *Display) RenderImage(img image.Image, rect image.Rectangle, invert bool) error {
	return d.do(func() error { return d.renderImage(img, rect, invert) })
}

// RenderFile loads the image at path and draws it like RenderImage.
func (d *Display) RenderFile(path string, rect image.Rectangle, invert bool) error {
	img, err := bitmap.Load(path)
	if err != nil {
		return err
	}
	return d.RenderImage(img, rect, invert)
}

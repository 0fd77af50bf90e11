// Package flags registers the command line flags shared by the binaries.
package flags

import (
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"seriallcd/pkg/device/glcd"
)

type Display struct {
	Serial        string
	Baud          int
	Width         int
	Height        int
	GlyphWidth    int
	GlyphHeight   int
	LetterSpacing int
	LineHeight    int
	Settle        time.Duration
	Dither        bool
	Debug         bool
}

func Register(fs *flag.FlagSet) *Display {
	d := &Display{}
	fs.StringVar(&d.Serial, "serial", "/dev/ttyAMA0", "serial device path or name fragment")
	fs.IntVar(&d.Baud, "baud", 115200, "baud rate the port is opened at")
	fs.IntVar(&d.Width, "width", 160, "panel width in pixels")
	fs.IntVar(&d.Height, "height", 128, "panel height in pixels")
	fs.IntVar(&d.GlyphWidth, "glyph-width", 5, "character cell width")
	fs.IntVar(&d.GlyphHeight, "glyph-height", 7, "character cell height")
	fs.IntVar(&d.LetterSpacing, "letter-spacing", 1, "pixels between characters")
	fs.IntVar(&d.LineHeight, "line-height", 1, "pixels between text rows")
	fs.DurationVar(&d.Settle, "settle", time.Second, "wait after a baud rate change")
	fs.BoolVar(&d.Dither, "dither", false, "dither images instead of thresholding")
	fs.BoolVar(&d.Debug, "debug", false, "log every transfer")
	return d
}

func (d *Display) Options() []glcd.Option {
	return []glcd.Option{
		glcd.WithBaudRate(d.Baud),
		glcd.WithSize(d.Width, d.Height),
		glcd.WithGlyph(d.GlyphWidth, d.GlyphHeight),
		glcd.WithSpacing(d.LetterSpacing, d.LineHeight),
		glcd.WithSettleDelay(d.Settle),
		glcd.WithDither(d.Dither),
	}
}

func (d *Display) Logger() (*zap.Logger, error) {
	if d.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

package glcd

import (
	"time"
)

type Option func(d *Display)

// WithSize sets the panel size in pixels.
func WithSize(width, height int) Option {
	return func(d *Display) {
		d.width = width
		d.height = height
	}
}

// WithGlyph sets the character cell size in pixels.
func WithGlyph(width, height int) Option {
	return func(d *Display) {
		d.charWidth = width
		d.charHeight = height
	}
}

func WithSpacing(letter, line int) Option {
	return func(d *Display) {
		d.letterSpacing = letter
		d.lineHeight = line
	}
}

// WithBaudRate sets the rate the port is opened at.
func WithBaudRate(rate int) Option {
	return func(d *Display) {
		d.baud = rate
	}
}

func WithSettleDelay(delay time.Duration) Option {
	return func(d *Display) {
		d.settle = delay
	}
}

func WithSleep(fn func(time.Duration)) Option {
	return func(d *Display) {
		d.sleep = fn
	}
}

// WithDither renders images with error diffusion instead of a plain threshold.
func WithDither(dither bool) Option {
	return func(d *Display) {
		d.dither = dither
	}
}

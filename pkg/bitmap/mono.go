package bitmap

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/makeworld-the-better-one/dither/v2"
)

// luminance below which a thresholded pixel counts as ink
const threshold = 0x80

func NewMono(width, height int) *Mono {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mono{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Mono is a 1 bit per pixel bitmap. A set bit is a dark (ink) pixel.
// It implements image.Image so it can be fed back into imaging.
type Mono struct {
	width  int
	height int
	bits   []bool
}

func (m *Mono) Width() int {
	return m.width
}

func (m *Mono) Height() int {
	return m.height
}

func (m *Mono) Bit(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

func (m *Mono) Set(x, y int, on bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = on
}

// Count returns the number of set pixels.
func (m *Mono) Count() int {
	var n int
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

func (m *Mono) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

func (m *Mono) ColorModel() color.Model {
	return color.GrayModel
}

func (m *Mono) At(x, y int) color.Color {
	if m.Bit(x, y) {
		return color.Black
	}
	return color.White
}

// Resize scales the bitmap to exactly width x height with nearest neighbour
// sampling, so no intermediate grey levels appear.
func (m *Mono) Resize(width, height int) *Mono {
	if width <= 0 || height <= 0 || m.width == 0 || m.height == 0 {
		return NewMono(width, height)
	}
	if width == m.width && height == m.height {
		dst := NewMono(width, height)
		copy(dst.bits, m.bits)
		return dst
	}
	return Threshold(imaging.Resize(m, width, height, imaging.NearestNeighbor))
}

// Threshold converts img to monochrome by luminance. Transparent pixels are unset.
func Threshold(img image.Image) *Mono {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	m := NewMono(b.Dx(), b.Dy())

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := gray.PixOffset(b.Min.X+x, b.Min.Y+y)
			if gray.Pix[i+3] < 0x80 {
				continue
			}
			m.bits[y*m.width+x] = gray.Pix[i] < threshold
		}
	}

	return m
}

// Dither converts img to monochrome with Floyd-Steinberg error diffusion.
func Dither(img image.Image) *Mono {
	gray := imaging.Grayscale(img)

	palette := []color.Color{color.Black, color.White}
	ditherer := dither.NewDitherer(palette)
	ditherer.Matrix = dither.FloydSteinberg
	ditherer.Serpentine = true
	paletted := ditherer.DitherPaletted(gray)

	ink := uint8(paletted.Palette.Index(color.Black))
	b := paletted.Bounds()
	m := NewMono(b.Dx(), b.Dy())

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.bits[y*m.width+x] = paletted.ColorIndexAt(b.Min.X+x, b.Min.Y+y) == ink
		}
	}

	return m
}

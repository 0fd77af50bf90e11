package proto

import (
	"image"
	"strings"

	"github.com/pkg/errors"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, errors.Errorf("unknown align %q", s)
}

// Control is implemented by every display backend: the serial device,
// the logging mock and the rpc client.
type Control interface {
	Clear() error
	ReverseVideo() error
	Splash() error
	Demo() error

	SetBacklight(duty int) error
	SetBaudRate(rate int) error
	RestoreBaudRate() error

	SetX(x int) error
	SetY(y int) error
	SetPosition(x, y int) error
	SetRow(row int) error
	SetCol(col int) error
	SetRowCol(row, col int) error
	Home() error

	// WriteText sends s as raw bytes; width 0 means the display width.
	WriteText(s string, align Align, width int) error
	WriteLine(s string) error

	SetPixel(x, y int, on bool) error
	SetLine(x1, y1, x2, y2 int) error
	ClearLine(x1, y1, x2, y2 int) error
	SetBox(x1, y1, x2, y2 int) error
	ClearBox(x1, y1, x2, y2 int) error
	SetCircle(x, y, rad int) error
	ClearCircle(x, y, rad int) error
	ClearBlock(x1, y1, x2, y2 int) error

	RenderImage(img image.Image, rect image.Rectangle, invert bool) error

	Close() error
}

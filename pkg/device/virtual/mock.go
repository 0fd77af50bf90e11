package virtual

import (
	"image"

	"go.uber.org/zap"

	"seriallcd/pkg/proto"
)

// Mock returns a display that only logs what it is asked to do.
func Mock(logger *zap.Logger) proto.Control {
	return &Mocker{l: logger}
}

type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) Clear() error {
	m.l.Info("clear")
	return nil
}

func (m *Mocker) ReverseVideo() error {
	m.l.Info("reverse-video")
	return nil
}

func (m *Mocker) Splash() error {
	m.l.Info("splash")
	return nil
}

func (m *Mocker) Demo() error {
	m.l.Info("demo")
	return nil
}

func (m *Mocker) SetBacklight(duty int) error {
	m.l.With(zap.Int("duty", duty)).Info("set-backlight")
	return nil
}

func (m *Mocker) SetBaudRate(rate int) error {
	m.l.With(zap.Int("rate", rate)).Info("set-baud-rate")
	return nil
}

func (m *Mocker) RestoreBaudRate() error {
	m.l.Info("restore-baud-rate")
	return nil
}

func (m *Mocker) SetX(x int) error {
	m.l.With(zap.Int("x", x)).Info("set-x")
	return nil
}

func (m *Mocker) SetY(y int) error {
	m.l.With(zap.Int("y", y)).Info("set-y")
	return nil
}

func (m *Mocker) SetPosition(x, y int) error {
	m.l.With(zap.Int("x", x), zap.Int("y", y)).Info("set-position")
	return nil
}

func (m *Mocker) SetRow(row int) error {
	m.l.With(zap.Int("row", row)).Info("set-row")
	return nil
}

func (m *Mocker) SetCol(col int) error {
	m.l.With(zap.Int("col", col)).Info("set-col")
	return nil
}

func (m *Mocker) SetRowCol(row, col int) error {
	m.l.With(zap.Int("row", row), zap.Int("col", col)).Info("set-row-col")
	return nil
}

func (m *Mocker) Home() error {
	m.l.Info("home")
	return nil
}

func (m *Mocker) WriteText(s string, align proto.Align, width int) error {
	m.l.With(zap.String("text", s), zap.Stringer("align", align), zap.Int("width", width)).Info("write-text")
	return nil
}

func (m *Mocker) WriteLine(s string) error {
	m.l.With(zap.String("text", s)).Info("write-line")
	return nil
}

func (m *Mocker) SetPixel(x, y int, on bool) error {
	m.l.With(zap.Int("x", x), zap.Int("y", y), zap.Bool("on", on)).Info("set-pixel")
	return nil
}

func (m *Mocker) shape(name string, on bool, vs ...int) error {
	m.l.With(zap.Ints("args", vs), zap.Bool("on", on)).Info(name)
	return nil
}

func (m *Mocker) SetLine(x1, y1, x2, y2 int) error {
	return m.shape("line", true, x1, y1, x2, y2)
}

func (m *Mocker) ClearLine(x1, y1, x2, y2 int) error {
	return m.shape("line", false, x1, y1, x2, y2)
}

func (m *Mocker) SetBox(x1, y1, x2, y2 int) error {
	return m.shape("box", true, x1, y1, x2, y2)
}

func (m *Mocker) ClearBox(x1, y1, x2, y2 int) error {
	return m.shape("box", false, x1, y1, x2, y2)
}

func (m *Mocker) SetCircle(x, y, rad int) error {
	return m.shape("circle", true, x, y, rad)
}

func (m *Mocker) ClearCircle(x, y, rad int) error {
	return m.shape("circle", false, x, y, rad)
}

func (m *Mocker) ClearBlock(x1, y1, x2, y2 int) error {
	return m.shape("clear-block", false, x1, y1, x2, y2)
}

func (m *Mocker) RenderImage(img image.Image, rect image.Rectangle, invert bool) error {
	m.l.With(
		zap.String("rect", rect.Canon().String()),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
		zap.Bool("invert", invert),
	).Info("render-image")
	return nil
}

func (m *Mocker) Close() error {
	m.l.Info("close")
	return nil
}

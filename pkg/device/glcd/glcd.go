package glcd

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"seriallcd/pkg/proto"
)

// escape byte leading every command frame
const Escape = 0x7C

const (
	CmdClear      = 0x00
	CmdBacklight  = 0x02
	CmdCircle     = 0x03
	CmdDemo       = 0x04
	CmdClearBlock = 0x05
	CmdBaudRate   = 0x07
	CmdLine       = 0x0C
	CmdBox        = 0x0F
	CmdPixel      = 0x10
	CmdReverse    = 0x12
	CmdSplash     = 0x13
	CmdSetX       = 0x18
	CmdSetY       = 0x19
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrClosed          = errors.New("display closed")
)

// New wraps an already open port. The port is owned by the display from now on.
//
// A write that never completes blocks the caller forever; there is no
// timeout or cancellation on the serial link.
func New(port proto.Port, logger *zap.Logger, opts ...Option) (*Display, error) {
	d := &Display{
		port:          port,
		logger:        logger,
		width:         160,
		height:        128,
		charWidth:     5,
		charHeight:    7,
		letterSpacing: 1,
		lineHeight:    1,
		baud:          115200,
		settle:        time.Second,
		sleep:         time.Sleep,
	}

	for _, opt := range opts {
		opt(d)
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Open opens link at the configured baud rate and returns a display on it.
func Open(link proto.Link, logger *zap.Logger, opts ...Option) (*Display, error) {
	d, err := New(link, logger, opts...)
	if err != nil {
		return nil, err
	}

	if err := link.Open(&proto.Options{BaudRate: d.baud}); err != nil {
		return nil, err
	}

	logger.With(zap.String("port", link.Name()), zap.Int("baud", d.baud)).Debug("opened")
	return d, nil
}

// With opens a display, runs fn and closes the display on every exit path.
func With(link proto.Link, logger *zap.Logger, fn func(d *Display) error, opts ...Option) (err error) {
	d, err := Open(link, logger, opts...)
	if err != nil {
		return err
	}

	defer func() {
		if cErr := d.Close(); err == nil {
			err = cErr
		}
	}()

	return fn(d)
}

var _ proto.Control = (*Display)(nil)

type Display struct {
	sync.Mutex

	port   proto.Port
	logger *zap.Logger
	closed bool

	width         int
	height        int
	charWidth     int
	charHeight    int
	letterSpacing int
	lineHeight    int
	baud          int

	settle time.Duration
	sleep  func(time.Duration)
	dither bool
}

func (d *Display) validate() error {
	if d.width <= 0 || d.width > 0xFF || d.height <= 0 || d.height > 0xFF {
		return errors.Wrapf(ErrInvalidArgument, "size %dx%d", d.width, d.height)
	}
	if d.charWidth <= 0 || d.charHeight <= 0 || d.charHeight > d.height {
		return errors.Wrapf(ErrInvalidArgument, "glyph %dx%d", d.charWidth, d.charHeight)
	}
	if d.letterSpacing < 0 || d.lineHeight < 0 {
		return errors.Wrapf(ErrInvalidArgument, "spacing %d/%d", d.letterSpacing, d.lineHeight)
	}
	if _, ok := baudKeys[d.baud]; !ok {
		return errors.Wrapf(ErrInvalidArgument, "baud rate %d", d.baud)
	}
	return nil
}

// do runs fn holding the display lock, refusing to touch a closed port.
func (d *Display) do(fn func() error) error {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return ErrClosed
	}
	return fn()
}

func (d *Display) Width() int {
	return d.width
}

func (d *Display) Height() int {
	return d.height
}

// BaudRate is the rate the host side of the link is currently set to.
func (d *Display) BaudRate() int {
	d.Lock()
	defer d.Unlock()
	return d.baud
}

func (d *Display) Close() error {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.closed = true

	d.logger.Debug("close")
	return d.port.Close()
}

func (d *Display) Clear() error {
	return d.do(func() error { return d.sendBytes(cmdClear()) })
}

// ReverseVideo toggles reverse mode. The firmware clears the screen as well.
func (d *Display) ReverseVideo() error {
	return d.do(func() error { return d.sendBytes(cmdReverse()) })
}

// Splash asks for the vendor splash screen. Firmware support for this is unverified.
func (d *Display) Splash() error {
	return d.do(func() error { return d.sendBytes(cmdSplash()) })
}

// Demo asks for the vendor demo. Firmware support for this is unverified.
func (d *Display) Demo() error {
	return d.do(func() error { return d.sendBytes(cmdDemo()) })
}

// SetBacklight sets the backlight duty cycle in percent.
func (d *Display) SetBacklight(duty int) error {
	if duty < 0 || duty > 100 {
		return errors.Wrapf(ErrInvalidArgument, "backlight duty %d", duty)
	}
	return d.do(func() error { return d.sendBytes(cmdBacklight(byte(duty))) })
}

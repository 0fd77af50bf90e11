package glcd

import (
	"github.com/pkg/errors"
)

// cursorY maps a top-left origin text row to the device's inverted axis.
// Rows too close to the bottom edge are pinned to charHeight so a glyph
// never starts inside the unprintable margin, however far down y is.
func (d *Display) cursorY(y int) (byte, error) {
	if y < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "y %d above the panel", y)
	}
	if y > d.height-d.charHeight {
		return byte(d.charHeight), nil
	}
	return byte(d.height - y), nil
}

// pixelY maps a top-left origin pixel row to the device's inverted axis.
// Unlike cursorY nothing is clamped.
func (d *Display) pixelY(y int) (byte, error) {
	if _, err := toByte("y", y); err != nil {
		return 0, err
	}
	if y > d.height {
		return 0, errors.Wrapf(ErrInvalidArgument, "y %d below the panel", y)
	}
	return byte(d.height - y), nil
}

func (d *Display) setX(x int) error {
	b, err := toByte("x", x)
	if err != nil {
		return err
	}
	return d.sendBytes(cmdSetX(b))
}

func (d *Display) setY(y int) error {
	b, err := d.cursorY(y)
	if err != nil {
		return err
	}
	return d.sendBytes(cmdSetY(b))
}

func (d *Display) rowY(row int) int {
	return row*(d.charHeight+d.lineHeight) + 1
}

func (d *Display) colX(col int) int {
	return col*(d.charWidth+d.letterSpacing) + 1
}

func (d *Display) SetX(x int) error {
	return d.do(func() error { return d.setX(x) })
}

func (d *Display) SetY(y int) error {
	return d.do(func() error { return d.setY(y) })
}

// SetPosition sends X then Y as two separate commands.
func (d *Display) SetPosition(x, y int) error {
	return d.do(func() error {
		if err := d.setX(x); err != nil {
			return err
		}
		return d.setY(y)
	})
}

func (d *Display) SetRow(row int) error {
	return d.do(func() error { return d.setY(d.rowY(row)) })
}

func (d *Display) SetCol(col int) error {
	return d.do(func() error { return d.setX(d.colX(col)) })
}

func (d *Display) SetRowCol(row, col int) error {
	return d.do(func() error {
		if err := d.setY(d.rowY(row)); err != nil {
			return err
		}
		return d.setX(d.colX(col))
	})
}

func (d *Display) Home() error {
	return d.do(func() error {
		if err := d.setX(0); err != nil {
			return err
		}
		return d.setY(0)
	})
}

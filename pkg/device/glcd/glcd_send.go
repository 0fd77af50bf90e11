package glcd

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// toByte checks that v fits a single protocol byte.
func toByte(field string, v int) (byte, error) {
	if v < 0 || v > 0xFF {
		return 0, errors.Wrapf(ErrInvalidArgument, "%s %d out of byte range", field, v)
	}
	return byte(v), nil
}

func toBytes(fields []string, vs ...int) ([]byte, error) {
	bs := make([]byte, len(vs))
	for i, v := range vs {
		b, err := toByte(fields[i], v)
		if err != nil {
			return nil, err
		}
		bs[i] = b
	}
	return bs, nil
}

func flag(on bool) byte {
	return lo.Ternary[byte](on, 0x01, 0x00)
}

func cmdClear() []byte {
	return []byte{Escape, CmdClear}
}

func cmdReverse() []byte {
	return []byte{Escape, CmdReverse}
}

func cmdSplash() []byte {
	return []byte{Escape, CmdSplash}
}

func cmdDemo() []byte {
	return []byte{Escape, CmdDemo}
}

func cmdBacklight(duty byte) []byte {
	return []byte{Escape, CmdBacklight, duty}
}

func cmdBaudRate(key byte) []byte {
	return []byte{Escape, CmdBaudRate, key}
}

func cmdSetX(x byte) []byte {
	return []byte{Escape, CmdSetX, x}
}

func cmdSetY(y byte) []byte {
	return []byte{Escape, CmdSetY, y}
}

func cmdPixel(x, y byte, on bool) []byte {
	return []byte{Escape, CmdPixel, x, y, flag(on)}
}

// cmdSegment encodes the two-corner shapes, line and box.
func cmdSegment(op byte, x1, y1, x2, y2 byte, on bool) []byte {
	return []byte{Escape, op, x1, y1, x2, y2, flag(on)}
}

func cmdCircle(x, y, rad byte, on bool) []byte {
	return []byte{Escape, CmdCircle, x, y, rad, flag(on)}
}

func cmdClearBlock(x1, y1, x2, y2 byte) []byte {
	return []byte{Escape, CmdClearBlock, x1, y1, x2, y2}
}

func (d *Display) sendBytes(bytes []byte) error {
	if len(bytes) == 0 {
		return nil
	}

	var sent int
	var cost time.Duration

	start := time.Now()
	if n, err := d.port.Write(bytes); err != nil {
		return errors.Wrap(err, "serial write")
	} else if n < len(bytes) {
		return errors.Wrap(io.ErrShortWrite, "serial write")
	} else {
		sent = n
		cost = time.Since(start)
	}

	ext := ""
	if len(bytes) <= 16 {
		ext = fmt.Sprintf("%x", bytes)
	}

	d.logger.With(
		zap.Int("sent", sent),
		zap.String("cost", cost.String()),
		zap.String("data", ext),
	).Debug("transfer")

	return nil
}

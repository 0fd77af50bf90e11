package glcd

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"seriallcd/pkg/proto"
)

// line terminator as documented by the vendor; the firmware's handling of it is unverified
var lineEnd = []byte{0x10, 0x13}

// encodeText converts s to the panel's single byte charset. Control bytes
// pass through untouched, and so do bytes that are not valid UTF-8, which
// lets callers hand over text that is already ISO-8859-1.
func encodeText(s string) ([]byte, error) {
	bs := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			bs = append(bs, s[i])
			i++
			continue
		}

		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidArgument, "text %q: rune %U not in ISO-8859-1", s, r)
		}
		bs = append(bs, b)
		i += size
	}
	return bs, nil
}

// padding is the number of spaces putting n glyphs at align within width pixels.
func (d *Display) padding(n int, align proto.Align, width int) int {
	cols := width / (d.charWidth + d.letterSpacing)

	var pad int
	switch align {
	case proto.AlignCenter:
		pad = (cols - n) / 2
	case proto.AlignRight:
		pad = cols - n
	}

	if pad < 0 {
		return 0
	}
	return pad
}

func (d *Display) writeText(s string, align proto.Align, width int) error {
	if width < 0 {
		return errors.Wrapf(ErrInvalidArgument, "text width %d", width)
	}
	if width == 0 {
		width = d.width
	}

	bs, err := encodeText(s)
	if err != nil {
		return err
	}

	pad := d.padding(len(bs), align, width)
	if pad > 0 {
		bs = append(bytes.Repeat([]byte{' '}, pad), bs...)
	}

	return d.sendBytes(bs)
}

// WriteText writes s at the cursor. UTF-8 text is converted to ISO-8859-1;
// bytes of s that are not valid UTF-8 are sent as they are. There is no
// wrapping and no escaping, so a 0x7C inside s starts a command.
func (d *Display) WriteText(s string, align proto.Align, width int) error {
	return d.do(func() error { return d.writeText(s, align, width) })
}

func (d *Display) WriteLine(s string) error {
	return d.do(func() error {
		if err := d.writeText(s, proto.AlignLeft, 0); err != nil {
			return err
		}
		return d.sendBytes(lineEnd)
	})
}

package glcd

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BaudRates lists the supported rates in handshake order.
var BaudRates = []int{4800, 9600, 19200, 38400, 57600, 115200}

var baudKeys = map[int]byte{
	4800:   0x31,
	9600:   0x32,
	19200:  0x33,
	38400:  0x34,
	57600:  0x35,
	115200: 0x36,
}

func (d *Display) setBaudRate(rate int) error {
	key, ok := baudKeys[rate]
	if !ok {
		return errors.Wrapf(ErrInvalidArgument, "%d is an invalid baud rate", rate)
	}

	if err := d.sendBytes(cmdBaudRate(key)); err != nil {
		return err
	}

	if err := d.port.SetBaudRate(rate); err != nil {
		return errors.Wrap(err, "host baud rate")
	}
	d.baud = rate

	d.logger.With(zap.Int("baud", rate), zap.Duration("settle", d.settle)).Info("baud rate changed")
	d.sleep(d.settle)
	return nil
}

// SetBaudRate switches device and host to rate, then waits for the device to settle.
func (d *Display) SetBaudRate(rate int) error {
	return d.do(func() error { return d.setBaudRate(rate) })
}

// RestoreBaudRate walks every supported rate upwards so a device at an
// unknown rate ends up at 115200. It takes one settle delay per rate.
func (d *Display) RestoreBaudRate() error {
	return d.do(func() error {
		for _, rate := range BaudRates {
			if err := d.setBaudRate(rate); err != nil {
				return err
			}
		}
		return nil
	})
}

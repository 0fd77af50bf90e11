package proto

import (
	"strings"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

type Options struct {
	DTR      bool
	RTS      bool
	BaudRate int
}

// Port is the write-only byte stream a display talks through.
type Port interface {
	Write(p []byte) (n int, err error)
	Close() error
	SetBaudRate(rate int) error
}

// Link is a Port that still has to be opened.
type Link interface {
	Port
	Open(opts *Options) error
	Name() string
}

func NewSerial(name string) *Serial {
	return &Serial{name: name}
}

type Serial struct {
	name string
	port serial.Port
}

func (s *Serial) Ports() ([]string, error) {
	return serial.GetPortsList()
}

// Name is the configured port name, before discovery.
func (s *Serial) Name() string {
	return s.name
}

func (s *Serial) resolve() (string, error) {
	if strings.HasPrefix(s.name, "/") || strings.HasPrefix(s.name, "COM") {
		return s.name, nil
	}

	ports, err := s.Ports()
	if err != nil {
		return "", err
	}

	for _, name := range ports {
		if strings.Contains(name, s.name) {
			return name, nil
		}
	}
	return "", errors.New("serial port not found")
}

func (s *Serial) Open(opts *Options) error {
	matched, err := s.resolve()
	if err != nil {
		return err
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return errors.Wrap(err, "open serial")
	}

	if opts.DTR {
		if err := port.SetDTR(true); err != nil {
			_ = port.Close()
			return err
		}
	}

	if opts.RTS {
		if err := port.SetRTS(true); err != nil {
			_ = port.Close()
			return err
		}
	}

	s.port = port
	return nil
}

// SetBaudRate reconfigures the host side of an open port.
func (s *Serial) SetBaudRate(rate int) error {
	if s.port == nil {
		return errors.New("serial not open")
	}
	return s.port.SetMode(&serial.Mode{BaudRate: rate})
}

func (s *Serial) Close() error {
	if s.port == nil {
		return errors.New("serial not open")
	}
	err := s.port.Close()
	s.port = nil
	return err
}

func (s *Serial) Write(p []byte) (n int, err error) {
	if s.port == nil {
		return 0, errors.New("serial not open")
	}
	return s.port.Write(p)
}

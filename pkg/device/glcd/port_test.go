package glcd

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"seriallcd/pkg/proto"
)

type fakePort struct {
	sync.Mutex
	writes  [][]byte
	bauds   []int
	opened  *proto.Options
	closed  bool
	err     error
	openErr error
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.Lock()
	defer p.Unlock()
	if p.err != nil {
		return 0, p.err
	}
	p.writes = append(p.writes, append([]byte(nil), b...))
	return len(b), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func (p *fakePort) SetBaudRate(rate int) error {
	p.bauds = append(p.bauds, rate)
	return nil
}

func (p *fakePort) Open(opts *proto.Options) error {
	if p.openErr != nil {
		return p.openErr
	}
	p.opened = opts
	return nil
}

func (p *fakePort) Name() string {
	return "fake"
}

func (p *fakePort) all() []byte {
	return bytes.Join(p.writes, nil)
}

type sleeps struct {
	calls []time.Duration
}

func (s *sleeps) sleep(d time.Duration) {
	s.calls = append(s.calls, d)
}

func newTestDisplay(t *testing.T, opts ...Option) (*Display, *fakePort, *sleeps) {
	t.Helper()

	port := &fakePort{}
	s := &sleeps{}
	d, err := New(port, zaptest.NewLogger(t), append([]Option{WithSleep(s.sleep)}, opts...)...)
	require.NoError(t, err)
	return d, port, s
}

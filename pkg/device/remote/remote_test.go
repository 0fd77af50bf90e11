package remote

import (
	"bytes"
	"image"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"seriallcd/pkg/bitmap"
	"seriallcd/pkg/device/glcd"
	"seriallcd/pkg/proto"
)

type memPort struct {
	sync.Mutex
	buf   bytes.Buffer
	bauds []int
}

func (p *memPort) Write(b []byte) (int, error) {
	p.Lock()
	defer p.Unlock()
	return p.buf.Write(b)
}

func (p *memPort) Close() error {
	return nil
}

func (p *memPort) SetBaudRate(rate int) error {
	p.bauds = append(p.bauds, rate)
	return nil
}

func (p *memPort) take() []byte {
	p.Lock()
	defer p.Unlock()
	bs := append([]byte(nil), p.buf.Bytes()...)
	p.buf.Reset()
	return bs
}

func newProxy(t *testing.T) (proto.Control, *memPort) {
	t.Helper()

	port := &memPort{}
	dev, err := glcd.New(port, zaptest.NewLogger(t), glcd.WithSettleDelay(0))
	require.NoError(t, err)

	handler, err := Handler(dev)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.Listener.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, port
}

func TestClientCommands(t *testing.T) {
	client, port := newProxy(t)

	tests := []struct {
		name string
		run  func() error
		want []byte
	}{
		{"clear", client.Clear, []byte{0x7C, 0x00}},
		{"reverse", client.ReverseVideo, []byte{0x7C, 0x12}},
		{"splash", client.Splash, []byte{0x7C, 0x13}},
		{"demo", client.Demo, []byte{0x7C, 0x04}},
		{"home", client.Home, []byte{0x7C, 0x18, 0, 0x7C, 0x19, 128}},
		{"backlight", func() error { return client.SetBacklight(80) }, []byte{0x7C, 0x02, 80}},
		{"baud", func() error { return client.SetBaudRate(38400) }, []byte{0x7C, 0x07, 0x34}},
		{"x", func() error { return client.SetX(9) }, []byte{0x7C, 0x18, 9}},
		{"y", func() error { return client.SetY(8) }, []byte{0x7C, 0x19, 120}},
		{"position", func() error { return client.SetPosition(1, 2) }, []byte{0x7C, 0x18, 1, 0x7C, 0x19, 126}},
		{"row", func() error { return client.SetRow(1) }, []byte{0x7C, 0x19, 119}},
		{"col", func() error { return client.SetCol(1) }, []byte{0x7C, 0x18, 7}},
		{"row col", func() error { return client.SetRowCol(1, 2) }, []byte{0x7C, 0x19, 119, 0x7C, 0x18, 13}},
		{"text", func() error { return client.WriteText("AB", proto.AlignLeft, 0) }, []byte("AB")},
		{"line text", func() error { return client.WriteLine("A") }, []byte{'A', 0x10, 0x13}},
		{"pixel", func() error { return client.SetPixel(3, 4, true) }, []byte{0x7C, 0x10, 3, 124, 1}},
		{"line", func() error { return client.SetLine(0, 0, 1, 1) }, []byte{0x7C, 0x0C, 0, 128, 1, 127, 1}},
		{"clear line", func() error { return client.ClearLine(0, 0, 1, 1) }, []byte{0x7C, 0x0C, 0, 128, 1, 127, 0}},
		{"box", func() error { return client.SetBox(0, 0, 1, 1) }, []byte{0x7C, 0x0F, 0, 128, 1, 127, 1}},
		{"clear box", func() error { return client.ClearBox(0, 0, 1, 1) }, []byte{0x7C, 0x0F, 0, 128, 1, 127, 0}},
		{"block", func() error { return client.ClearBlock(0, 0, 1, 1) }, []byte{0x7C, 0x05, 0, 128, 1, 127}},
		{"circle", func() error { return client.SetCircle(5, 5, 2) }, []byte{0x7C, 0x03, 5, 123, 2, 1}},
		{"clear circle", func() error { return client.ClearCircle(5, 5, 2) }, []byte{0x7C, 0x03, 5, 123, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.run())
			assert.Equal(t, tt.want, port.take())
		})
	}
}

func TestClientRenderImage(t *testing.T) {
	client, port := newProxy(t)

	m := bitmap.NewMono(2, 1)
	m.Set(0, 0, true)

	require.NoError(t, client.RenderImage(m, image.Rect(4, 4, 6, 5), false))
	assert.Equal(t, []byte{
		0x7C, 0x05, 4, 124, 6, 123,
		0x7C, 0x10, 4, 124, 1,
	}, port.take())
}

func TestClientErrors(t *testing.T) {
	client, port := newProxy(t)

	assert.Error(t, client.SetBaudRate(12345))
	assert.Error(t, client.SetX(256))
	assert.Empty(t, port.take())
}

func TestServiceUnknown(t *testing.T) {
	svc := &Service{}
	assert.Error(t, svc.Command("reboot", nil))
	assert.Error(t, svc.Shape(ShapeRequest{Shape: "triangle"}, nil))
}

func TestProxyLifecycle(t *testing.T) {
	port := &memPort{}
	dev, err := glcd.New(port, zaptest.NewLogger(t))
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	srv := &http.Server{Addr: "127.0.0.1:0"}
	require.NoError(t, Proxy(dev, srv, zaptest.NewLogger(t), lc))
	assert.NotNil(t, srv.Handler)

	lc.RequireStart()
	lc.RequireStop()
}

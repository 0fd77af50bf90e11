package remote

import (
	"bytes"
	"image"
	"image/png"
	"net/rpc"

	"seriallcd/pkg/proto"
)

// New dials a proxy. Errors coming back from the device lose their type
// and arrive as rpc.ServerError.
func New(addr string) (proto.Control, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Clear() error {
	return c.rpc.Call("Service.Command", "clear", nil)
}

func (c *Client) ReverseVideo() error {
	return c.rpc.Call("Service.Command", "reverse", nil)
}

func (c *Client) Splash() error {
	return c.rpc.Call("Service.Command", "splash", nil)
}

func (c *Client) Demo() error {
	return c.rpc.Call("Service.Command", "demo", nil)
}

func (c *Client) Home() error {
	return c.rpc.Call("Service.Command", "home", nil)
}

func (c *Client) RestoreBaudRate() error {
	return c.rpc.Call("Service.Command", "restore-baud", nil)
}

func (c *Client) SetBacklight(duty int) error {
	return c.rpc.Call("Service.SetBacklight", duty, nil)
}

func (c *Client) SetBaudRate(rate int) error {
	return c.rpc.Call("Service.SetBaudRate", rate, nil)
}

func (c *Client) SetX(x int) error {
	return c.rpc.Call("Service.SetX", x, nil)
}

func (c *Client) SetY(y int) error {
	return c.rpc.Call("Service.SetY", y, nil)
}

func (c *Client) SetPosition(x, y int) error {
	return c.rpc.Call("Service.SetPosition", PointRequest{X: x, Y: y}, nil)
}

func (c *Client) SetRow(row int) error {
	return c.rpc.Call("Service.SetRow", row, nil)
}

func (c *Client) SetCol(col int) error {
	return c.rpc.Call("Service.SetCol", col, nil)
}

func (c *Client) SetRowCol(row, col int) error {
	return c.rpc.Call("Service.SetRowCol", PointRequest{X: col, Y: row}, nil)
}

func (c *Client) WriteText(s string, align proto.Align, width int) error {
	return c.rpc.Call("Service.WriteText", TextRequest{Text: s, Align: align, Width: width}, nil)
}

func (c *Client) WriteLine(s string) error {
	return c.rpc.Call("Service.WriteText", TextRequest{Text: s, Line: true}, nil)
}

func (c *Client) SetPixel(x, y int, on bool) error {
	return c.rpc.Call("Service.SetPixel", PixelRequest{X: x, Y: y, On: on}, nil)
}

func (c *Client) shape(shape string, x1, y1, x2, y2 int, on bool) error {
	return c.rpc.Call("Service.Shape", ShapeRequest{
		Shape: shape,
		X1:    x1,
		Y1:    y1,
		X2:    x2,
		Y2:    y2,
		On:    on,
	}, nil)
}

func (c *Client) SetLine(x1, y1, x2, y2 int) error {
	return c.shape(ShapeLine, x1, y1, x2, y2, true)
}

func (c *Client) ClearLine(x1, y1, x2, y2 int) error {
	return c.shape(ShapeLine, x1, y1, x2, y2, false)
}

func (c *Client) SetBox(x1, y1, x2, y2 int) error {
	return c.shape(ShapeBox, x1, y1, x2, y2, true)
}

func (c *Client) ClearBox(x1, y1, x2, y2 int) error {
	return c.shape(ShapeBox, x1, y1, x2, y2, false)
}

func (c *Client) ClearBlock(x1, y1, x2, y2 int) error {
	return c.shape(ShapeBlock, x1, y1, x2, y2, false)
}

func (c *Client) SetCircle(x, y, rad int) error {
	return c.rpc.Call("Service.Circle", CircleRequest{X: x, Y: y, Rad: rad, On: true}, nil)
}

func (c *Client) ClearCircle(x, y, rad int) error {
	return c.rpc.Call("Service.Circle", CircleRequest{X: x, Y: y, Rad: rad}, nil)
}

func (c *Client) RenderImage(img image.Image, rect image.Rectangle, invert bool) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	return c.rpc.Call("Service.RenderImage", &RenderImageRequest{
		Rect:   rect,
		Invert: invert,
		Image:  buf.Bytes(),
	}, nil)
}

// Close drops the connection; the proxy keeps the device open.
func (c *Client) Close() error {
	return c.rpc.Close()
}

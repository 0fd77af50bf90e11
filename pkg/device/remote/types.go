package remote

import (
	"image"

	"seriallcd/pkg/proto"
)

type EmptyResponse struct {
}

type PointRequest struct {
	X int
	Y int
}

type PixelRequest struct {
	X  int
	Y  int
	On bool
}

// ShapeRequest carries line, box and block commands.
type ShapeRequest struct {
	Shape string
	X1    int
	Y1    int
	X2    int
	Y2    int
	On    bool
}

type CircleRequest struct {
	X   int
	Y   int
	Rad int
	On  bool
}

type TextRequest struct {
	Text  string
	Align proto.Align
	Width int
	Line  bool
}

type RenderImageRequest struct {
	Rect   image.Rectangle
	Invert bool
	Image  []byte
}

const (
	ShapeLine  = "line"
	ShapeBox   = "box"
	ShapeBlock = "block"
)

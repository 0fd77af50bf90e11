package remote

import (
	"bytes"
	"context"
	"image/png"
	"net"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"seriallcd/pkg/proto"
)

// Handler serves dev over net/rpc at rpc.DefaultRPCPath.
func Handler(dev proto.Control) (http.Handler, error) {
	server := rpc.NewServer()
	if err := server.Register(&Service{dev: dev}); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, server)
	return mux, nil
}

func Proxy(dev proto.Control, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	handler, err := Handler(dev)
	if err != nil {
		return err
	}
	srv.Handler = handler

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.With(zap.String("addr", ln.Addr().String())).Info("proxy listening")

			go func() {
				if err := srv.Serve(ln); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Error("proxy stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

type Service struct {
	dev proto.Control
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "clear":
		return s.dev.Clear()
	case "reverse":
		return s.dev.ReverseVideo()
	case "splash":
		return s.dev.Splash()
	case "demo":
		return s.dev.Demo()
	case "home":
		return s.dev.Home()
	case "restore-baud":
		return s.dev.RestoreBaudRate()
	}

	return errors.Errorf("unknown command %q", name)
}

func (s *Service) SetBacklight(duty int, _ *EmptyResponse) error {
	return s.dev.SetBacklight(duty)
}

func (s *Service) SetBaudRate(rate int, _ *EmptyResponse) error {
	return s.dev.SetBaudRate(rate)
}

func (s *Service) SetX(x int, _ *EmptyResponse) error {
	return s.dev.SetX(x)
}

func (s *Service) SetY(y int, _ *EmptyResponse) error {
	return s.dev.SetY(y)
}

func (s *Service) SetPosition(req PointRequest, _ *EmptyResponse) error {
	return s.dev.SetPosition(req.X, req.Y)
}

func (s *Service) SetRow(row int, _ *EmptyResponse) error {
	return s.dev.SetRow(row)
}

func (s *Service) SetCol(col int, _ *EmptyResponse) error {
	return s.dev.SetCol(col)
}

// SetRowCol takes the row in Y and the column in X.
func (s *Service) SetRowCol(req PointRequest, _ *EmptyResponse) error {
	return s.dev.SetRowCol(req.Y, req.X)
}

func (s *Service) WriteText(req TextRequest, _ *EmptyResponse) error {
	if req.Line {
		return s.dev.WriteLine(req.Text)
	}
	return s.dev.WriteText(req.Text, req.Align, req.Width)
}

func (s *Service) SetPixel(req PixelRequest, _ *EmptyResponse) error {
	return s.dev.SetPixel(req.X, req.Y, req.On)
}

func (s *Service) Shape(req ShapeRequest, _ *EmptyResponse) error {
	switch req.Shape {
	case ShapeLine:
		if req.On {
			return s.dev.SetLine(req.X1, req.Y1, req.X2, req.Y2)
		}
		return s.dev.ClearLine(req.X1, req.Y1, req.X2, req.Y2)
	case ShapeBox:
		if req.On {
			return s.dev.SetBox(req.X1, req.Y1, req.X2, req.Y2)
		}
		return s.dev.ClearBox(req.X1, req.Y1, req.X2, req.Y2)
	case ShapeBlock:
		return s.dev.ClearBlock(req.X1, req.Y1, req.X2, req.Y2)
	}

	return errors.Errorf("unknown shape %q", req.Shape)
}

func (s *Service) Circle(req CircleRequest, _ *EmptyResponse) error {
	if req.On {
		return s.dev.SetCircle(req.X, req.Y, req.Rad)
	}
	return s.dev.ClearCircle(req.X, req.Y, req.Rad)
}

func (s *Service) RenderImage(req *RenderImageRequest, _ *EmptyResponse) error {
	img, err := png.Decode(bytes.NewBuffer(req.Image))
	if err != nil {
		return err
	}

	return s.dev.RenderImage(img, req.Rect, req.Invert)
}

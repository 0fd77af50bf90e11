package main

import (
	"context"
	"net/http"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"seriallcd/internal/flags"
	"seriallcd/pkg/device/glcd"
	"seriallcd/pkg/device/remote"
	"seriallcd/pkg/proto"
)

var display = flags.Register(flag.CommandLine)
var listen = flag.String("listen", ":9123", "listen addr")

// openDisplay holds the serial port for the lifetime of the app.
func openDisplay(logger *zap.Logger, lifecycle fx.Lifecycle) (proto.Control, error) {
	dev, err := glcd.Open(proto.NewSerial(display.Serial), logger, display.Options()...)
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return dev.Close()
		},
	})

	return dev, nil
}

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			display.Logger,
			func() *http.Server {
				return &http.Server{Addr: *listen}
			},
			openDisplay,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}

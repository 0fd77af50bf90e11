package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"seriallcd/internal/flags"
	"seriallcd/pkg/bitmap"
	"seriallcd/pkg/device/glcd"
	"seriallcd/pkg/device/remote"
	"seriallcd/pkg/device/virtual"
	"seriallcd/pkg/proto"
)

var display = flags.Register(flag.CommandLine)
var dryRun = flag.Bool("dry-run", false, "log commands instead of sending them")
var cacheDir = flag.String("cache", "", "directory keeping downloaded images")
var progress = flag.Bool("progress", false, "show download progress")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] COMMAND [ARGS]\n\ncommands:\n%s\nflags:\n", os.Args[0], usage())
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := display.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	var dev proto.Control
	var devErr error

	switch {
	case *dryRun:
		dev = virtual.Mock(logger)
	case strings.Contains(display.Serial, ":"):
		dev, devErr = remote.New(display.Serial)
	default:
		dev, devErr = glcd.Open(proto.NewSerial(display.Serial), logger, display.Options()...)
	}

	if devErr != nil {
		logger.With(zap.Error(devErr)).Fatal("open display failed")
	}

	fetcher := bitmap.NewFetcher(logger).WithProgress(*progress)
	if *cacheDir != "" {
		fs := afero.NewOsFs()
		if err := fs.MkdirAll(*cacheDir, 0755); err != nil {
			logger.With(zap.Error(err)).Fatal("create cache failed")
		}
		fetcher.WithCache(afero.NewBasePathFs(fs, *cacheDir))
	}

	load := func(src string) (image.Image, error) {
		if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			return fetcher.Image(src)
		}
		return bitmap.Load(src)
	}

	runErr := run(dev, load, flag.Args())

	if err := dev.Close(); err != nil {
		logger.With(zap.Error(err)).Info("close failed")
	}

	if runErr != nil {
		logger.With(zap.Error(runErr)).Error("command failed")
		os.Exit(1)
	}
}

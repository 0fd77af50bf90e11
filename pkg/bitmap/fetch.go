package bitmap

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/url"
	"path"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewFetcher(logger *zap.Logger) *Fetcher {
	return &Fetcher{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

// Fetcher downloads images over http(s), optionally keeping a copy in a cache fs.
type Fetcher struct {
	cli      *resty.Client
	log      *zap.Logger
	cache    afero.Fs
	progress bool
}

func (f *Fetcher) WithCache(fs afero.Fs) *Fetcher {
	f.cache = fs
	return f
}

// WithProgress renders a progress bar on stderr while downloading.
func (f *Fetcher) WithProgress(on bool) *Fetcher {
	f.progress = on
	return f
}

func (f *Fetcher) filename(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" || u.Path == "/" {
		return ""
	}
	return fmt.Sprintf("%s/%s", u.Host, path.Base(u.Path))
}

func (f *Fetcher) Get(raw string) ([]byte, error) {
	file := f.filename(raw)
	if f.cache != nil && file != "" {
		if exists, err := afero.Exists(f.cache, file); err != nil {
			return nil, err
		} else if exists {
			f.log.With(zap.String("file", file)).Debug("cache hit")
			return afero.ReadFile(f.cache, file)
		}
	}

	resp, err := f.cli.R().Get(raw)
	if err != nil {
		return nil, errors.Wrap(err, "download failed")
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 300 {
		return nil, errors.Errorf("download failed: %s", resp.Status())
	}

	var buf bytes.Buffer
	var w io.Writer = &buf
	if f.progress {
		bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", raw))
		w = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(w, resp.RawBody()); err != nil {
		return nil, err
	}

	f.log.With(
		zap.String("url", raw),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Debug("downloaded")

	if f.cache != nil && file != "" {
		if err := f.save(file, buf.Bytes()); err != nil {
			f.log.With(zap.Error(err)).Info("cache save failed")
		}
	}

	return buf.Bytes(), nil
}

func (f *Fetcher) save(file string, bs []byte) error {
	dir := path.Dir(file)
	if exists, err := afero.DirExists(f.cache, dir); err != nil {
		return err
	} else if !exists {
		if err2 := f.cache.MkdirAll(dir, 0755); err2 != nil {
			return err2
		}
	}
	return afero.WriteFile(f.cache, file, bs, 0644)
}

func (f *Fetcher) Image(raw string) (image.Image, error) {
	bs, err := f.Get(raw)
	if err != nil {
		return nil, err
	}
	return Decode(bs)
}

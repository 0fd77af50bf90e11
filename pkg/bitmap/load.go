package bitmap

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "load image %s", path)
	}
	return img, nil
}

func LoadFs(fs afero.Fs, path string) (image.Image, error) {
	bs, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read image %s", path)
	}
	return Decode(bs)
}

func Decode(bs []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(bs), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "image decode failed")
	}
	return img, nil
}

// Package processor normalises uploaded images before they are mirrored to
// the blob store. Resizing is cover-fit: the image fills the target box and
// overflow is cropped toward the gravity anchor.
package processor

import (
	"fmt"

	"storefront/internal/model"

	"github.com/h2non/bimg"
)

type Options struct {
	Width   int
	Height  int
	Gravity bimg.Gravity
}

// Anchors used by the service presets.
const (
	AnchorCenter = bimg.GravityCentre
	AnchorTop    = bimg.GravityNorth
)

func Resize(data []byte, opts Options) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("resize: empty input: %w", model.ErrDecode)
	}
	out, err := bimg.NewImage(data).Process(bimg.Options{
		Width:   opts.Width,
		Height:  opts.Height,
		Crop:    true,
		Gravity: opts.Gravity,
		Quality: 85,
	})
	if err != nil {
		return nil, fmt.Errorf("resize: %w (%v)", model.ErrDecode, err)
	}
	return out, nil
}

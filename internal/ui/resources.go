package ui

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Logo is the shared logo resource. It is loaded once and only read
// afterwards; every screen gets its own canvas.Image backed by it.
type Logo struct {
	Resource fyne.Resource
	Size     fyne.Size
}

// LoadLogo loads the logo from file path and computes its display size as
// the natural pixel size multiplied by scale.
func LoadLogo(path string, scale float64) (*Logo, error) {
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load logo: %w", err)
	}
	return NewLogo(res, scale)
}

// NewLogo wraps an already loaded resource
func NewLogo(res fyne.Resource, scale float64) (*Logo, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(res.Content()))
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", res.Name(), err)
	}
	return &Logo{Resource: res, Size: ScaledSize(cfg.Width, cfg.Height, scale)}, nil
}

// ScaledSize multiplies a pixel size by scale. Non-positive scales keep the
// natural size.
func ScaledSize(width, height int, scale float64) fyne.Size {
	if scale <= 0 {
		scale = 1
	}
	return fyne.NewSize(float32(float64(width)*scale), float32(float64(height)*scale))
}

// Image returns a new image object showing the logo at its display size
func (l *Logo) Image() *canvas.Image {
	img := canvas.NewImageFromResource(l.Resource)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(l.Size)
	return img
}

package procwalls

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PlaceholderConfig collects the styling knobs of the placeholder mode.
// It is passed in explicitly so callers can carry their own settings
// instead of sharing process-wide defaults.
type PlaceholderConfig struct {
	Background  color.NRGBA
	Border      color.NRGBA
	Text        color.NRGBA
	BorderWidth int
	Label       string
}

func DefaultPlaceholderConfig() PlaceholderConfig {
	return PlaceholderConfig{
		Background:  color.NRGBA{204, 204, 204, 255},
		Border:      color.NRGBA{153, 153, 153, 255},
		Text:        color.NRGBA{51, 51, 51, 255},
		BorderWidth: 2,
	}
}

// Placeholder renders a flat box with a border and a centered label
// showing the dimensions. It shares nothing with the field-based path.
func Placeholder(width, height int, cfg PlaceholderConfig) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	bw := cfg.BorderWidth
	if bw > 0 {
		border := image.NewUniform(cfg.Border)
		draw.Draw(img, image.Rect(0, 0, width, bw), border, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, height-bw, width, height), border, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(0, 0, bw, height), border, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(width-bw, 0, width, height), border, image.Point{}, draw.Src)
	}

	label := cfg.Label
	if label == "" {
		label = fmt.Sprintf("%d x %d", width, height)
	}

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.Text),
		Face: face,
	}
	labelWidth := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.I(width)/2 - labelWidth/2,
		Y: fixed.I(height)/2 + fixed.I(face.Ascent-face.Descent)/2,
	}
	d.DrawString(label)

	return img, nil
}

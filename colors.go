package procwalls

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Palette is an ordered sequence of colors. Interpolation maps a scalar
// in [0,1] across the sequence; a single-color palette is a constant.
type Palette []color.NRGBA

func clamp01(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}

func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp(c1.R, c2.R, t),
		G: lerp(c1.G, c2.G, t),
		B: lerp(c1.B, c2.B, t),
		A: 255,
	}
}

// Interpolate returns the palette color at position t. t is clamped to
// [0,1] (NaN counts as 0). Channel blending truncates toward zero when
// converting back to bytes.
func (p Palette) Interpolate(t float64) color.NRGBA {
	if len(p) == 0 {
		return color.NRGBA{0, 0, 0, 255}
	}
	if len(p) == 1 {
		c := p[0]
		c.A = 255
		return c
	}

	t = clamp01(t)
	n := len(p) - 1
	idx := t * float64(n)
	i := int(idx)
	if i > n-1 {
		i = n - 1
	}
	return lerpColor(p[i], p[i+1], idx-float64(i))
}

// ParseHexColor reads a #RGB or #RRGGBB color string.
func ParseHexColor(s string) (color.NRGBA, error) {
	var c color.NRGBA
	c.A = 255

	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil || n < 3 {
			return color.NRGBA{}, fmt.Errorf("could not read color %q", s)
		}
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil || n < 3 {
			return color.NRGBA{}, fmt.Errorf("could not read color %q", s)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	return c, nil
}

// ParsePalette reads a comma-separated list of hex colors. A leading #
// on each entry is optional.
func ParsePalette(s string) (Palette, error) {
	parts := strings.Split(s, ",")
	pal := make(Palette, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, "#") {
			part = "#" + part
		}
		c, err := ParseHexColor(part)
		if err != nil {
			return nil, err
		}
		pal = append(pal, c)
	}
	if len(pal) == 0 {
		return nil, fmt.Errorf("empty palette spec %q", s)
	}
	return pal, nil
}

type PaletteDef struct {
	Name   string  `json:"name"`
	Colors Palette `json:"colors"`
}

var DefaultPalettes = []PaletteDef{
	{
		Name: "Deep Ocean",
		Colors: Palette{
			{0, 7, 100, 255},
			{32, 107, 203, 255},
			{237, 255, 255, 255},
			{255, 170, 0, 255},
			{0, 2, 0, 255},
		},
	},
	{
		Name: "Inferno Ember",
		Colors: Palette{
			{5, 0, 10, 255},
			{120, 12, 40, 255},
			{240, 60, 10, 255},
			{255, 200, 50, 255},
			{20, 2, 0, 255},
		},
	},
	{
		Name: "Magenta Storm",
		Colors: Palette{
			{15, 0, 40, 255},
			{130, 0, 155, 255},
			{255, 100, 180, 255},
			{255, 230, 150, 255},
		},
	},
	{
		Name: "Frostfire",
		Colors: Palette{
			{0, 30, 50, 255},
			{60, 190, 210, 255},
			{255, 255, 255, 255},
			{255, 140, 40, 255},
			{20, 5, 0, 255},
		},
	},
	{
		Name: "Verdant",
		Colors: Palette{
			{0, 0, 0, 255},
			{0, 90, 40, 255},
			{160, 220, 40, 255},
			{250, 255, 220, 255},
		},
	},
}

func PaletteByIndex(i int) Palette {
	if i < 0 || i >= len(DefaultPalettes) {
		return nil
	}
	return DefaultPalettes[i].Colors
}

func PaletteByName(name string) (Palette, bool) {
	for _, def := range DefaultPalettes {
		if strings.EqualFold(def.Name, name) {
			return def.Colors, true
		}
	}
	return nil, false
}

// Package palgen builds random color palettes and ranks them, so the
// callers can hand out the best-looking candidates instead of raw noise.
package palgen

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"procwalls"
)

type Candidate struct {
	Def   procwalls.PaletteDef
	Score float64
}

// Generate samples a batch of random palettes and returns the n best by
// score, highest first.
func Generate(n int) []Candidate {
	var best []Candidate

	for iter := 0; iter < 200; iter++ {
		def := randomPalette()
		s := scorePalette(def.Colors)
		best = insertBest(best, Candidate{Def: def, Score: s}, n)
	}

	return best
}

func insertBest(list []Candidate, c Candidate, max int) []Candidate {
	list = append(list, c)
	for i := len(list) - 1; i > 0; i-- {
		if list[i].Score > list[i-1].Score {
			list[i], list[i-1] = list[i-1], list[i]
		} else {
			break
		}
	}
	if len(list) > max {
		return list[:max]
	}
	return list
}

// randomPalette picks five hues spread around a random base: three
// related, one complementary, one offset from the complement. Saturation
// and lightness stay in a band that avoids grey or muddy output.
func randomPalette() procwalls.PaletteDef {
	const n = 5

	baseHue := rand.Float64() * 360.0
	spread := 45.0 + rand.Float64()*40.0

	hues := []float64{
		baseHue,
		baseHue + spread,
		baseHue + 2*spread,
		baseHue + 180,
		baseHue + 180 + spread/2,
	}
	for i := range hues {
		hues[i] = wrapHue(hues[i])
	}

	s := 0.55 + rand.Float64()*0.35
	l := 0.40 + rand.Float64()*0.20

	colors := make(procwalls.Palette, n)
	for i := 0; i < n; i++ {
		colors[i] = hslToNRGBA(hues[i], s, l)
	}

	return procwalls.PaletteDef{
		Name:   fmt.Sprintf("Random %04d", rand.Intn(10000)),
		Colors: colors,
	}
}

// scorePalette rewards palettes whose colors are spread apart and that
// span a wide luminance range.
func scorePalette(p procwalls.Palette) float64 {
	if len(p) < 2 {
		return 0
	}

	minL, maxL := 1.0, 0.0
	for _, c := range p {
		l := luminance(c)
		minL = math.Min(minL, l)
		maxL = math.Max(maxL, l)
	}
	contrast := maxL - minL

	var dist float64
	pairs := 0
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			dist += colorDist(p[i], p[j])
			pairs++
		}
	}
	// normalize by the RGB cube diagonal
	spread := dist / float64(pairs) / (math.Sqrt(3) * 255)

	return 0.6*spread + 0.4*contrast
}

func luminance(c color.NRGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

func colorDist(c1, c2 color.NRGBA) float64 {
	dr := float64(c1.R) - float64(c2.R)
	dg := float64(c1.G) - float64(c2.G)
	db := float64(c1.B) - float64(c2.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func hslToNRGBA(h, s, l float64) color.NRGBA {
	// h: 0..360, s,l: 0..1
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60.0
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case 0 <= hp && hp < 1:
		r, g, b = c, x, 0
	case 1 <= hp && hp < 2:
		r, g, b = x, c, 0
	case 2 <= hp && hp < 3:
		r, g, b = 0, c, x
	case 3 <= hp && hp < 4:
		r, g, b = 0, x, c
	case 4 <= hp && hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return color.NRGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

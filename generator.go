package procwalls

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"runtime"
	"sync"
)

// RandomPhase draws a phase offset uniformly from [0, 2π). One phase is
// drawn per render and shared across every pixel; drawing per pixel
// would destroy spatial coherence.
func RandomPhase() float64 {
	return rand.Float64() * 2 * math.Pi
}

// Render evaluates field at every pixel of a width×height canvas and
// maps the result through pal, producing a fully opaque NRGBA image.
// The pixel loop is pure per pixel, so rows are spread across
// GOMAXPROCS workers with no synchronization beyond the final join.
func Render(width, height int, field FieldFunc, pal Palette, phase, intensity float64) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if len(pal) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if field == nil {
		field = ResolveField(DefaultField)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	stride := img.Stride
	pix := img.Pix

	nw := runtime.GOMAXPROCS(0)

	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		go func(worker int) {
			defer wg.Done()
			for py := worker; py < height; py += nw {
				rowOff := py * stride
				for px := 0; px < width; px++ {
					v := field(px, py, phase, intensity, width, height)
					c := pal.Interpolate(v)

					off := rowOff + px*4
					pix[off+0] = c.R
					pix[off+1] = c.G
					pix[off+2] = c.B
					pix[off+3] = 255
				}
			}
		}(w)
	}
	wg.Wait()

	return img, nil
}

package procwalls

import (
	"math"
	"sort"
)

// FieldFunc evaluates a procedural pattern at one pixel, yielding a
// scalar in [0,1]. phase shifts the whole pattern, intensity scales its
// spatial frequency. width and height are only consumed by
// center-relative fields.
type FieldFunc func(x, y int, phase, intensity float64, width, height int) float64

const DefaultField = "plasma"

var fields = map[string]FieldFunc{
	"plasma":  plasma,
	"marble":  marble,
	"fractal": fractal,
	"ripples": ripples,
	"vortex":  vortex,
}

// ResolveField returns the field registered under name. Unknown names
// fall back to the plasma field rather than failing; the caller has no
// validation layer upstream of this.
func ResolveField(name string) FieldFunc {
	if f, ok := fields[name]; ok {
		return f
	}
	return fields[DefaultField]
}

func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func plasma(x, y int, t, i float64, _, _ int) float64 {
	s := 0.01 * i
	fx, fy := float64(x), float64(y)
	v := math.Sin(fx*s+t) +
		math.Sin(fy*s+t) +
		math.Sin((fx+fy)*s+t) +
		math.Sin(math.Sqrt(fx*fx+fy*fy)*s+t)
	return (v + 4) / 8
}

func marble(x, y int, t, i float64, _, _ int) float64 {
	s := 0.005 * i
	fx, fy := float64(x), float64(y)
	v := math.Sin(fx*s+math.Sin(fy*s*0.6)*3+t) +
		math.Cos(fy*s+math.Cos(fx*s*0.6)*3+t)
	return (v + 2) / 4
}

func fractal(x, y int, t, i float64, _, _ int) float64 {
	fx, fy := float64(x), float64(y)
	v := 0.0
	amp := 1.0
	freq := 0.005 * i
	for k := 0; k < 5; k++ {
		v += math.Sin(fx*freq+t) * math.Cos(fy*freq+t) * amp
		amp *= 0.5
		freq *= 2
	}
	return (v + 2) / 4
}

func ripples(x, y int, t, i float64, w, h int) float64 {
	s := 0.05 * i
	fx, fy := float64(x), float64(y)
	cx, cy := float64(w)/2, float64(h)/2
	d1 := math.Hypot(fx-cx, fy-cy)
	d2 := math.Hypot(fx-cx*0.5, fy-cy*1.5)
	d3 := math.Hypot(fx-cx*1.5, fy-cy*0.5)
	v := math.Sin(d1*s+t) +
		math.Sin(d2*s*1.4-t) +
		math.Sin(d3*s*1.2+t*0.5)
	return (v + 3) / 6
}

func vortex(x, y int, t, i float64, w, h int) float64 {
	s := 0.03 * i
	cx, cy := float64(w)/2, float64(h)/2
	dx, dy := float64(x)-cx, float64(y)-cy
	d := math.Hypot(dx, dy)
	a := math.Atan2(dy, dx)
	v := math.Sin(d*s+3*a+t) +
		math.Cos(d*s*0.66-2*a+0.5*t)
	return (v + 2) / 4
}

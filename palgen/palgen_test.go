package palgen

import (
	"image/color"
	"testing"

	"procwalls"
)

func TestGenerate(t *testing.T) {
	best := Generate(3)
	if len(best) != 3 {
		t.Fatalf("Generate(3) returned %d candidates", len(best))
	}

	for i, c := range best {
		if i > 0 && c.Score > best[i-1].Score {
			t.Errorf("candidates not sorted by score: %v after %v", c.Score, best[i-1].Score)
		}
		if len(c.Def.Colors) < 2 {
			t.Errorf("candidate %d has %d colors", i, len(c.Def.Colors))
		}
		if c.Def.Name == "" {
			t.Errorf("candidate %d has no name", i)
		}
		for _, col := range c.Def.Colors {
			if col.A != 255 {
				t.Errorf("candidate %d has translucent color %v", i, col)
			}
		}
	}
}

func TestInsertBest(t *testing.T) {
	var list []Candidate
	for _, s := range []float64{0.2, 0.9, 0.5, 0.7} {
		list = insertBest(list, Candidate{Score: s}, 2)
	}
	if len(list) != 2 {
		t.Fatalf("insertBest kept %d entries, want 2", len(list))
	}
	if list[0].Score != 0.9 || list[1].Score != 0.7 {
		t.Errorf("insertBest kept %v and %v, want 0.9 and 0.7", list[0].Score, list[1].Score)
	}
}

func TestScorePalette(t *testing.T) {
	contrasty := procwalls.Palette{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	}
	flat := procwalls.Palette{
		{128, 128, 128, 255},
		{128, 128, 128, 255},
	}

	if scorePalette(contrasty) <= scorePalette(flat) {
		t.Error("black/white palette should outscore a flat grey one")
	}
	if scorePalette(procwalls.Palette{{1, 2, 3, 255}}) != 0 {
		t.Error("single-color palette scores zero")
	}
}

func TestHSLToNRGBA(t *testing.T) {
	testCases := []struct {
		name     string
		h, s, l  float64
		expected color.NRGBA
	}{
		{"Black", 0, 0, 0, color.NRGBA{0, 0, 0, 255}},
		{"White", 0, 0, 1, color.NRGBA{255, 255, 255, 255}},
		{"Red", 0, 1, 0.5, color.NRGBA{255, 0, 0, 255}},
		{"Green", 120, 1, 0.5, color.NRGBA{0, 255, 0, 255}},
		{"Blue", 240, 1, 0.5, color.NRGBA{0, 0, 255, 255}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hslToNRGBA(tc.h, tc.s, tc.l); got != tc.expected {
				t.Errorf("hslToNRGBA(%v,%v,%v) = %v, want %v", tc.h, tc.s, tc.l, got, tc.expected)
			}
		})
	}
}

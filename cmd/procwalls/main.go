package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"procwalls"
	"procwalls/palgen"

	"github.com/alecthomas/kong"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type outputParams struct {
	Width  int    `help:"Image width in pixels" default:"2880"`
	Height int    `help:"Image height in pixels" default:"1800"`
	Format string `help:"Output image format" enum:"png,jpeg,bmp,tiff" default:"png"`
	Output string `help:"Output file name" short:"o" default:"wall.png"`
}

type renderCmd struct {
	outputParams
	Pattern   string  `help:"Pattern name (plasma, marble, fractal, ripples, vortex); unknown names fall back to plasma" default:"plasma"`
	Intensity float64 `help:"Spatial frequency multiplier" default:"5"`
	Palette   string  `help:"Named palette from the built-in table, or 'random' for a generated one" default:"Deep Ocean"`
	Colors    string  `help:"Comma-separated hex colors, overrides --palette"`
	Seed      *int64  `help:"Seed the random phase for reproducible output"`
}

type placeholderCmd struct {
	outputParams
	Label string `help:"Label text, defaults to the dimensions"`
}

func (c *renderCmd) Validate(kctx *kong.Context) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", c.Width, c.Height)
	}
	if c.Colors == "" && c.Palette != "random" {
		if _, ok := procwalls.PaletteByName(c.Palette); !ok {
			return fmt.Errorf("unknown palette %q", c.Palette)
		}
	}
	return nil
}

func (c *renderCmd) Run() error {
	var pal procwalls.Palette
	switch {
	case c.Colors != "":
		var err error
		if pal, err = procwalls.ParsePalette(c.Colors); err != nil {
			return err
		}
	case c.Palette == "random":
		best := palgen.Generate(1)
		pal = best[0].Def.Colors
		slog.Info("generated palette", "name", best[0].Def.Name, "score", best[0].Score)
	default:
		pal, _ = procwalls.PaletteByName(c.Palette)
	}

	phase := procwalls.RandomPhase()
	if c.Seed != nil {
		phase = rand.New(rand.NewSource(*c.Seed)).Float64() * 2 * math.Pi
	}

	img, err := procwalls.Render(c.Width, c.Height,
		procwalls.ResolveField(c.Pattern), pal, phase, c.Intensity)
	if err != nil {
		return err
	}

	return save(img, c.Format, c.Output)
}

func (c *placeholderCmd) Run() error {
	cfg := procwalls.DefaultPlaceholderConfig()
	cfg.Label = c.Label

	img, err := procwalls.Placeholder(c.Width, c.Height, cfg)
	if err != nil {
		return err
	}

	return save(img, c.Format, c.Output)
}

func save(img image.Image, format, name string) (err error) {
	outFile, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create destination %q: %w", name, err)
	}
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close destination %q: %w", name, defErr)
		}
	}()

	switch format {
	case "png":
		if err = png.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", name, err)
		}
	case "jpeg":
		if err = jpeg.Encode(outFile, img, &jpeg.Options{Quality: 95}); err != nil {
			return fmt.Errorf("could not encode JPEG destination %q: %w", name, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode BMP destination %q: %w", name, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", name, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	slog.Info("wrote image", "file", name, "format", format)
	return err
}

var cli struct {
	Render      renderCmd      `cmd:"" default:"withargs" help:"Render a procedural pattern wallpaper"`
	Placeholder placeholderCmd `cmd:"" help:"Render a flat placeholder box with a dimension label"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("procwalls"),
		kong.Description("Procedural pattern wallpaper generator"))
	kctx.FatalIfErrorf(kctx.Run())
}

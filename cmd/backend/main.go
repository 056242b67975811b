package main

import (
	"encoding/json"
	"image"
	"image/png"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"

	"procwalls"
	"procwalls/palgen"
)

type patternRequest struct {
	Width     int                   `json:"width"`
	Height    int                   `json:"height"`
	Pattern   string                `json:"pattern"`
	Intensity float64               `json:"intensity"`
	Seed      *int64                `json:"seed,omitempty"`
	Palette   *procwalls.PaletteDef `json:"palette,omitempty"`
}

var palettesMu sync.RWMutex

func qf(r *http.Request, key string, def float64) float64 {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func qi(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func qs(r *http.Request, key, def string) string {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	return s
}

func fieldsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(procwalls.FieldNames())
}

func palettesHandler(w http.ResponseWriter, r *http.Request) {
	palettesMu.RLock()
	defer palettesMu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(procwalls.DefaultPalettes)
}

func randomPaletteHandler(w http.ResponseWriter, r *http.Request) {
	best := palgen.Generate(1)
	p := best[0].Def

	palettesMu.Lock()
	procwalls.DefaultPalettes = append(procwalls.DefaultPalettes, p)
	idx := len(procwalls.DefaultPalettes) - 1
	palettesMu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		procwalls.PaletteDef
		Index int `json:"index"`
	}{
		PaletteDef: p,
		Index:      idx,
	})
}

// lookupPalette resolves the palette query params: an explicit colors
// list wins, then a named or indexed entry of the shared table.
func lookupPalette(r *http.Request) procwalls.Palette {
	if spec := r.URL.Query().Get("colors"); spec != "" {
		if pal, err := procwalls.ParsePalette(spec); err == nil {
			return pal
		}
	}

	palettesMu.RLock()
	defer palettesMu.RUnlock()

	if name := r.URL.Query().Get("palette"); name != "" {
		if pal, ok := procwalls.PaletteByName(name); ok {
			return pal
		}
		if idx, err := strconv.Atoi(name); err == nil {
			if pal := procwalls.PaletteByIndex(idx); pal != nil {
				return pal
			}
		}
	}

	return procwalls.DefaultPalettes[0].Colors
}

func phaseFor(seed *int64) float64 {
	if seed != nil {
		return rand.New(rand.NewSource(*seed)).Float64() * 2 * math.Pi
	}
	return procwalls.RandomPhase()
}

func writePNG(w http.ResponseWriter, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if err := pngEncoder.Encode(w, img); err != nil {
		slog.Error("could not encode png", "error", err)
	}
}

func patternGETHandler(w http.ResponseWriter, r *http.Request) {
	width := qi(r, "width", 1080)
	height := qi(r, "height", 660)

	if qs(r, "mode", "") == "placeholder" {
		img, err := procwalls.Placeholder(width, height, procwalls.DefaultPlaceholderConfig())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writePNG(w, img)
		return
	}

	pattern := qs(r, "pattern", procwalls.DefaultField)
	intensity := qf(r, "intensity", 5)

	var seed *int64
	if s := r.URL.Query().Get("seed"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = &v
		}
	}

	pal := lookupPalette(r)
	img, err := procwalls.Render(width, height, procwalls.ResolveField(pattern), pal, phaseFor(seed), intensity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writePNG(w, img)
}

func patternPOSTHandler(w http.ResponseWriter, r *http.Request) {
	req := patternRequest{Width: 1080, Height: 660, Intensity: 5}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	pal := procwalls.DefaultPalettes[0].Colors
	if req.Palette != nil && len(req.Palette.Colors) > 0 {
		pal = req.Palette.Colors
	}

	img, err := procwalls.Render(req.Width, req.Height,
		procwalls.ResolveField(req.Pattern), pal, phaseFor(req.Seed), req.Intensity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writePNG(w, img)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngEncoder = png.Encoder{
	BufferPool: &pngEncoderBufferPool{
		pool: sync.Pool{
			New: func() any {
				return &png.EncoderBuffer{}
			},
		},
	},
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/fields", fieldsHandler)
	mux.HandleFunc("/api/palettes", palettesHandler)
	mux.HandleFunc("/api/palettes/random", randomPaletteHandler)
	mux.HandleFunc("/api/pattern", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			patternPOSTHandler(w, r)
			return
		}
		patternGETHandler(w, r)
	})
	return mux
}

func main() {
	addr := ":8080"
	if v := os.Getenv("PROCWALLS_ADDR"); v != "" {
		addr = v
	}

	slog.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, withCORS(newMux())); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

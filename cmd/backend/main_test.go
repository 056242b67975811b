package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/pattern?width=640&intensity=2.5&pattern=marble&bad=x", nil)

	if got := qi(r, "width", 1080); got != 640 {
		t.Errorf("qi(width) = %d, want 640", got)
	}
	if got := qi(r, "missing", 42); got != 42 {
		t.Errorf("qi(missing) = %d, want default 42", got)
	}
	if got := qi(r, "bad", 42); got != 42 {
		t.Errorf("qi(bad) = %d, want default 42", got)
	}
	if got := qf(r, "intensity", 5); got != 2.5 {
		t.Errorf("qf(intensity) = %v, want 2.5", got)
	}
	if got := qs(r, "pattern", "plasma"); got != "marble" {
		t.Errorf("qs(pattern) = %q, want marble", got)
	}
	if got := qs(r, "missing", "plasma"); got != "plasma" {
		t.Errorf("qs(missing) = %q, want default plasma", got)
	}
}

func doGET(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	newMux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPatternHandler(t *testing.T) {
	w := doGET(t, "/api/pattern?width=40&height=30&pattern=ripples&intensity=3")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q, want image/png", ct)
	}

	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("bounds = %v, want 40x30", b)
	}
}

func TestPatternHandlerBadDimensions(t *testing.T) {
	for _, target := range []string{
		"/api/pattern?width=0&height=30",
		"/api/pattern?width=40&height=-5",
	} {
		if w := doGET(t, target); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s: status = %d, want 400", target, w.Code)
		}
	}
}

func TestPatternHandlerSeedDeterminism(t *testing.T) {
	const target = "/api/pattern?width=24&height=24&pattern=vortex&seed=7&colors=000000,FFFFFF"
	a := doGET(t, target)
	b := doGET(t, target)
	if a.Code != http.StatusOK || b.Code != http.StatusOK {
		t.Fatalf("status = %d/%d, want 200", a.Code, b.Code)
	}
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Error("same seed must produce identical images")
	}
}

func TestPlaceholderMode(t *testing.T) {
	w := doGET(t, "/api/pattern?width=80&height=60&mode=placeholder")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("bounds = %v, want 80x60", b)
	}
}

func TestFieldsHandler(t *testing.T) {
	w := doGET(t, "/api/fields")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var names []string
	if err := json.NewDecoder(w.Body).Decode(&names); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, n := range names {
		if n == "plasma" {
			found = true
		}
	}
	if !found {
		t.Errorf("fields list %v missing plasma", names)
	}
}

func TestPatternPOSTHandler(t *testing.T) {
	body, _ := json.Marshal(patternRequest{
		Width: 32, Height: 16, Pattern: "fractal", Intensity: 4,
	})
	w := httptest.NewRecorder()
	newMux().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/pattern", bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 32x16", b)
	}
}

func TestPatternPOSTHandlerBadJSON(t *testing.T) {
	w := httptest.NewRecorder()
	newMux().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/pattern", io.NopCloser(bytes.NewReader([]byte("{not json")))))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRandomPaletteHandler(t *testing.T) {
	w := doGET(t, "/api/palettes/random")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Name   string          `json:"name"`
		Index  int             `json:"index"`
		Colors json.RawMessage `json:"colors"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name == "" || resp.Index < 0 {
		t.Errorf("unexpected palette payload: %+v", resp)
	}
}

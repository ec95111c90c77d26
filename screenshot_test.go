package jelly

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"after-drag", "after-drag"},
		{"after resize", "after_resize"},
		{"../etc/passwd", ".._etc_passwd"},
		{"v1.2", "v1.2"},
		{"jelly✓", "jelly_"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueues(t *testing.T) {
	g, _ := newTestGame(t, RunConfig{})
	g.Screenshot("one")
	g.Screenshot("two")
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[1] != "two" {
		t.Errorf("queue = %v", g.screenshotQueue)
	}
	if g.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", g.ScreenshotDir)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent orange
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}
	img := unpremultiply(pixels, 3, 1)

	if got := img.NRGBAAt(0, 0); got.R != 255 || got.G != 127 || got.B != 0 || got.A != 128 {
		t.Errorf("pixel 0 = %+v", got)
	}
	if got := img.NRGBAAt(1, 0); got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Errorf("pixel 1 = %+v", got)
	}
	if got := img.NRGBAAt(2, 0); got.A != 0 {
		t.Errorf("pixel 2 = %+v", got)
	}
}

func TestWritePNG(t *testing.T) {
	img := unpremultiply([]byte{255, 0, 0, 255, 0, 255, 0, 255}, 2, 1)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("bounds = %v", b)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	img := unpremultiply(make([]byte, 4), 1, 1)
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}

package jelly

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot asks for the next rendered frame to be saved as a PNG in
// ScreenshotDir. The file name carries a timestamp, the simulation tick and
// the label.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots writes every pending screenshot from screen. Called last
// in Draw so the captured frame is complete.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[jelly] screenshot: %v\n", err)
		return
	}
	img := capture(screen)
	prefix := fmt.Sprintf("%s_t%06d", time.Now().Format("20060102_150405"), g.sim.Ticks())
	for _, label := range g.screenshotQueue {
		path := filepath.Join(g.ScreenshotDir, prefix+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[jelly] screenshot: %v\n", err)
		}
	}
}

// capture reads screen back as a straight-alpha image.
func capture(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	return unpremultiply(pix, b.Dx(), b.Dy())
}

// unpremultiply converts premultiplied RGBA bytes into an NRGBA image.
func unpremultiply(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pix), len(img.Pix))
	for i := 0; i+3 < n; i += 4 {
		a := pix[i+3]
		for c := range 3 {
			img.Pix[i+c] = unmul(pix[i+c], a)
		}
		img.Pix[i+3] = a
	}
	return img
}

func unmul(v, a byte) byte {
	if a == 0 || a == 255 {
		return v
	}
	return byte(min(int(v)*255/int(a), 255))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing everything
// else with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

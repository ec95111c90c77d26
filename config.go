package jelly

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// PhysicsConfig holds the per-step integration constants.
type PhysicsConfig struct {
	// Decay multiplies velocity every step. Must be in (0, 1).
	Decay float64 `json:"decay"`
	// RestoringPower scales the pull back toward the rest position.
	RestoringPower float64 `json:"restoringPower"`
	// MaxSpeed clamps each velocity component. MaxSpeed^4 is also the squared
	// neighbor separation above which the neighbor pass kicks in.
	MaxSpeed float64 `json:"maxSpeed"`
	// Entropy is the neighbor correction applied per step.
	Entropy float64 `json:"entropy"`
}

// PointerConfig controls pointer influence.
type PointerConfig struct {
	Radius float64 `json:"radius"`
	Force  float64 `json:"force"`
}

// LayoutConfig controls how a scene is laid out for a viewport.
type LayoutConfig struct {
	// BandCount is how many horizontal bands stack to fill the viewport.
	BandCount int `json:"bandCount"`
	// Colors is the palette. Band i uses Colors[i % len(Colors)].
	Colors []Color `json:"colors"`
	// SpacingDivisor sets lattice spacing to viewportWidth / SpacingDivisor.
	SpacingDivisor float64 `json:"spacingDivisor"`
	// OverlapMargin shifts every band left and widens it by this many pixels
	// so jiggling edges stay off screen.
	OverlapMargin float64 `json:"overlapMargin"`
	// BleedHeight is added to every band's height so bands overlap the next.
	BleedHeight float64 `json:"bleedHeight"`
}

// Config is the immutable configuration of a Simulation. Pass it by value.
type Config struct {
	Physics     PhysicsConfig `json:"physics"`
	Pointer     PointerConfig `json:"pointer"`
	Layout      LayoutConfig  `json:"layout"`
	Curve       CurveMode     `json:"curve"`
	StrokeWidth float64       `json:"strokeWidth"`
	// TickRate is the number of ticks per second, used to advance tweens.
	TickRate int `json:"tickRate"`
	// FadeIn is the alpha fade duration in seconds after regeneration.
	// Zero disables the fade.
	FadeIn float64 `json:"fadeIn"`
}

// DefaultPalette is the sea-green palette, back to front.
var DefaultPalette = []Color{
	{R: 0x1a / 255.0, G: 0xbc / 255.0, B: 0x9c / 255.0, A: 1},
	{R: 0x16 / 255.0, G: 0xa0 / 255.0, B: 0x85 / 255.0, A: 1},
	{R: 0x10 / 255.0, G: 0x73 / 255.0, B: 0x60 / 255.0, A: 1},
	{R: 0x0a / 255.0, G: 0x46 / 255.0, B: 0x3b / 255.0, A: 1},
	{R: 0x07 / 255.0, G: 0x30 / 255.0, B: 0x28 / 255.0, A: 1},
}

// DefaultConfig returns the tuned constants of the jelly bands.
func DefaultConfig() Config {
	return Config{
		Physics: PhysicsConfig{
			Decay:          0.97,
			RestoringPower: 1.0 / 60,
			MaxSpeed:       11,
			Entropy:        0.15,
		},
		Pointer: PointerConfig{
			Radius: 35,
			Force:  0.125,
		},
		Layout: LayoutConfig{
			BandCount:      5,
			Colors:         append([]Color(nil), DefaultPalette...),
			SpacingDivisor: 15,
			OverlapMargin:  100,
			BleedHeight:    50,
		},
		Curve:       CurveRounded,
		StrokeWidth: 1,
		TickRate:    60,
		FadeIn:      0.35,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	p := c.Physics
	switch {
	case !finite(p.Decay) || p.Decay <= 0 || p.Decay >= 1:
		return invalid("physics.decay %g not in (0, 1)", p.Decay)
	case !finite(p.RestoringPower) || p.RestoringPower < 0:
		return invalid("physics.restoringPower %g must be >= 0", p.RestoringPower)
	case !finite(p.MaxSpeed) || p.MaxSpeed <= 0:
		return invalid("physics.maxSpeed %g must be > 0", p.MaxSpeed)
	case !finite(p.Entropy) || p.Entropy < 0:
		return invalid("physics.entropy %g must be >= 0", p.Entropy)
	case !finite(c.Pointer.Radius) || c.Pointer.Radius < 0:
		return invalid("pointer.radius %g must be >= 0", c.Pointer.Radius)
	case !finite(c.Pointer.Force):
		return invalid("pointer.force %g is not finite", c.Pointer.Force)
	}

	l := c.Layout
	switch {
	case l.BandCount < 1:
		return invalid("layout.bandCount %d must be >= 1", l.BandCount)
	case len(l.Colors) == 0:
		return invalid("layout.colors is empty")
	case !finite(l.SpacingDivisor) || l.SpacingDivisor <= 0:
		return invalid("layout.spacingDivisor %g must be > 0", l.SpacingDivisor)
	case !finite(l.OverlapMargin) || l.OverlapMargin < 0:
		return invalid("layout.overlapMargin %g must be >= 0", l.OverlapMargin)
	case !finite(l.BleedHeight) || l.BleedHeight < 0:
		return invalid("layout.bleedHeight %g must be >= 0", l.BleedHeight)
	}

	switch {
	case c.Curve != CurveRounded && c.Curve != CurveStraight:
		return invalid("curve mode %d unknown", c.Curve)
	case !finite(c.StrokeWidth) || c.StrokeWidth < 0:
		return invalid("strokeWidth %g must be >= 0", c.StrokeWidth)
	case c.TickRate <= 0:
		return invalid("tickRate %d must be > 0", c.TickRate)
	case !finite(c.FadeIn) || c.FadeIn < 0:
		return invalid("fadeIn %g must be >= 0", c.FadeIn)
	}
	return nil
}

// LoadConfig parses JSON over DefaultConfig and validates the result. Fields
// absent from the JSON keep their defaults. Colors are hex strings.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv builds a Config from JELLY_* variables. Values are looked up
// in the process environment first, then in the given dotenv files (".env"
// when none are named); missing files are skipped. JELLY_CONFIG may name a
// JSON file that is loaded before the individual variables are applied.
func ConfigFromEnv(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	fileVars := map[string]string{}
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vars {
			if _, ok := fileVars[k]; !ok {
				fileVars[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	base := DefaultConfig()
	if path, ok := lookup("JELLY_CONFIG"); ok && path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if base, err = LoadConfig(data); err != nil {
			return Config{}, err
		}
	}
	return applyEnv(base, lookup)
}

// applyEnv overlays JELLY_* values from lookup onto base.
func applyEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	cfg := base
	floats := []struct {
		key string
		dst *float64
	}{
		{"JELLY_DECAY", &cfg.Physics.Decay},
		{"JELLY_RESTORING_POWER", &cfg.Physics.RestoringPower},
		{"JELLY_MAX_SPEED", &cfg.Physics.MaxSpeed},
		{"JELLY_ENTROPY", &cfg.Physics.Entropy},
		{"JELLY_POINTER_RADIUS", &cfg.Pointer.Radius},
		{"JELLY_POINTER_FORCE", &cfg.Pointer.Force},
		{"JELLY_SPACING_DIVISOR", &cfg.Layout.SpacingDivisor},
		{"JELLY_OVERLAP_MARGIN", &cfg.Layout.OverlapMargin},
		{"JELLY_BLEED_HEIGHT", &cfg.Layout.BleedHeight},
		{"JELLY_STROKE_WIDTH", &cfg.StrokeWidth},
		{"JELLY_FADE_IN", &cfg.FadeIn},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = x
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"JELLY_BAND_COUNT", &cfg.Layout.BandCount},
		{"JELLY_TICK_RATE", &cfg.TickRate},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		x, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = x
	}

	if v, ok := lookup("JELLY_COLORS"); ok && v != "" {
		var colors []Color
		for _, s := range strings.Split(v, ",") {
			c, err := ParseHexColor(strings.TrimSpace(s))
			if err != nil {
				return Config{}, fmt.Errorf("JELLY_COLORS: %w", err)
			}
			colors = append(colors, c)
		}
		cfg.Layout.Colors = colors
	}
	if v, ok := lookup("JELLY_CURVE"); ok && v != "" {
		if err := cfg.Curve.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("JELLY_CURVE: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MarshalText encodes the color as "#rrggbb", or "#rrggbbaa" when translucent.
func (c Color) MarshalText() ([]byte, error) {
	s := c.Hex()
	if c.A < 1 {
		s += fmt.Sprintf("%02x", uint8(clamp01(c.A)*255+0.5))
	}
	return []byte(s), nil
}

// UnmarshalText decodes "#rrggbb", "rrggbb" or "#rrggbbaa".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	alpha := 1.0
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return fmt.Errorf("parse color %q: %w", text, err)
		}
		alpha = float64(a) / 255
		s = s[:6]
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	parsed.A = alpha
	*c = parsed
	return nil
}

// MarshalText encodes the mode name.
func (m CurveMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts "rounded" or "straight".
func (m *CurveMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "rounded", "":
		*m = CurveRounded
	case "straight":
		*m = CurveStraight
	default:
		return fmt.Errorf("%w: curve mode %q", ErrInvalidConfig, text)
	}
	return nil
}

// spacingFor returns the lattice spacing for a viewport width.
func (l LayoutConfig) spacingFor(width float64) float64 {
	return width / l.SpacingDivisor
}

// bandBox returns the origin box of band i in a width x height viewport.
func (l LayoutConfig) bandBox(i int, width, height float64) Rect {
	h := height / float64(l.BandCount)
	return Rect{
		X:      -l.OverlapMargin,
		Y:      float64(i) * h,
		Width:  width + l.OverlapMargin,
		Height: h + l.BleedHeight,
	}
}

// colorFor returns the palette color of band i.
func (l LayoutConfig) colorFor(i int) Color {
	return l.Colors[i%len(l.Colors)]
}

package jelly

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	if cfg.Physics.Decay != 0.97 || cfg.Physics.MaxSpeed != 11 || cfg.Physics.Entropy != 0.15 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Pointer.Radius != 35 || cfg.Pointer.Force != 0.125 {
		t.Errorf("pointer = %+v", cfg.Pointer)
	}
	if len(cfg.Layout.Colors) != len(DefaultPalette) {
		t.Errorf("palette length = %d", len(cfg.Layout.Colors))
	}
	cfg.Layout.Colors[0] = Color{}
	if DefaultPalette[0] == (Color{}) {
		t.Error("DefaultConfig shares the DefaultPalette backing array")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"decay zero", func(c *Config) { c.Physics.Decay = 0 }},
		{"decay one", func(c *Config) { c.Physics.Decay = 1 }},
		{"decay nan", func(c *Config) { c.Physics.Decay = math.NaN() }},
		{"negative restoring", func(c *Config) { c.Physics.RestoringPower = -1 }},
		{"zero max speed", func(c *Config) { c.Physics.MaxSpeed = 0 }},
		{"negative entropy", func(c *Config) { c.Physics.Entropy = -0.1 }},
		{"negative radius", func(c *Config) { c.Pointer.Radius = -1 }},
		{"infinite force", func(c *Config) { c.Pointer.Force = math.Inf(1) }},
		{"no bands", func(c *Config) { c.Layout.BandCount = 0 }},
		{"no colors", func(c *Config) { c.Layout.Colors = nil }},
		{"zero divisor", func(c *Config) { c.Layout.SpacingDivisor = 0 }},
		{"negative overlap", func(c *Config) { c.Layout.OverlapMargin = -1 }},
		{"negative bleed", func(c *Config) { c.Layout.BleedHeight = -1 }},
		{"unknown curve", func(c *Config) { c.Curve = CurveMode(7) }},
		{"negative stroke", func(c *Config) { c.StrokeWidth = -1 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative fade", func(c *Config) { c.FadeIn = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"physics": {"decay": 0.9},
		"curve": "straight",
		"layout": {"colors": ["#ff0000", "00ff0080"]}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.Decay != 0.9 {
		t.Errorf("decay = %v, want 0.9", cfg.Physics.Decay)
	}
	if cfg.Physics.Entropy != 0.15 || cfg.Layout.BandCount != 5 {
		t.Error("absent fields should keep their defaults")
	}
	if cfg.Curve != CurveStraight {
		t.Errorf("curve = %v, want straight", cfg.Curve)
	}
	if len(cfg.Layout.Colors) != 2 {
		t.Fatalf("colors = %d, want 2", len(cfg.Layout.Colors))
	}
	if cfg.Layout.Colors[0] != (Color{R: 1, A: 1}) {
		t.Errorf("color 0 = %+v", cfg.Layout.Colors[0])
	}
	if c := cfg.Layout.Colors[1]; c.G != 1 || math.Abs(c.A-128.0/255) > 1e-9 {
		t.Errorf("color 1 = %+v", c)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"syntax", `{"physics":`},
		{"bad color", `{"layout": {"colors": ["#nothex"]}}`},
		{"bad curve", `{"curve": "wobbly"}`},
		{"invalid value", `{"physics": {"decay": 2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.json)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestColorMarshalText(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{R: 1, A: 1}, "#ff0000"},
		{Color{B: 1, A: 0.5}, "#0000ff80"},
	}
	for _, tt := range tests {
		got, err := tt.c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("MarshalText(%+v) = %q, want %q", tt.c, got, tt.want)
		}
		var back Color
		if err := back.UnmarshalText(got); err != nil {
			t.Fatal(err)
		}
		if back.Hex() != tt.c.Hex() || math.Abs(back.A-tt.c.A) > 1.0/255 {
			t.Errorf("round trip %q = %+v", got, back)
		}
	}
}

func TestCurveModeUnmarshalText(t *testing.T) {
	var m CurveMode
	for text, want := range map[string]CurveMode{
		"rounded": CurveRounded, "STRAIGHT": CurveStraight, "": CurveRounded,
	} {
		if err := m.UnmarshalText([]byte(text)); err != nil || m != want {
			t.Errorf("UnmarshalText(%q) = %v, %v", text, m, err)
		}
	}
	if err := m.UnmarshalText([]byte("bezier")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestApplyEnv(t *testing.T) {
	vars := map[string]string{
		"JELLY_DECAY":      "0.8",
		"JELLY_BAND_COUNT": " 3 ",
		"JELLY_COLORS":     "#112233, 445566",
		"JELLY_CURVE":      "straight",
		"JELLY_FADE_IN":    "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	cfg, err := applyEnv(DefaultConfig(), lookup)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.Decay != 0.8 || cfg.Layout.BandCount != 3 || cfg.Curve != CurveStraight {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.FadeIn != DefaultConfig().FadeIn {
		t.Errorf("empty value should be ignored, FadeIn = %v", cfg.FadeIn)
	}
	if len(cfg.Layout.Colors) != 2 || cfg.Layout.Colors[1].Hex() != "#445566" {
		t.Errorf("colors = %+v", cfg.Layout.Colors)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	tests := []struct{ key, value string }{
		{"JELLY_DECAY", "fast"},
		{"JELLY_TICK_RATE", "1.5"},
		{"JELLY_COLORS", "#123456,nope"},
		{"JELLY_CURVE", "spline"},
		{"JELLY_MAX_SPEED", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.value, true
				}
				return "", false
			}
			if _, err := applyEnv(DefaultConfig(), lookup); err == nil {
				t.Errorf("%s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}

func TestConfigFromEnvDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "jelly.env")
	if err := os.WriteFile(envFile, []byte("JELLY_DECAY=0.5\nJELLY_BAND_COUNT=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JELLY_DECAY", "0.8")

	cfg, err := ConfigFromEnv(filepath.Join(dir, "missing.env"), envFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.Decay != 0.8 {
		t.Errorf("decay = %v, want process env value 0.8", cfg.Physics.Decay)
	}
	if cfg.Layout.BandCount != 3 {
		t.Errorf("bandCount = %d, want 3 from file", cfg.Layout.BandCount)
	}
}

func TestConfigFromEnvJSONFile(t *testing.T) {
	dir := t.TempDir()
	jsonFile := filepath.Join(dir, "jelly.json")
	if err := os.WriteFile(jsonFile, []byte(`{"tickRate": 30, "pointer": {"radius": 50}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JELLY_CONFIG", jsonFile)
	t.Setenv("JELLY_POINTER_RADIUS", "60")

	cfg, err := ConfigFromEnv(filepath.Join(dir, "none.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("tickRate = %d, want 30", cfg.TickRate)
	}
	if cfg.Pointer.Radius != 60 {
		t.Errorf("radius = %v, want env override 60", cfg.Pointer.Radius)
	}
}

func TestConfigFromEnvMissingJSON(t *testing.T) {
	t.Setenv("JELLY_CONFIG", filepath.Join(t.TempDir(), "absent.json"))
	if _, err := ConfigFromEnv(filepath.Join(t.TempDir(), "none.env")); err == nil {
		t.Error("expected error for missing JELLY_CONFIG file")
	}
}

func TestLayoutBandBox(t *testing.T) {
	l := DefaultConfig().Layout
	got := l.bandBox(2, 750, 500)
	want := Rect{X: -100, Y: 200, Width: 850, Height: 150}
	if got != want {
		t.Errorf("bandBox = %+v, want %+v", got, want)
	}
	if s := l.spacingFor(750); s != 50 {
		t.Errorf("spacing = %v, want 50", s)
	}
	if l.colorFor(7) != l.Colors[2] {
		t.Error("colorFor should wrap around the palette")
	}
}

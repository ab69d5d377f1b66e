package config

import (
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Title != "Simple Whiteboard" {
		t.Errorf("title = %q, want %q", cfg.Title, "Simple Whiteboard")
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Bridge.Enabled {
		t.Error("bridge should be disabled by default")
	}
}

func TestParseFull(t *testing.T) {
	data := []byte(`
title = "Sketch Pad"
width = 1280
height = 720

[bridge]
enabled = true
port = 9000
advertise = true
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Title != "Sketch Pad" {
		t.Errorf("title = %q, want %q", cfg.Title, "Sketch Pad")
	}
	if cfg.Width != 1280 {
		t.Errorf("width = %d, want 1280", cfg.Width)
	}
	if cfg.Height != 720 {
		t.Errorf("height = %d, want 720", cfg.Height)
	}
	if !cfg.Bridge.Enabled {
		t.Error("bridge.enabled should be true")
	}
	if cfg.Bridge.Port != 9000 {
		t.Errorf("bridge.port = %d, want 9000", cfg.Bridge.Port)
	}
	if !cfg.Bridge.Advertise {
		t.Error("bridge.advertise should be true")
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`title = "Mine"`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Title != "Mine" {
		t.Errorf("title = %q, want %q", cfg.Title, "Mine")
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", cfg.Width, cfg.Height)
	}
}

func TestParseSanitizesBadValues(t *testing.T) {
	data := []byte(`
title = ""
width = -10
height = 0

[bridge]
port = 700000
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("title = %q, want default", cfg.Title)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", cfg.Width, cfg.Height)
	}
	if cfg.Bridge.Port != defaultBridgePort {
		t.Errorf("bridge.port = %d, want default", cfg.Bridge.Port)
	}
}

func TestParseMalformedFallsBack(t *testing.T) {
	cfg, err := Parse([]byte(`title = [not toml`))
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
	if cfg != Default() {
		t.Error("malformed config should fall back to defaults")
	}
}

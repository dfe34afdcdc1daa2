package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	data := "server: http://example.com:9090\ntimeout: 3s\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server != "http://example.com:9090" {
		t.Errorf("server = %q", cfg.Server)
	}
	if got := cfg.RequestTimeout(); got != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", got)
	}
	if cfg.Theme != "classic" {
		t.Errorf("theme = %q, want default kept", cfg.Theme)
	}
}

func TestRequestTimeoutFallback(t *testing.T) {
	for _, bad := range []string{"", "soon", "-2s"} {
		c := Config{Timeout: bad}
		if got := c.RequestTimeout(); got != 10*time.Second {
			t.Errorf("RequestTimeout(%q) = %v, want 10s", bad, got)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := Config{Server: "http://localhost:9999", Timeout: "5s", Theme: "neon"}
	if err := Save(want, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

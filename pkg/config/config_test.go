package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsWhenUnset(t *testing.T) {
	s := New()

	if got := s.GetString("module/battery", "battery", "BAT0"); got != "BAT0" {
		t.Errorf("GetString default = %q, want BAT0", got)
	}
	if got := s.GetInt("module/battery", "full_at", 100); got != 100 {
		t.Errorf("GetInt default = %d, want 100", got)
	}
	if got := s.GetStringSlice("module/battery", "animation-charging", []string{"a", "b"}); len(got) != 2 {
		t.Errorf("GetStringSlice default = %v, want [a b]", got)
	}
}

func TestSetOverridesDefault(t *testing.T) {
	s := New()
	s.Set("module/battery", "full_at", 95)

	if got := s.GetInt("module/battery", "full_at", 100); got != 95 {
		t.Errorf("GetInt = %d, want 95", got)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := s.GetString("module/battery", "adapter", "ADP1"); got != "ADP1" {
		t.Errorf("GetString = %q, want ADP1", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beambar.toml")
	content := `
["module/battery"]
battery = "BAT1"
full_at = 95
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := s.GetString("module/battery", "battery", "BAT0"); got != "BAT1" {
		t.Errorf("battery = %q, want BAT1", got)
	}
	if got := s.GetInt("module/battery", "full_at", 100); got != 95 {
		t.Errorf("full_at = %d, want 95", got)
	}
	if got := s.GetString("module/battery", "adapter", "ADP1"); got != "ADP1" {
		t.Errorf("adapter = %q, want default ADP1", got)
	}
}

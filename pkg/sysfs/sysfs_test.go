package sysfs

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestGetContents(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "capacity")
	if err := os.WriteFile(path, []byte("87\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := GetContents(path)
	if err != nil {
		t.Fatalf("GetContents() error = %v", err)
	}
	if got != "87" {
		t.Errorf("GetContents() = %q, want %q", got, "87")
	}

	if _, err := GetContents(filepath.Join(dir, "missing")); err == nil {
		t.Error("GetContents() on missing file: expected error, got nil")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "plain integer", raw: "87", want: 87},
		{name: "trailing newline", raw: "42\n", want: 42},
		{name: "rounds half up", raw: "99.6", want: 100},
		{name: "rounds down below half", raw: "99.4", want: 99},
		{name: "caps above 100", raw: "150", want: 100},
		{name: "caps below 0", raw: "-3", want: 0},
		{name: "non-numeric parses as 0", raw: "garbage", want: 0},
		{name: "empty parses as 0", raw: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.raw); got != tt.want {
				t.Errorf("Percentage(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPercentageMonotonic(t *testing.T) {
	prev := -1
	for v := -20; v <= 120; v++ {
		got := Percentage(strconv.Itoa(v))
		if got < prev {
			t.Fatalf("Percentage not monotonic: Percentage(%d) = %d < %d", v, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("Percentage(%d) = %d out of [0,100]", v, got)
		}
		prev = got
	}
}

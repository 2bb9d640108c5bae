package builder

import (
	"testing"

	"github.com/beambar/beambar/pkg/drawtypes"
)

type fakeSource struct {
	format *drawtypes.Format
	known  map[string]string
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Format() *drawtypes.Format { return f.format }

func (f *fakeSource) Build(b *Builder, tag string) bool {
	text, ok := f.known[tag]
	if !ok {
		return false
	}
	b.Node(text)
	return true
}

func TestBuildModuleSkipsUnsupportedTags(t *testing.T) {
	src := &fakeSource{
		format: &drawtypes.Format{Name: "format-x", Tags: []string{"a", "missing", "b"}},
		known:  map[string]string{"a": "left", "b": "right"},
	}

	if got := BuildModule(src); got != "left right" {
		t.Errorf("BuildModule() = %q, want %q", got, "left right")
	}
}

func TestNodeDropsEmptyOutput(t *testing.T) {
	b := New()
	b.Node("one")
	b.Node("")
	b.Node("two")

	if got := b.String(); got != "one two" {
		t.Errorf("String() = %q, want %q", got, "one two")
	}
}

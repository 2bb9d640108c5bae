// Package builder assembles module output by pulling renderables tag by
// tag, the way the bar re-draws after a broadcast.
package builder

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/beambar/beambar/pkg/drawtypes"
)

// TagSource is the render-facing side of a module: it selects a format
// for its current state and emits a renderable per tag.
type TagSource interface {
	Name() string
	// Format returns the tag list for the module's current state.
	Format() *drawtypes.Format
	// Build emits the renderable for tag into b. It returns false for
	// tags the module does not support, which the builder skips.
	Build(b *Builder, tag string) bool
}

// Builder accumulates rendered nodes for one pull.
type Builder struct {
	nodes []string
}

func New() *Builder {
	return &Builder{}
}

// Node appends one rendered element. Empty output is dropped so optional
// renderables do not leave stray separators behind.
func (b *Builder) Node(text string) {
	if text == "" {
		return
	}
	b.nodes = append(b.nodes, text)
}

func (b *Builder) String() string {
	return strings.Join(b.nodes, " ")
}

// BuildModule pulls every tag of the module's current format and joins
// the results. Unsupported tags are a no-op, never an error.
func BuildModule(src TagSource) string {
	b := New()
	f := src.Format()
	for _, tag := range f.Tags {
		if !src.Build(b, tag) {
			logrus.Tracef("module %s does not handle tag <%s>", src.Name(), tag)
		}
	}
	return b.String()
}

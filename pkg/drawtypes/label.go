// Package drawtypes holds the renderable primitives a module can emit:
// labels with token substitution, progress bars, ramps, and animations.
package drawtypes

import "strings"

// Label is a text template, e.g. "charging %percentage%". Templates are
// never mutated after construction; tokenized working copies are.
type Label struct {
	Text string
}

func NewLabel(text string) *Label {
	return &Label{Text: text}
}

// Clone returns an independent working copy of the label.
func (l *Label) Clone() *Label {
	return &Label{Text: l.Text}
}

// ReplaceToken substitutes every occurrence of token in place.
func (l *Label) ReplaceToken(token, value string) {
	l.Text = strings.ReplaceAll(l.Text, token, value)
}

func (l *Label) Output() string {
	return l.Text
}

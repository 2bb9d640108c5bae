package drawtypes

import "strings"

// ProgressBar renders a percentage as a fixed-width run of fill and
// empty characters.
type ProgressBar struct {
	Width int
	Fill  string
	Empty string
}

func NewProgressBar(width int, fill, empty string) *ProgressBar {
	if width <= 0 {
		width = 10
	}
	return &ProgressBar{Width: width, Fill: fill, Empty: empty}
}

func (b *ProgressBar) Output(percentage int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := b.Width * percentage / 100
	return strings.Repeat(b.Fill, filled) + strings.Repeat(b.Empty, b.Width-filled)
}

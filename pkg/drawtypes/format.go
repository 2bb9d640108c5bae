package drawtypes

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Format is an ordered list of tags pulled at render time, parsed from a
// config string like "<bar-capacity> <label-charging>".
type Format struct {
	Name string
	Tags []string
}

// ParseFormat extracts the <tag> references from text in order. Tags not
// in the allowed set are dropped with a warning so a config typo cannot
// take the whole format down.
func ParseFormat(name, text string, allowed []string) *Format {
	f := &Format{Name: name}

	rest := text
	for {
		start := strings.Index(rest, "<")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start:], ">")
		if end < 0 {
			break
		}
		tag := rest[start+1 : start+end]
		rest = rest[start+end+1:]

		if !contains(allowed, tag) {
			logrus.Warnf("format %s references unknown tag <%s>, ignoring", name, tag)
			continue
		}
		f.Tags = append(f.Tags, tag)
	}

	return f
}

// Has reports whether the format pulls the given tag.
func (f *Format) Has(tag string) bool {
	return contains(f.Tags, tag)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

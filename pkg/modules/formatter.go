package modules

import "github.com/beambar/beambar/pkg/drawtypes"

// Formatter holds a module's named formats, one per display state.
type Formatter struct {
	formats map[string]*drawtypes.Format
}

func NewFormatter() *Formatter {
	return &Formatter{formats: make(map[string]*drawtypes.Format)}
}

func (f *Formatter) Add(format *drawtypes.Format) {
	f.formats[format.Name] = format
}

func (f *Formatter) Get(name string) *drawtypes.Format {
	return f.formats[name]
}

// Has reports whether tag is pulled by any of the named formats, or by
// any format at all when none are named. Modules use it to decide which
// renderables to construct.
func (f *Formatter) Has(tag string, names ...string) bool {
	if len(names) == 0 {
		for _, format := range f.formats {
			if format.Has(tag) {
				return true
			}
		}
		return false
	}
	for _, name := range names {
		if format, ok := f.formats[name]; ok && format.Has(tag) {
			return true
		}
	}
	return false
}

package drawtypes

// Ramp maps a percentage onto one icon from an ordered list.
type Ramp struct {
	Icons []string
}

func NewRamp(icons []string) *Ramp {
	return &Ramp{Icons: icons}
}

func (r *Ramp) Output(percentage int) string {
	if len(r.Icons) == 0 {
		return ""
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	i := percentage * len(r.Icons) / 100
	if i >= len(r.Icons) {
		i = len(r.Icons) - 1
	}
	return r.Icons[i]
}

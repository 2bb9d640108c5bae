package drawtypes

import "github.com/beambar/beambar/pkg/config"

// Config-driven constructors. Each reads its settings from the module's
// config section, falling back to the given defaults, mirroring the
// "<key>", "<key>-width", "<key>-framerate" key shapes bar configs use.

func LabelFromConfig(s *config.Store, section, key, def string) *Label {
	return NewLabel(s.GetString(section, key, def))
}

func BarFromConfig(s *config.Store, section, key string) *ProgressBar {
	return NewProgressBar(
		s.GetInt(section, key+"-width", 10),
		s.GetString(section, key+"-fill", "#"),
		s.GetString(section, key+"-empty", "."),
	)
}

func RampFromConfig(s *config.Store, section, key string, def []string) *Ramp {
	return NewRamp(s.GetStringSlice(section, key, def))
}

func AnimationFromConfig(s *config.Store, section, key string, defFrames []string, defFramerate int) *Animation {
	return NewAnimation(
		s.GetStringSlice(section, key, defFrames),
		s.GetInt(section, key+"-framerate", defFramerate),
	)
}

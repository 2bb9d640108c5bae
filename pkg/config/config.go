// Package config loads the beambar configuration file and hands out
// per-module values with caller-supplied defaults.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultPath is where the daemon looks for its configuration unless
// told otherwise on the command line.
const DefaultPath = "/etc/beambar.toml"

// Store wraps the parsed configuration file. Lookups never fail; a key
// that is absent from the file yields the caller's default, so every
// module works out of the box with an empty config.
type Store struct {
	v *viper.Viper
}

// Load parses the configuration file at path. A missing file is not an
// error: the daemon runs entirely on defaults in that case.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			logrus.Warnf("config file %s does not exist, using defaults", path)
			return &Store{v: v}, nil
		}
		return nil, err
	}

	logrus.Infof("config loaded from %s", v.ConfigFileUsed())
	return &Store{v: v}, nil
}

// New returns an empty Store that resolves every lookup to its default.
// Used by tests and as a fallback when no config file is given.
func New() *Store {
	return &Store{v: viper.New()}
}

// Set overrides a single key, primarily for tests.
func (s *Store) Set(section, key string, value any) {
	s.v.Set(joinKey(section, key), value)
}

// GetString returns the string at section.key, or def when unset.
func (s *Store) GetString(section, key, def string) string {
	k := joinKey(section, key)
	if !s.v.IsSet(k) {
		return def
	}
	return s.v.GetString(k)
}

// GetInt returns the integer at section.key, or def when unset.
func (s *Store) GetInt(section, key string, def int) int {
	k := joinKey(section, key)
	if !s.v.IsSet(k) {
		return def
	}
	return s.v.GetInt(k)
}

// GetStringSlice returns the string list at section.key, or def when unset.
func (s *Store) GetStringSlice(section, key string, def []string) []string {
	k := joinKey(section, key)
	if !s.v.IsSet(k) {
		return def
	}
	return s.v.GetStringSlice(k)
}

// joinKey maps a (section, key) pair onto viper's dotted key space.
// Module sections use slashes in the file ("module/battery") the way
// bar configs traditionally do; viper keys cannot contain dots inside
// a path element, so slashes are kept as-is.
func joinKey(section, key string) string {
	if section == "" {
		return key
	}
	return strings.ToLower(section) + "." + key
}

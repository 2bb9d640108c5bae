// Package battery observes a battery through /sys/class/power_supply and
// renders its charge state for the bar.
package battery

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/beambar/beambar/pkg/builder"
	"github.com/beambar/beambar/pkg/config"
	"github.com/beambar/beambar/pkg/drawtypes"
	"github.com/beambar/beambar/pkg/events"
	"github.com/beambar/beambar/pkg/modules"
	"github.com/beambar/beambar/pkg/sysfs"
	"github.com/beambar/beambar/pkg/types"
)

// Output tags.
const (
	TagAnimationCharging = "animation-charging"
	TagBarCapacity       = "bar-capacity"
	TagRampCapacity      = "ramp-capacity"
	TagLabelCharging     = "label-charging"
	TagLabelDischarging  = "label-discharging"
	TagLabelFull         = "label-full"
)

// Format names, selected by charge state.
const (
	FormatCharging    = "format-charging"
	FormatDischarging = "format-discharging"
	FormatFull        = "format-full"
)

const (
	pathBatteryCapacity = "/sys/class/power_supply/%battery%/capacity"
	pathAdapterStatus   = "/sys/class/power_supply/%adapter%/online"

	percentageToken = "%percentage%"
)

// Animation loop tuning. The retry budget only covers the startup window
// before the module is enabled; the first tick taken while enabled
// consumes whatever budget is left.
const (
	defaultRetryBudget = 5
	defaultCooldown    = 500 * time.Millisecond
)

var defaultRampIcons = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

var defaultAnimationFrames = []string{"▁", "▃", "▅", "▇"}

// Module is the battery status module. The sampler (OnFileEvent) is its
// sole state writer; the render path and the animation loop only read.
type Module struct {
	*modules.Base

	battery string
	adapter string
	fullAt  int

	capacityPath string
	statusPath   string

	formatter *modules.Formatter

	animationCharging *drawtypes.Animation
	barCapacity       *drawtypes.ProgressBar
	rampCapacity      *drawtypes.Ramp

	// Static templates and their per-state working copies. The working
	// copies are allocated once here and overwritten in place on every
	// sample; they are never replaced afterwards.
	labels    map[types.ChargeState]*drawtypes.Label
	tokenized map[types.ChargeState]*drawtypes.Label

	hub *events.Hub

	// gate serializes snapshot publication against reads from the render
	// path and the animation loop. Held only around those accesses, never
	// across a broadcast.
	gate     sync.Mutex
	snapshot types.Snapshot

	retryBudget int
	cooldown    time.Duration
}

// New builds the module from its config section. name is the instance
// name, conventionally "battery"; its section in the config file is
// "module/<name>".
func New(name string, conf *config.Store, hub *events.Hub) *Module {
	section := "module/" + name

	m := &Module{
		Base:        modules.NewBase(name),
		battery:     conf.GetString(section, "battery", "BAT0"),
		adapter:     conf.GetString(section, "adapter", "ADP1"),
		fullAt:      conf.GetInt(section, "full_at", 100),
		formatter:   modules.NewFormatter(),
		hub:         hub,
		retryBudget: defaultRetryBudget,
		cooldown:    defaultCooldown,
	}

	m.capacityPath = strings.ReplaceAll(pathBatteryCapacity, "%battery%", m.battery)
	m.statusPath = strings.ReplaceAll(pathAdapterStatus, "%adapter%", m.adapter)

	m.formatter.Add(drawtypes.ParseFormat(FormatCharging,
		conf.GetString(section, FormatCharging, "<"+TagLabelCharging+">"),
		[]string{TagBarCapacity, TagRampCapacity, TagAnimationCharging, TagLabelCharging}))
	m.formatter.Add(drawtypes.ParseFormat(FormatDischarging,
		conf.GetString(section, FormatDischarging, "<"+TagLabelDischarging+">"),
		[]string{TagBarCapacity, TagRampCapacity, TagLabelDischarging}))
	m.formatter.Add(drawtypes.ParseFormat(FormatFull,
		conf.GetString(section, FormatFull, "<"+TagLabelFull+">"),
		[]string{TagBarCapacity, TagRampCapacity, TagLabelFull}))

	if m.formatter.Has(TagAnimationCharging, FormatCharging) {
		m.animationCharging = drawtypes.AnimationFromConfig(conf, section,
			TagAnimationCharging, defaultAnimationFrames, 750)
	}
	if m.formatter.Has(TagBarCapacity) {
		m.barCapacity = drawtypes.BarFromConfig(conf, section, TagBarCapacity)
	}
	if m.formatter.Has(TagRampCapacity) {
		m.rampCapacity = drawtypes.RampFromConfig(conf, section, TagRampCapacity, defaultRampIcons)
	}

	m.labels = map[types.ChargeState]*drawtypes.Label{
		types.Charging:    drawtypes.LabelFromConfig(conf, section, TagLabelCharging, percentageToken),
		types.Discharging: drawtypes.LabelFromConfig(conf, section, TagLabelDischarging, percentageToken),
		types.Full:        drawtypes.LabelFromConfig(conf, section, TagLabelFull, percentageToken),
	}
	m.tokenized = make(map[types.ChargeState]*drawtypes.Label, len(m.labels))
	for state, tmpl := range m.labels {
		m.tokenized[state] = tmpl.Clone()
	}

	// The animation loop is launched exactly once, here. Its retry budget
	// covers the window between construction and Start.
	if m.animationCharging != nil {
		go m.animationLoop()
	}

	return m
}

// WatchPaths lists the two observed sysfs attributes.
func (m *Module) WatchPaths() []string {
	return []string{m.capacityPath, m.statusPath}
}

// Snapshot returns the last published observation.
func (m *Module) Snapshot() types.Snapshot {
	m.gate.Lock()
	defer m.gate.Unlock()
	return m.snapshot
}

// OnFileEvent re-reads both attributes and publishes a new snapshot. On
// a failed read it logs, leaves the previous snapshot untouched, and
// reports false; the module stays operational.
func (m *Module) OnFileEvent(path string) bool {
	if path != "" {
		logrus.Tracef("%s: file event for %s", m.Name(), path)
	}

	status, err := sysfs.GetContents(m.statusPath)
	if err != nil {
		logrus.Errorf("failed to read %s: %v", m.statusPath, err)
		return false
	}
	if status == "" {
		logrus.Errorf("failed to read %s: empty content", m.statusPath)
		return false
	}

	capacity, err := sysfs.GetContents(m.capacityPath)
	if err != nil {
		logrus.Errorf("failed to read %s: %v", m.capacityPath, err)
		return false
	}
	if capacity == "" {
		logrus.Errorf("failed to read %s: empty content", m.capacityPath)
		return false
	}

	percentage := sysfs.Percentage(capacity)

	state := types.Unknown
	switch status[0] {
	case '0':
		state = types.Discharging
	case '1':
		state = types.Charging
	}

	if state == types.Charging && percentage >= m.fullAt {
		percentage = 100
	}
	// Full is percentage-driven: a 100% reading counts as full even when
	// the raw status byte said discharging.
	if percentage == 100 {
		state = types.Full
	}

	value := strconv.Itoa(percentage) + "%"

	m.gate.Lock()
	for st, tmpl := range m.labels {
		tok := m.tokenized[st]
		tok.Text = tmpl.Text
		tok.ReplaceToken(percentageToken, value)
	}
	m.snapshot = types.Snapshot{State: state, Percentage: percentage}
	m.gate.Unlock()

	return true
}

// Format selects the tag list for the current state. Unknown falls back
// to the discharging format; it never surfaces as a format of its own.
func (m *Module) Format() *drawtypes.Format {
	switch m.Snapshot().State {
	case types.Full:
		return m.formatter.Get(FormatFull)
	case types.Charging:
		return m.formatter.Get(FormatCharging)
	default:
		return m.formatter.Get(FormatDischarging)
	}
}

// Build emits the renderable for one tag. Unknown tags report false and
// are skipped by the builder.
func (m *Module) Build(b *builder.Builder, tag string) bool {
	m.gate.Lock()
	defer m.gate.Unlock()

	switch tag {
	case TagAnimationCharging:
		if m.animationCharging == nil {
			return false
		}
		b.Node(m.animationCharging.Output())
	case TagBarCapacity:
		if m.barCapacity == nil {
			return false
		}
		b.Node(m.barCapacity.Output(m.snapshot.Percentage))
	case TagRampCapacity:
		if m.rampCapacity == nil {
			return false
		}
		b.Node(m.rampCapacity.Output(m.snapshot.Percentage))
	case TagLabelCharging:
		b.Node(m.tokenized[types.Charging].Output())
	case TagLabelDischarging:
		b.Node(m.tokenized[types.Discharging].Output())
	case TagLabelFull:
		b.Node(m.tokenized[types.Full].Output())
	default:
		return false
	}

	return true
}

// animationLoop ticks the charging animation independent of file events,
// which can be arbitrarily far apart. It broadcasts only while charging
// and exits for good once the retry budget is spent with the module
// disabled. The budget is a startup grace period: the first tick taken
// while enabled collapses it to zero.
func (m *Module) animationLoop() {
	frame := m.animationCharging.FrameDuration()
	retries := m.retryBudget

	for retries > 0 {
		retries--

		for m.Enabled() {
			m.gate.Lock()
			if retries > 0 {
				retries = 0
			}
			state := m.snapshot.State
			m.gate.Unlock()

			if state == types.Charging {
				m.hub.Publish(events.Redraw, m.Name())
			} else {
				logrus.Tracef("%s: state != charging, skipping redraw", m.Name())
			}

			time.Sleep(frame)
		}

		time.Sleep(m.cooldown)
	}

	logrus.Debugf("%s: animation loop exited", m.Name())
}

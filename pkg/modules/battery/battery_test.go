package battery

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/beambar/beambar/pkg/builder"
	"github.com/beambar/beambar/pkg/config"
	"github.com/beambar/beambar/pkg/drawtypes"
	"github.com/beambar/beambar/pkg/events"
	"github.com/beambar/beambar/pkg/types"
)

// newTestModule builds a module whose sysfs paths point into a temp dir
// seeded with the given file contents.
func newTestModule(t *testing.T, conf *config.Store, status, capacity string) (*Module, *events.Hub) {
	t.Helper()

	if conf == nil {
		conf = config.New()
	}
	hub := events.NewHub()
	m := New("battery", conf, hub)

	dir := t.TempDir()
	m.statusPath = filepath.Join(dir, "online")
	m.capacityPath = filepath.Join(dir, "capacity")
	writeAttr(t, m.statusPath, status)
	writeAttr(t, m.capacityPath, capacity)

	return m, hub
}

func writeAttr(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func labelText(m *Module, state types.ChargeState) string {
	m.gate.Lock()
	defer m.gate.Unlock()
	return m.tokenized[state].Text
}

func TestSampleCharging(t *testing.T) {
	m, _ := newTestModule(t, nil, "1\n", "87\n")

	if !m.OnFileEvent("") {
		t.Fatal("OnFileEvent() = false, want true")
	}

	snap := m.Snapshot()
	if snap.State != types.Charging || snap.Percentage != 87 {
		t.Errorf("snapshot = %+v, want charging/87", snap)
	}
	if got := labelText(m, types.Charging); got != "87%" {
		t.Errorf("charging label = %q, want %q", got, "87%")
	}
}

func TestSampleFullAtThreshold(t *testing.T) {
	conf := config.New()
	conf.Set("module/battery", "full_at", 95)
	m, _ := newTestModule(t, conf, "1\n", "99.6\n")

	if !m.OnFileEvent("") {
		t.Fatal("OnFileEvent() = false, want true")
	}

	snap := m.Snapshot()
	if snap.State != types.Full || snap.Percentage != 100 {
		t.Errorf("snapshot = %+v, want full/100", snap)
	}
	if got := labelText(m, types.Full); got != "100%" {
		t.Errorf("full label = %q, want %q", got, "100%")
	}
}

func TestFullOverridesRawDischarging(t *testing.T) {
	m, _ := newTestModule(t, nil, "0\n", "100\n")

	if !m.OnFileEvent("") {
		t.Fatal("OnFileEvent() = false, want true")
	}

	if snap := m.Snapshot(); snap.State != types.Full {
		t.Errorf("state = %v, want full", snap.State)
	}
}

func TestUnknownStatusByteKeepsUnknownState(t *testing.T) {
	m, _ := newTestModule(t, nil, "2\n", "42\n")

	if !m.OnFileEvent("") {
		t.Fatal("OnFileEvent() = false, want true")
	}

	snap := m.Snapshot()
	if snap.State != types.Unknown || snap.Percentage != 42 {
		t.Errorf("snapshot = %+v, want unknown/42", snap)
	}
	// Unknown never gets its own format.
	if f := m.Format(); f.Name != FormatDischarging {
		t.Errorf("format = %s, want %s", f.Name, FormatDischarging)
	}
}

func TestEmptyReadKeepsPriorSnapshot(t *testing.T) {
	m, _ := newTestModule(t, nil, "1\n", "87\n")
	if !m.OnFileEvent("") {
		t.Fatal("initial sample failed")
	}
	before := m.Snapshot()

	writeAttr(t, m.statusPath, "")
	if m.OnFileEvent(m.statusPath) {
		t.Error("OnFileEvent() = true on empty status, want false")
	}
	if after := m.Snapshot(); after != before {
		t.Errorf("snapshot changed on failed sample: %+v -> %+v", before, after)
	}

	// Same for a missing capacity file.
	writeAttr(t, m.statusPath, "1\n")
	if err := os.Remove(m.capacityPath); err != nil {
		t.Fatal(err)
	}
	if m.OnFileEvent(m.capacityPath) {
		t.Error("OnFileEvent() = true on missing capacity, want false")
	}
	if after := m.Snapshot(); after != before {
		t.Errorf("snapshot changed on failed sample: %+v -> %+v", before, after)
	}
}

func TestEmptyReadLogsEmptyContent(t *testing.T) {
	m, _ := newTestModule(t, nil, "", "87\n")

	var buf bytes.Buffer
	logger := logrus.StandardLogger()
	prev := logger.Out
	logger.SetOutput(&buf)
	defer logger.SetOutput(prev)

	if m.OnFileEvent("") {
		t.Fatal("OnFileEvent() = true on empty status, want false")
	}
	if !strings.Contains(buf.String(), "empty content") {
		t.Errorf("log = %q, want it to say the file was empty", buf.String())
	}
	if strings.Contains(buf.String(), "<nil>") {
		t.Errorf("log = %q, must not print a nil error", buf.String())
	}
}

func TestSamplingIsIdempotent(t *testing.T) {
	m, _ := newTestModule(t, nil, "0\n", "63\n")

	if !m.OnFileEvent("") {
		t.Fatal("first sample failed")
	}
	snap1 := m.Snapshot()
	label1 := labelText(m, types.Discharging)

	if !m.OnFileEvent("") {
		t.Fatal("second sample failed")
	}
	if snap2 := m.Snapshot(); snap2 != snap1 {
		t.Errorf("snapshot not idempotent: %+v vs %+v", snap1, snap2)
	}
	if label2 := labelText(m, types.Discharging); label2 != label1 {
		t.Errorf("label not idempotent: %q vs %q", label1, label2)
	}
}

func TestFormatSelection(t *testing.T) {
	tests := []struct {
		state types.ChargeState
		want  string
	}{
		{types.Charging, FormatCharging},
		{types.Discharging, FormatDischarging},
		{types.Full, FormatFull},
		{types.Unknown, FormatDischarging},
	}
	m, _ := newTestModule(t, nil, "1\n", "50\n")
	for _, tt := range tests {
		m.gate.Lock()
		m.snapshot = types.Snapshot{State: tt.state, Percentage: 50}
		m.gate.Unlock()
		if got := m.Format(); got.Name != tt.want {
			t.Errorf("Format() for %v = %s, want %s", tt.state, got.Name, tt.want)
		}
	}
}

func TestBuildRendersConfiguredTags(t *testing.T) {
	conf := config.New()
	conf.Set("module/battery", FormatDischarging,
		"<bar-capacity> <ramp-capacity> <label-discharging>")
	conf.Set("module/battery", "bar-capacity-width", 4)
	conf.Set("module/battery", "bar-capacity-fill", "#")
	conf.Set("module/battery", "bar-capacity-empty", ".")
	conf.Set("module/battery", "ramp-capacity", []string{"L", "M", "H"})
	conf.Set("module/battery", "label-discharging", "bat %percentage%")

	m, _ := newTestModule(t, conf, "0\n", "50\n")
	if !m.OnFileEvent("") {
		t.Fatal("sample failed")
	}

	got := builder.BuildModule(m)
	want := "##.. M bat 50%"
	if got != want {
		t.Errorf("BuildModule() = %q, want %q", got, want)
	}
}

func TestBuildUnknownTagNotHandled(t *testing.T) {
	m, _ := newTestModule(t, nil, "1\n", "50\n")

	b := builder.New()
	if m.Build(b, "label-bogus") {
		t.Error("Build() = true for unknown tag, want false")
	}
	if b.String() != "" {
		t.Errorf("builder not empty after unknown tag: %q", b.String())
	}
}

func TestWatchPathsUseConfiguredIdentifiers(t *testing.T) {
	conf := config.New()
	conf.Set("module/battery", "battery", "BAT1")
	conf.Set("module/battery", "adapter", "AC")
	m := New("battery", conf, events.NewHub())

	paths := m.WatchPaths()
	if len(paths) != 2 {
		t.Fatalf("WatchPaths() = %v, want 2 entries", paths)
	}
	if paths[0] != "/sys/class/power_supply/BAT1/capacity" {
		t.Errorf("capacity path = %s", paths[0])
	}
	if paths[1] != "/sys/class/power_supply/AC/online" {
		t.Errorf("status path = %s", paths[1])
	}
}

// drainFor collects events for the given duration.
func drainFor(ch chan events.Event, d time.Duration) []events.Event {
	var got []events.Event
	deadline := time.After(d)
	for {
		select {
		case ev := <-ch:
			got = append(got, ev)
		case <-deadline:
			return got
		}
	}
}

func TestAnimationBroadcastsOnlyWhileCharging(t *testing.T) {
	m, hub := newTestModule(t, nil, "0\n", "50\n")
	m.animationCharging = drawtypes.NewAnimation([]string{"a", "b"}, 10)
	m.retryBudget = 5
	m.cooldown = 10 * time.Millisecond

	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	if !m.OnFileEvent("") {
		t.Fatal("sample failed")
	}
	m.Start()
	defer m.Stop()
	go m.animationLoop()

	if got := drainFor(ch, 100*time.Millisecond); len(got) != 0 {
		t.Fatalf("got %d broadcasts while discharging, want 0", len(got))
	}

	writeAttr(t, m.statusPath, "1\n")
	if !m.OnFileEvent("") {
		t.Fatal("sample failed")
	}

	if got := drainFor(ch, 500*time.Millisecond); len(got) == 0 {
		t.Fatal("no broadcast while charging")
	}
}

func TestAnimationLoopExitsWhenNeverEnabled(t *testing.T) {
	m, _ := newTestModule(t, nil, "1\n", "50\n")
	m.animationCharging = drawtypes.NewAnimation([]string{"a"}, 10)
	m.retryBudget = 5
	m.cooldown = 10 * time.Millisecond

	done := make(chan struct{})
	go func() {
		m.animationLoop()
		close(done)
	}()

	// Budget of 5 with a 10ms cool-down: the loop must be gone well
	// within half a second.
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("animation loop did not exit with the module never enabled")
	}
}

func TestAnimationLoopExitsAfterDisable(t *testing.T) {
	m, _ := newTestModule(t, nil, "1\n", "50\n")
	m.animationCharging = drawtypes.NewAnimation([]string{"a"}, 10)
	m.retryBudget = 5
	m.cooldown = 10 * time.Millisecond

	if !m.OnFileEvent("") {
		t.Fatal("sample failed")
	}
	m.Start()

	done := make(chan struct{})
	go func() {
		m.animationLoop()
		close(done)
	}()

	// Let the loop take at least one tick so the retry budget collapses.
	time.Sleep(50 * time.Millisecond)
	m.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("animation loop did not exit after Stop")
	}
}

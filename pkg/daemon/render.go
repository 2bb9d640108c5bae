package daemon

import (
	"fmt"
	"strings"

	"github.com/beambar/beambar/pkg/builder"
	"github.com/beambar/beambar/pkg/events"
)

// startRender subscribes the render loop to the hub. The subscription
// happens here, synchronously, so broadcasts published right after
// startup (the initial sample in particular) are never dropped.
func (d *Daemon) startRender() {
	ch := d.hub.Subscribe()
	go d.renderLoop(ch)
}

// renderLoop re-pulls module output whenever a broadcast arrives and
// writes the bar line to stdout. It pulls synchronously; modules hand
// out read-only state, so a pull never blocks a sampler for long.
func (d *Daemon) renderLoop(ch chan events.Event) {
	defer d.hub.Unsubscribe(ch)

	for range ch {
		fmt.Println(d.redraw())
	}
}

// redraw rebuilds the whole bar line and remembers it for /output.
func (d *Daemon) redraw() string {
	sep := d.conf.GetString("bar", "separator", " | ")

	parts := make([]string, 0, len(d.mods))
	for _, m := range d.mods {
		if out := builder.BuildModule(m); out != "" {
			parts = append(parts, out)
		}
	}
	line := strings.Join(parts, sep)

	d.mu.Lock()
	d.lastOutput = line
	d.mu.Unlock()

	return line
}

// Output returns the last rendered bar line.
func (d *Daemon) Output() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastOutput
}

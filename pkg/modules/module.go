// Package modules defines what the daemon expects from a status module.
package modules

import (
	"sync/atomic"

	"github.com/beambar/beambar/pkg/builder"
)

// Module is one self-contained unit of the bar.
type Module interface {
	builder.TagSource

	// Start marks the module active and launches its background work.
	Start()
	// Stop clears the activity flag; background goroutines observe it at
	// their next wake and wind down cooperatively.
	Stop()
	Enabled() bool
}

// Watched is implemented by modules driven by file-change notifications.
type Watched interface {
	Module

	// WatchPaths lists the files whose changes should trigger OnFileEvent.
	WatchPaths() []string
	// OnFileEvent re-samples the module. path is an optional hint naming
	// the file that changed; it may be empty. It reports whether a new
	// snapshot was published.
	OnFileEvent(path string) bool
}

// Base carries the name and activity flag every module needs. Modules
// embed it by pointer; the atomic flag must not be copied.
type Base struct {
	name    string
	enabled atomic.Bool
}

func NewBase(name string) *Base {
	return &Base{name: name}
}

func (b *Base) Name() string { return b.name }

func (b *Base) Start() { b.enabled.Store(true) }

func (b *Base) Stop() { b.enabled.Store(false) }

func (b *Base) Enabled() bool { return b.enabled.Load() }

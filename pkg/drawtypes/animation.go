package drawtypes

import (
	"sync/atomic"
	"time"
)

// Animation cycles through a list of frames. The frame counter advances
// on every Output call, so each redraw shows the next frame. Output is
// called from the render path while the animation loop runs on its own
// goroutine, hence the atomic counter.
type Animation struct {
	frames    []string
	framerate int // milliseconds per frame
	cur       atomic.Uint64
}

func NewAnimation(frames []string, framerate int) *Animation {
	if framerate <= 0 {
		framerate = 1000
	}
	return &Animation{frames: frames, framerate: framerate}
}

// FrameDuration is how long each frame is shown.
func (a *Animation) FrameDuration() time.Duration {
	return time.Duration(a.framerate) * time.Millisecond
}

// Output returns the current frame and advances to the next one.
func (a *Animation) Output() string {
	if len(a.frames) == 0 {
		return ""
	}
	n := a.cur.Add(1) - 1
	return a.frames[n%uint64(len(a.frames))]
}

package notification

import "sync/atomic"

// Foreground tracks whether the application is visible to the user.
// The host flips it; readers take a point-in-time answer.
type Foreground struct {
	visible atomic.Bool
}

func NewForeground(visible bool) *Foreground {
	f := &Foreground{}
	f.visible.Store(visible)
	return f
}

func (f *Foreground) IsForeground() bool {
	return f.visible.Load()
}

func (f *Foreground) Set(visible bool) {
	f.visible.Store(visible)
}

package navshell

import (
	"strings"
	"time"
)

// DisplayMode is the sidebar presentation. The zero value is Expanded.
type DisplayMode int

const (
	Expanded DisplayMode = iota
	Collapsed
)

func (m DisplayMode) String() string {
	if m == Collapsed {
		return "collapsed"
	}
	return "expanded"
}

// Toggled returns the opposite mode.
func (m DisplayMode) Toggled() DisplayMode {
	if m == Collapsed {
		return Expanded
	}
	return Collapsed
}

// ParseDisplayMode reads a persisted mode. Anything other than "collapsed"
// is Expanded.
func ParseDisplayMode(raw string) DisplayMode {
	if strings.EqualFold(strings.TrimSpace(raw), Collapsed.String()) {
		return Collapsed
	}
	return Expanded
}

const (
	// TransitionDuration is the width animation length.
	TransitionDuration = 200 * time.Millisecond
	// TransitionEasing is the CSS timing function of the width animation.
	TransitionEasing = "ease-in-out"

	CollapsedWidth = 64
	ExpandedWidth  = 256
)

// Transition describes an animated width change of the rendering surface.
type Transition struct {
	Duration    time.Duration `json:"-"`
	DurationMS  int64         `json:"durationMs"`
	Easing      string        `json:"easing"`
	TargetWidth int           `json:"width"`
	WidthClass  string        `json:"widthClass"`
	Mode        string        `json:"mode"`
}

// TransitionTo returns the animation that settles on mode's width.
func TransitionTo(mode DisplayMode) Transition {
	width, class := ExpandedWidth, "w-64"
	if mode == Collapsed {
		width, class = CollapsedWidth, "w-16"
	}
	return Transition{
		Duration:    TransitionDuration,
		DurationMS:  TransitionDuration.Milliseconds(),
		Easing:      TransitionEasing,
		TargetWidth: width,
		WidthClass:  class,
		Mode:        mode.String(),
	}
}

// Surface receives width transitions. AnimateWidth must not block on the
// animation.
type Surface interface {
	AnimateWidth(Transition)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(Transition)

// AnimateWidth calls f.
func (f SurfaceFunc) AnimateWidth(t Transition) {
	f(t)
}

// Location supplies the path currently displayed.
type Location interface {
	CurrentPath() string
}

// Path is a fixed Location.
type Path string

// CurrentPath returns p.
func (p Path) CurrentPath() string {
	return string(p)
}

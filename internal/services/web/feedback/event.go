// Package feedback plays short audio cues for navigation interactions.
//
// A Set acquires one playable Handle per Event when a shell mounts and
// releases them when it unmounts. Playback is fire-and-forget: failures are
// logged and counted, never returned to the caller.
package feedback

import (
	"strings"
)

// Event names the interaction that produces a cue.
type Event string

const (
	// EventHover fires when the pointer enters a navigation entry or control.
	EventHover Event = "hover"
	// EventClick fires when a navigation entry or the toggle control is clicked.
	EventClick Event = "click"
)

// DefaultClickSource is the button sound played on click.
const DefaultClickSource = "https://www.soundjay.com/buttons/sounds/button-32.mp3"

// TriggerEvent is the client event name carrying playback cues.
const TriggerEvent = "taskflow:feedback"

// Events returns the supported events in acquisition order.
func Events() []Event {
	return []Event{EventHover, EventClick}
}

// String returns the wire name of the event.
func (e Event) String() string {
	return string(e)
}

// ParseEvent resolves raw to a supported event.
func ParseEvent(raw string) (Event, bool) {
	switch Event(strings.ToLower(strings.TrimSpace(raw))) {
	case EventHover:
		return EventHover, true
	case EventClick:
		return EventClick, true
	default:
		return "", false
	}
}

// Sources holds the audio reference for each event. An empty reference
// means the event is silent.
type Sources struct {
	Hover string
	Click string
}

// DefaultSources returns a silent hover and the default click sound.
func DefaultSources() Sources {
	return Sources{Click: DefaultClickSource}
}

// For returns the reference configured for e.
func (s Sources) For(e Event) string {
	switch e {
	case EventHover:
		return strings.TrimSpace(s.Hover)
	case EventClick:
		return strings.TrimSpace(s.Click)
	default:
		return ""
	}
}

// Without returns s with e silenced.
func (s Sources) Without(e Event) Sources {
	switch e {
	case EventHover:
		s.Hover = ""
	case EventClick:
		s.Click = ""
	}
	return s
}

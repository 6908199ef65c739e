package feedback

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Cue asks the browser to play Source for Event.
type Cue struct {
	Event   Event  `json:"event"`
	Source  string `json:"src"`
	Restart bool   `json:"restart"`
}

// Sink receives cues emitted by cue handles.
type Sink interface {
	Emit(ctx context.Context, cue Cue) error
}

// CueAcquirer acquires handles that emit a Cue to Sink on every play.
type CueAcquirer struct {
	Sink Sink
}

// Acquire validates source and returns a cue handle. An empty source yields
// a handle that plays nothing.
func (a CueAcquirer) Acquire(_ context.Context, event Event, source string) (Handle, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return NopHandle(), nil
	}
	if a.Sink == nil {
		return nil, errors.New("cue sink is required")
	}
	if err := ValidateSource(source); err != nil {
		return nil, err
	}
	return &cueHandle{event: event, source: source, sink: a.Sink}, nil
}

// ValidateSource accepts absolute http(s) URLs and absolute paths.
func ValidateSource(source string) error {
	parsed, err := url.Parse(source)
	if err != nil {
		return fmt.Errorf("parse audio source %q: %w", source, err)
	}
	switch {
	case parsed.Scheme == "" && parsed.Host == "" && strings.HasPrefix(parsed.Path, "/"):
		return nil
	case (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != "":
		return nil
	default:
		return fmt.Errorf("audio source %q must be an http(s) URL or absolute path", source)
	}
}

type cueHandle struct {
	event  Event
	source string
	sink   Sink

	mu      sync.Mutex
	rewound bool
}

func (h *cueHandle) Rewind() {
	h.mu.Lock()
	h.rewound = true
	h.mu.Unlock()
}

func (h *cueHandle) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	restart := h.rewound
	h.rewound = false
	h.mu.Unlock()
	return h.sink.Emit(ctx, Cue{Event: h.event, Source: h.source, Restart: restart})
}

func (h *cueHandle) Stop() {
	h.mu.Lock()
	h.rewound = false
	h.mu.Unlock()
}

// Recorder is a Sink that keeps emitted cues in order.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Emit appends cue unless ctx is already done.
func (r *Recorder) Emit(ctx context.Context, cue Cue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
	return nil
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

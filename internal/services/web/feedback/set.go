package feedback

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Outcome classifies how a trigger ended.
type Outcome string

const (
	OutcomePlayed        Outcome = "played"
	OutcomeFailed        Outcome = "failed"
	OutcomeCanceled      Outcome = "canceled"
	OutcomeDisabled      Outcome = "disabled"
	OutcomeAcquireFailed Outcome = "acquire_failed"
)

// Observer receives one call per acquisition failure and per trigger outcome.
type Observer interface {
	ObservePlayback(event Event, outcome Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(event Event, outcome Outcome)

// ObservePlayback calls f.
func (f ObserverFunc) ObservePlayback(event Event, outcome Outcome) {
	f(event, outcome)
}

// Option configures a Set.
type Option func(*Set)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Set) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver sets the outcome observer.
func WithObserver(observer Observer) Option {
	return func(s *Set) {
		s.observer = observer
	}
}

type playback struct {
	event  Event
	cancel context.CancelFunc
	done   chan struct{}
}

// Set owns the handles acquired for one mounted shell.
type Set struct {
	logger   *zap.Logger
	observer Observer

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	handles map[Event]Handle
	latest  map[Event]*playback
	running map[*playback]struct{}
	closed  bool

	closeOnce sync.Once
}

// Mount acquires a handle for every event. An event whose acquisition fails
// is disabled for the life of the Set; the failure is logged and observed.
// A nil acquirer disables every event.
func Mount(ctx context.Context, acquirer Acquirer, sources Sources, opts ...Option) *Set {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &Set{
		logger:  zap.NewNop(),
		handles: make(map[Event]Handle, 2),
		latest:  make(map[Event]*playback, 2),
		running: make(map[*playback]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	if acquirer == nil {
		return s
	}

	for _, event := range Events() {
		source := sources.For(event)
		handle, err := acquire(s.ctx, acquirer, event, source)
		if err != nil {
			failure := &PlaybackFailure{Event: event, Op: "acquire", Err: err}
			s.logger.Warn("audio acquire failed",
				zap.String("event", event.String()),
				zap.String("source", source),
				zap.Error(failure),
			)
			s.observe(event, OutcomeAcquireFailed)
			continue
		}
		if handle == nil {
			continue
		}
		s.handles[event] = handle
	}
	return s
}

func acquire(ctx context.Context, acquirer Acquirer, event Event, source string) (handle Handle, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			handle = nil
			err = fmt.Errorf("acquire panicked: %v", recovered)
		}
	}()
	return acquirer.Acquire(ctx, event, source)
}

// Enabled reports whether event has an acquired handle.
func (s *Set) Enabled(event Event) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.handles[event]
	return ok
}

// Trigger rewinds the event's handle and plays it in the background,
// cancelling any playback of the same event still in flight. It never blocks
// on playback and never fails.
func (s *Set) Trigger(event Event) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	handle, ok := s.handles[event]
	if !ok {
		s.mu.Unlock()
		s.observe(event, OutcomeDisabled)
		return
	}
	if previous := s.latest[event]; previous != nil {
		previous.cancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	p := &playback{event: event, cancel: cancel, done: make(chan struct{})}
	s.latest[event] = p
	s.running[p] = struct{}{}
	s.mu.Unlock()

	go s.play(ctx, p, handle)
}

func (s *Set) play(ctx context.Context, p *playback, handle Handle) {
	defer s.finish(p)

	err := playHandle(ctx, handle)
	switch {
	case err == nil:
		s.observe(p.event, OutcomePlayed)
	case ctx.Err() != nil:
		s.logger.Debug("audio play canceled", zap.String("event", p.event.String()))
		s.observe(p.event, OutcomeCanceled)
	default:
		failure := &PlaybackFailure{Event: p.event, Op: "play", Err: err}
		s.logger.Warn("audio play failed",
			zap.String("event", p.event.String()),
			zap.Error(failure),
		)
		s.observe(p.event, OutcomeFailed)
	}
}

func playHandle(ctx context.Context, handle Handle) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("play panicked: %v", recovered)
		}
	}()
	handle.Rewind()
	return handle.Play(ctx)
}

func (s *Set) finish(p *playback) {
	s.mu.Lock()
	delete(s.running, p)
	if s.latest[p.event] == p {
		delete(s.latest, p.event)
	}
	s.mu.Unlock()
	p.cancel()
	close(p.done)
}

func (s *Set) pending() []chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	done := make([]chan struct{}, 0, len(s.running))
	for p := range s.running {
		done = append(done, p.done)
	}
	return done
}

// Wait blocks until every playback started so far has finished or ctx ends.
func (s *Set) Wait(ctx context.Context) error {
	if s == nil {
		return nil
	}
	for _, done := range s.pending() {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Close cancels in-flight playback, stops every handle, waits for playback
// goroutines to return and rewinds every handle. Later calls do nothing.
func (s *Set) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		handles := make([]Handle, 0, len(s.handles))
		for _, event := range Events() {
			if handle, ok := s.handles[event]; ok {
				handles = append(handles, handle)
			}
		}
		s.mu.Unlock()

		s.cancel()
		for _, handle := range handles {
			s.release(handle.Stop)
		}
		for _, done := range s.pending() {
			<-done
		}
		for _, handle := range handles {
			s.release(handle.Rewind)
		}
	})
}

func (s *Set) release(step func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			s.logger.Warn("audio release failed", zap.Any("panic", recovered))
		}
	}()
	step()
}

func (s *Set) observe(event Event, outcome Outcome) {
	if s.observer != nil {
		s.observer.ObservePlayback(event, outcome)
	}
}

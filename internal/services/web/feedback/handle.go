package feedback

import "context"

// Handle is a playable audio resource. Implementations must be safe for
// concurrent use, since a retrigger may rewind while a cancelled play unwinds.
type Handle interface {
	// Rewind resets the playback position to the start.
	Rewind()
	// Play starts playback and returns once it is accepted or fails. It must
	// return promptly after ctx is cancelled.
	Play(ctx context.Context) error
	// Stop halts any playback in progress.
	Stop()
}

// Acquirer obtains a Handle for an audio reference.
type Acquirer interface {
	Acquire(ctx context.Context, event Event, source string) (Handle, error)
}

// AcquirerFunc adapts a function to Acquirer.
type AcquirerFunc func(ctx context.Context, event Event, source string) (Handle, error)

// Acquire calls f.
func (f AcquirerFunc) Acquire(ctx context.Context, event Event, source string) (Handle, error) {
	return f(ctx, event, source)
}

type nopHandle struct{}

func (nopHandle) Rewind()                    {}
func (nopHandle) Play(context.Context) error { return nil }
func (nopHandle) Stop()                      {}

// NopHandle returns a Handle that plays nothing.
func NopHandle() Handle {
	return nopHandle{}
}

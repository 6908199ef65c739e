package feedback

import (
	"errors"
	"fmt"
)

// ErrPlayback matches every PlaybackFailure through errors.Is.
var ErrPlayback = errors.New("feedback playback failed")

// PlaybackFailure records a failed acquire or play for one event.
type PlaybackFailure struct {
	Event Event
	Op    string
	Err   error
}

func (f *PlaybackFailure) Error() string {
	if f == nil {
		return ErrPlayback.Error()
	}
	return fmt.Sprintf("feedback %s %s: %v", f.Event, f.Op, f.Err)
}

func (f *PlaybackFailure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// Is reports ErrPlayback as a match.
func (f *PlaybackFailure) Is(target error) bool {
	return target == ErrPlayback
}

package corax

import "errors"

var (
	// ErrStreamingMultipleChoices is returned by Run before any transport
	// call when more than one candidate completion is requested together
	// with a streaming callback.
	ErrStreamingMultipleChoices = errors.New("cannot stream multiple completion choices, set n to 1")

	// ErrUnknownCallback is returned when a persisted configuration names a
	// streaming callback that is not registered in this process.
	ErrUnknownCallback = errors.New("streaming callback is not registered")

	// ErrUnnamedCallback is returned by ToConfig when the generator carries
	// a callback that was never registered under a name; closures cannot be
	// persisted.
	ErrUnnamedCallback = errors.New("streaming callback has no registered name")
)

package provider

import "github.com/corax-ai/corax/messages"

// Response is the tagged result of a transport call. It is a sealed union
// decided once at the call site: Completed for a synchronous completion,
// Streamed for a chunk stream. Consumers switch over the concrete type
// instead of duck-typing the response shape.
type Response interface {
	response()
}

// Completed is a fully materialized completion, possibly containing several
// candidate choices. Usage counters are per-request and shared by all
// choices.
type Completed struct {
	Model   string
	Usage   messages.Usage
	Choices []Choice

	_ struct{}
}

func (Completed) response() {}

// Streamed wraps the live chunk stream of a streaming call. The stream is
// single-pass; whoever receives a Streamed response owns draining and
// closing it.
type Streamed struct {
	Stream Stream

	_ struct{}
}

func (Streamed) response() {}

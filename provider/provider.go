package provider

import (
	"context"

	"github.com/corax-ai/corax/messages"
)

// Client is the transport collaborator. Implementations own the network
// conversation with a chat completion service; the generator facade never
// touches HTTP directly. A Client must honor Request.Stream by returning a
// Streamed response, and return a Completed response otherwise. Transport
// failures are returned as errors, never encoded into a Response.
type Client interface {
	ChatCompletion(ctx context.Context, req Request) (Response, error)
}

// Request carries everything a transport call needs: the model to invoke,
// the encoded conversation in order, the generation options bag forwarded
// opaquely, optional function definitions passed through for formatting, and
// whether to stream the reply.
type Request struct {
	Model     string
	Messages  []WireMessage
	Options   map[string]any
	Functions []FunctionDef
	Stream    bool

	_ struct{}
}

// FunctionDef is the pass-through description of a callable function the
// model may invoke. The module only formats these onto the wire; executing
// function calls is the caller's business.
type FunctionDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`

	_ struct{}
}

// FunctionCall is a completed function-call payload: the function name and
// the raw argument string exactly as the model produced it. Arguments are not
// parsed here, downstream consumers re-parse when they need structure.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`

	_ struct{}
}

// Choice is one candidate completion of a non-streamed response.
type Choice struct {
	Index        int64
	FinishReason messages.FinishReason
	Content      string
	FunctionCall *FunctionCall

	_ struct{}
}

// Chunk is one raw fragment of a streamed response as the transport saw it.
// Streamed responses carry zero or one choices per chunk.
type Chunk struct {
	Model   string
	Choices []ChunkChoice

	_ struct{}
}

// ChunkChoice is the per-choice slice of a streamed fragment. FinishReason
// is empty until the final chunk of the choice.
type ChunkChoice struct {
	Index        int64
	FinishReason messages.FinishReason
	Delta        Delta

	_ struct{}
}

// Delta holds the incremental payload of one chunk choice: a text fragment,
// or a piece of a function call being spelled out across chunks.
type Delta struct {
	Content      string
	FunctionCall *FunctionCallDelta

	_ struct{}
}

// FunctionCallDelta is a partial function call. Name typically arrives on the
// first fragment, Arguments accrete across the rest.
type FunctionCallDelta struct {
	Name      string
	Arguments string

	_ struct{}
}

// Stream is a lazily produced, single-pass sequence of chunks. It mirrors the
// shape of an SSE stream: Next advances and reports whether a chunk is
// available, Current returns it, Err reports the first failure, and Close
// releases the underlying connection. A Stream is not restartable.
type Stream interface {
	Next() bool
	Current() Chunk
	Err() error
	Close() error
}

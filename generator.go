package corax

import (
	"context"
	"fmt"

	"github.com/fogfish/opts"
	"github.com/rs/zerolog"

	"github.com/corax-ai/corax/messages"
	"github.com/corax-ai/corax/pkg/jsonx"
	"github.com/corax-ai/corax/pkg/stdx"
	"github.com/corax-ai/corax/pkg/uuidx"
	"github.com/corax-ai/corax/provider"
	"github.com/corax-ai/corax/provider/openai"
	"github.com/corax-ai/corax/tool"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Generator turns conversations into generated replies. It owns the
// configuration for one logical generator and orchestrates a single
// transport call per Run invocation.
//
// A Generator is immutable after construction; Run never mutates it, so one
// instance is safe for concurrent use from multiple goroutines.
type Generator struct {
	model        string
	defaults     map[string]any
	callback     StreamingCallback
	callbackRef  string
	apiKey       string
	baseURL      string
	organization string
	tools        []tool.Definition
	functions    []provider.FunctionDef
	client       provider.Client
	log          zerolog.Logger
}

// New creates a Generator. Without WithClient, a transport against the
// OpenAI API is constructed from the configured account settings.
func New(options ...Option) (*Generator, error) {
	g := Generator{
		model:    DefaultModel,
		defaults: map[string]any{},
		log:      zerolog.Nop(),
	}
	if err := opts.Apply(&g, options); err != nil {
		return nil, err
	}

	if g.model == "" {
		return nil, fmt.Errorf("generator requires a model")
	}

	functions, err := encodeTools(g.tools)
	if err != nil {
		return nil, err
	}
	g.functions = functions

	if g.client == nil {
		g.client = openai.Shared(g.apiKey, g.organization, g.baseURL)
	}
	return &g, nil
}

// Must is New for configurations known at compile time; it panics on error.
func Must(options ...Option) *Generator {
	return stdx.Must1(New(options...))
}

// NewGPT creates a Generator.
//
// Deprecated: NewGPT is the old constructor name and will be removed; use
// New instead.
func NewGPT(options ...Option) (*Generator, error) {
	return New(options...)
}

// Model returns the configured model identifier.
func (g *Generator) Model() string { return g.model }

// Run generates replies for the given conversation. Per-call overrides are
// shallow-merged over the configured defaults, an override key fully
// replaces the default value for that key. The call is synchronous and
// blocking end to end; cancellation is delegated to ctx and the transport.
//
// With a streaming callback configured the transport is asked to stream and
// exactly one finalized reply is returned; otherwise one reply per candidate
// choice comes back, in choice order. Transport failures propagate
// unchanged.
func (g *Generator) Run(ctx context.Context, msgs []messages.ChatMessage, overrides map[string]any) ([]messages.ChatMessage, error) {
	merged := jsonx.MergeShallow(g.defaults, overrides)
	streaming := g.callback != nil

	if streaming {
		if n := intOption(merged, "n"); n > 1 {
			return nil, fmt.Errorf("%w (got n=%d)", ErrStreamingMultipleChoices, n)
		}
	}

	log := g.log.With().
		Stringer("run_id", uuidx.New()).
		Str("model", g.model).
		Logger()

	resp, err := g.client.ChatCompletion(ctx, provider.Request{
		Model:     g.model,
		Messages:  provider.EncodeMessages(msgs),
		Options:   merged,
		Functions: g.functions,
		Stream:    streaming,
	})
	if err != nil {
		return nil, err
	}

	var replies []messages.ChatMessage
	switch r := resp.(type) {
	case provider.Streamed:
		reply, err := accumulate(r.Stream, g.callback)
		if err != nil {
			return nil, err
		}
		replies = []messages.ChatMessage{reply}
	case provider.Completed:
		replies, err = buildReplies(r)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unexpected transport response type %T", resp)
	}

	for _, reply := range replies {
		checkFinishReason(log, reply)
	}
	return replies, nil
}

func encodeTools(tools []tool.Definition) ([]provider.FunctionDef, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	defs := make([]provider.FunctionDef, len(tools))
	for i, td := range tools {
		name, schema := td.ToNameAndSchema()
		parameters, err := jsonx.ToDynamicJSON(schema)
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema for function %s: %w", name, err)
		}
		defs[i] = provider.FunctionDef{
			Name:        name,
			Description: td.Description,
			Parameters:  parameters,
		}
	}
	return defs, nil
}

// intOption reads a numeric option regardless of how it was produced, a Go
// literal or a decoded JSON number.
func intOption(options map[string]any, key string) int64 {
	switch v := options[key].(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

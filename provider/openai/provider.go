package openai

import (
	"context"
	"maps"
	"slices"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"

	"github.com/corax-ai/corax/messages"
	"github.com/corax-ai/corax/provider"
)

// Provider implements provider.Client on top of the OpenAI chat completions
// API. It is safe for concurrent use; the underlying client carries no
// per-call state.
type Provider struct {
	client *openai.Client
}

var _ provider.Client = (*Provider)(nil)

// New creates a Provider. Credentials default to the OPENAI_API_KEY and
// OPENAI_ORG_ID environment variables; pass request options to override.
func New(options ...option.RequestOption) *Provider {
	return &Provider{client: openai.NewClient(options...)}
}

// ForAccount creates a Provider with explicit account settings. Empty values
// fall back to the client's environment defaults.
func ForAccount(apiKey, organization, baseURL string) *Provider {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if organization != "" {
		opts = append(opts, option.WithOrganization(organization))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return New(opts...)
}

// ChatCompletion issues one chat completion call. With req.Stream set it
// opens the SSE stream and hands it back unconsumed; otherwise it blocks for
// the full completion. Transport failures come back as errors, never as a
// Response.
func (p *Provider) ChatCompletion(ctx context.Context, req provider.Request) (provider.Response, error) {
	params, extra := buildRequest(req)

	if req.Stream {
		events := p.client.Chat.Completions.NewStreaming(ctx, params, extra...)
		if err := events.Err(); err != nil {
			_ = events.Close()
			return nil, err
		}
		return provider.Streamed{Stream: &chunkStream{events: events}}, nil
	}

	chat, err := p.client.Chat.Completions.New(ctx, params, extra...)
	if err != nil {
		return nil, err
	}
	return toCompleted(chat), nil
}

func buildRequest(req provider.Request) (openai.ChatCompletionNewParams, []option.RequestOption) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, len(req.Messages))
	for i, rec := range req.Messages {
		m := openai.ChatCompletionMessageParam{
			Role:    openai.F(openai.ChatCompletionMessageParamRole(rec.Role)),
			Content: openai.F[any](rec.Content),
		}
		if rec.Name != "" {
			m.Name = openai.String(rec.Name)
		}
		msgs[i] = m
	}

	params := openai.ChatCompletionNewParams{
		Messages: openai.F(msgs),
		Model:    openai.F(req.Model),
	}

	// The options bag is forwarded verbatim; keys are applied in sorted
	// order so request bodies are deterministic.
	var extra []option.RequestOption
	if len(req.Functions) > 0 {
		extra = append(extra, option.WithJSONSet("functions", req.Functions))
	}
	for _, key := range slices.Sorted(maps.Keys(req.Options)) {
		extra = append(extra, option.WithJSONSet(key, req.Options[key]))
	}

	return params, extra
}

func toCompleted(chat *openai.ChatCompletion) provider.Completed {
	choices := make([]provider.Choice, len(chat.Choices))
	for i, c := range chat.Choices {
		choice := provider.Choice{
			Index:        c.Index,
			FinishReason: messages.FinishReason(c.FinishReason),
			Content:      c.Message.Content,
		}
		if fc := c.Message.FunctionCall; fc.Name != "" || fc.Arguments != "" {
			choice.FunctionCall = &provider.FunctionCall{
				Name:      fc.Name,
				Arguments: fc.Arguments,
			}
		}
		choices[i] = choice
	}

	return provider.Completed{
		Model: chat.Model,
		Usage: messages.Usage{
			PromptTokens:     chat.Usage.PromptTokens,
			CompletionTokens: chat.Usage.CompletionTokens,
			TotalTokens:      chat.Usage.TotalTokens,
		},
		Choices: choices,
	}
}

// chunkStream adapts the SDK's SSE stream to the provider.Stream boundary,
// translating each SDK chunk into the provider's wire-neutral shape.
type chunkStream struct {
	events  *ssestream.Stream[openai.ChatCompletionChunk]
	current provider.Chunk
}

func (s *chunkStream) Next() bool {
	if !s.events.Next() {
		return false
	}
	s.current = toChunk(s.events.Current())
	return true
}

func (s *chunkStream) Current() provider.Chunk { return s.current }

func (s *chunkStream) Err() error { return s.events.Err() }

func (s *chunkStream) Close() error { return s.events.Close() }

func toChunk(chunk openai.ChatCompletionChunk) provider.Chunk {
	choices := make([]provider.ChunkChoice, len(chunk.Choices))
	for i, c := range chunk.Choices {
		choice := provider.ChunkChoice{
			Index:        c.Index,
			FinishReason: messages.FinishReason(c.FinishReason),
			Delta: provider.Delta{
				Content: c.Delta.Content,
			},
		}
		if fc := c.Delta.FunctionCall; fc.Name != "" || fc.Arguments != "" {
			choice.Delta.FunctionCall = &provider.FunctionCallDelta{
				Name:      fc.Name,
				Arguments: fc.Arguments,
			}
		}
		choices[i] = choice
	}
	return provider.Chunk{Model: chunk.Model, Choices: choices}
}

package corax

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/corax-ai/corax/messages"
	"github.com/corax-ai/corax/provider"
)

// accumulate drains a chunk stream into one finalized reply.
//
// Fragments are buffered and delivered to the callback strictly in arrival
// order; the stream is not advanced until the callback returns, so a slow
// callback back-pressures consumption. Metadata on the finalized reply comes
// from the last chunk observed, the choice index is normalized to 0 (only
// single-choice streaming is supported) and usage stays empty because the
// stream protocol carries no token counts.
func accumulate(stream provider.Stream, callback StreamingCallback) (messages.ChatMessage, error) {
	defer stream.Close()

	var fragments []string
	var last messages.StreamingChunk
	var fnName string

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}

		delta := buildChunk(chunk, chunk.Choices[0])
		last = delta

		if fc := chunk.Choices[0].Delta.FunctionCall; fc != nil && fc.Name != "" && fnName == "" {
			fnName = fc.Name
		}

		if delta.Content == "" {
			continue
		}
		fragments = append(fragments, delta.Content)
		if callback != nil {
			if err := callback(delta); err != nil {
				return messages.ChatMessage{}, fmt.Errorf("streaming callback: %w", err)
			}
		}
	}
	if err := stream.Err(); err != nil {
		return messages.ChatMessage{}, err
	}

	content := strings.Join(fragments, "")
	if last.FinishReason == messages.FinishFunctionCall {
		// the buffered fragments are the argument string of the call;
		// represent it the same way the non-streaming path does
		encoded, err := encodeFunctionCall(fnName, content)
		if err != nil {
			return messages.ChatMessage{}, err
		}
		content = encoded
	}

	reply := messages.FromAssistant(content)
	reply.Meta = &messages.Meta{
		Model:        last.Model,
		Index:        0,
		FinishReason: last.FinishReason,
		Usage:        messages.Usage{},
	}
	return reply, nil
}

// buildChunk converts a raw transport chunk into the shape delivered to
// streaming callbacks. A function-call fragment contributes its argument
// piece as content.
func buildChunk(chunk provider.Chunk, choice provider.ChunkChoice) messages.StreamingChunk {
	content := choice.Delta.Content
	if content == "" && choice.Delta.FunctionCall != nil {
		content = choice.Delta.FunctionCall.Arguments
	}

	return messages.StreamingChunk{
		Content:      content,
		Model:        chunk.Model,
		Index:        choice.Index,
		FinishReason: choice.FinishReason,
		Received:     strfmt.DateTime(time.Now()),
	}
}

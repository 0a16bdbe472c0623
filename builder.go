package corax

import (
	json "github.com/goccy/go-json"

	"github.com/corax-ai/corax/messages"
	"github.com/corax-ai/corax/provider"
)

// buildReplies converts a synchronous completion into one finalized reply
// per candidate choice, in choice order. Every reply carries its own copy of
// the completion-level usage counters, usage is per-request, not per-choice.
func buildReplies(completed provider.Completed) ([]messages.ChatMessage, error) {
	replies := make([]messages.ChatMessage, len(completed.Choices))
	for i, choice := range completed.Choices {
		content := choice.Content
		if choice.FinishReason == messages.FinishFunctionCall && choice.FunctionCall != nil {
			encoded, err := encodeFunctionCall(choice.FunctionCall.Name, choice.FunctionCall.Arguments)
			if err != nil {
				return nil, err
			}
			content = encoded
		}

		reply := messages.FromAssistant(content)
		reply.Meta = &messages.Meta{
			Model:        completed.Model,
			Index:        choice.Index,
			FinishReason: choice.FinishReason,
			Usage:        completed.Usage,
		}
		replies[i] = reply
	}
	return replies, nil
}

// encodeFunctionCall renders a function call as the JSON object carried in
// the plain content channel: the call name and the raw argument string, not
// a parsed argument object.
func encodeFunctionCall(name, arguments string) (string, error) {
	b, err := json.Marshal(provider.FunctionCall{Name: name, Arguments: arguments})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

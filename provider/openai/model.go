package openai

import (
	"github.com/alphadose/haxmap"
	"github.com/openai/openai-go"
)

// Common model identifiers, re-exported as plain strings so callers don't
// need the SDK just to name a model.
const (
	ModelGPT4oMini = string(openai.ChatModelGPT4oMini)
	ModelGPT4o     = string(openai.ChatModelChatgpt4oLatest)
	ModelO1Mini    = string(openai.ChatModelO1Mini)
	ModelO1        = string(openai.ChatModelO1)
)

var providers = haxmap.New[string, *Provider]()

// Shared returns a memoized Provider for the given account settings. Repeat
// calls with the same settings share one underlying client and its
// connection pool.
func Shared(apiKey, organization, baseURL string) *Provider {
	key := apiKey + "\x00" + organization + "\x00" + baseURL
	p, _ := providers.GetOrCompute(key, func() *Provider {
		return ForAccount(apiKey, organization, baseURL)
	})
	return p
}

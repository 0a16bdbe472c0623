// Package openai implements the provider.Client transport boundary for
// OpenAI's chat completions endpoint.
//
// The package is a thin adapter: it renders wire records and the opaque
// generation options bag into an SDK request, and maps the SDK's completion
// and chunk types back into the provider package's neutral shapes. Streaming
// responses are handed back unconsumed, draining the stream belongs to the
// caller.
//
// Authentication, retries and timeouts are the SDK's department. Credentials
// are picked up from OPENAI_API_KEY / OPENAI_ORG_ID unless overridden with
// request options or ForAccount.
package openai

// Package messages defines the provider-agnostic conversation types shared by
// the generator facade and the transport layer: chat messages tagged with a
// role, the metadata attached to generated replies, token usage counters, and
// the incremental chunks delivered while a reply is being streamed.
//
// Design decisions:
//   - Plain content channel: a generated function call is carried as the JSON
//     encoding of its name and raw argument string inside the regular Content
//     field, so downstream consumers handle a single content shape
//   - Metadata only on generated replies: user-authored messages never carry
//     Meta, which keeps the input and output halves of a conversation
//     distinguishable after the fact
//   - Keyed initialization: structs embed a blank struct{} field to force
//     keyed literals, matching the rest of the module
package messages

import "github.com/go-openapi/strfmt"

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

// FinishReason is the remote service's stated cause for ending generation of
// one choice. The zero value means the service has not reported one yet, which
// is the normal state for every streamed chunk but the last.
type FinishReason string

const (
	FinishStop          FinishReason = "stop"
	FinishLength        FinishReason = "length"
	FinishContentFilter FinishReason = "content_filter"
	FinishFunctionCall  FinishReason = "function_call"
	FinishToolCalls     FinishReason = "tool_calls"
)

// Meta carries the response metadata the engine attaches to generated
// replies: which model produced the reply, which candidate choice it was,
// why generation stopped, and the token usage for the request.
type Meta struct {
	Model        string       `json:"model,omitempty"`
	Index        int64        `json:"index"`
	FinishReason FinishReason `json:"finish_reason,omitempty"`
	Usage        Usage        `json:"usage"`

	_ struct{}
}

// ChatMessage is one turn in a conversation. Role and Content are always
// present. Name is only meaningful for function messages and for user
// messages that identify their author; it is omitted from the wire encoding
// when empty. Meta is populated only on assistant messages produced by the
// engine, never on user-authored input.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`

	_ struct{}
}

// FromSystem builds a system message carrying the given instructions.
func FromSystem(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// FromUser builds a user message.
func FromUser(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// FromUserNamed builds a user message attributed to a named participant.
func FromUserNamed(name, content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content, Name: name}
}

// FromAssistant builds an assistant message. The engine uses this for
// finalized replies; callers use it to replay earlier assistant turns.
func FromAssistant(content string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content}
}

// FromFunction builds a function-result message for the named function.
func FromFunction(name, content string) ChatMessage {
	return ChatMessage{Role: RoleFunction, Content: content, Name: name}
}

// StreamingChunk is a single incremental fragment of a streamed reply. It is
// consumed immediately by the accumulator and the streaming callback and is
// never persisted. Content holds either a text fragment or a piece of a
// function-call argument string; FinishReason is empty until the final chunk.
type StreamingChunk struct {
	Content      string          `json:"content"`
	Model        string          `json:"model,omitempty"`
	Index        int64           `json:"index"`
	FinishReason FinishReason    `json:"finish_reason,omitempty"`
	Received     strfmt.DateTime `json:"received,omitempty"`

	_ struct{}
}

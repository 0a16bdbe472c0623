package provider

import "github.com/corax-ai/corax/messages"

// WireMessage is the minimal per-message record a chat completion endpoint
// expects. Name is omitted entirely when empty, the remote API rejects null
// name fields.
type WireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`

	_ struct{}
}

// EncodeMessages renders chat messages into wire records, preserving the
// conversational order. Only role, content and name survive; response
// metadata never goes back over the wire. Role values are not validated
// here, an invalid role surfaces as a transport error.
func EncodeMessages(msgs []messages.ChatMessage) []WireMessage {
	records := make([]WireMessage, len(msgs))
	for i, m := range msgs {
		records[i] = WireMessage{
			Role:    string(m.Role),
			Content: m.Content,
			Name:    m.Name,
		}
	}
	return records
}

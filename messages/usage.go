package messages

// Usage holds the token counters the remote service reports for one request.
// All choices of a single completion share the same counters, usage is
// per-request rather than per-choice. Streamed completions report a zero
// Usage because the stream protocol carries no token counts.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`

	_ struct{}
}

// IsZero reports whether no counters have been recorded.
func (u Usage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}

// Add accumulates the counters from another usage record.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

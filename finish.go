package corax

import (
	"github.com/rs/zerolog"

	"github.com/corax-ai/corax/messages"
)

// checkFinishReason reports degraded-completion conditions on a finalized
// reply. It is purely observational: it never mutates or rejects the reply,
// and any finish reason other than the two truncation causes stays silent.
func checkFinishReason(log zerolog.Logger, reply messages.ChatMessage) {
	if reply.Meta == nil {
		return
	}

	switch reply.Meta.FinishReason {
	case messages.FinishLength:
		log.Warn().
			Int64("index", reply.Meta.Index).
			Msg("completion truncated before reaching a natural stopping point, increase max_tokens to allow longer completions")
	case messages.FinishContentFilter:
		log.Warn().
			Int64("index", reply.Meta.Index).
			Msg("completion truncated by the content filter")
	}
}

// Package corax generates conversational replies from a remote chat
// completion service behind a uniform, provider-agnostic message shape.
//
// The Generator facade owns the configuration for one logical generator: the
// model, default generation options, account settings and an optional
// streaming callback. A call to Run encodes the conversation into minimal
// wire records, dispatches one transport call, and reassembles whatever comes
// back — a synchronous completion with any number of candidate choices, or a
// token stream folded into a single reply — into the same finalized
// ChatMessage representation with consistent metadata.
//
//	gen := corax.Must(corax.WithModel("gpt-4o-mini"))
//	replies, err := gen.Run(ctx, []messages.ChatMessage{
//		messages.FromUser("What's Natural Language Processing?"),
//	}, nil)
//
// Streaming is enabled by configuring a callback; each incremental chunk is
// delivered to it, in order, before the next one is consumed:
//
//	corax.RegisterCallback("stdout", func(c messages.StreamingChunk) error {
//		fmt.Print(c.Content)
//		return nil
//	})
//	gen := corax.Must(
//		corax.WithModel("gpt-4o-mini"),
//		corax.WithRegisteredCallback("stdout"),
//	)
//
// Generators serialize to a flat Config for persistence. The streaming
// callback travels as its registered name, never as code; deserialization
// looks the name up again in the process-wide registry.
//
// The facade performs no retries, no rate limiting and no timeouts of its
// own. Transport failures surface unchanged from Run, and cancellation is
// whatever the supplied context and transport provide.
package corax

// Package provider defines the boundary between the generator facade and the
// network transport that talks to a chat completion service.
//
// The boundary is deliberately small. A transport implements Client and gets
// a Request: the model name, the conversation encoded as ordered wire
// records, an opaque generation options bag, optional pass-through function
// definitions, and a stream flag. It answers with a Response, which is a
// sealed union:
//
//	Completed — a finished completion with usage counters and one or more
//	            candidate choices
//	Streamed  — a live, single-pass Stream of chunks
//
// The union is decided exactly once, by the transport, based on the stream
// flag. Everything downstream switches on the concrete type; there is no
// runtime shape-sniffing of response objects.
//
// This package carries no retry, backoff, authentication or rate limiting
// logic. Those either belong to the transport implementation (see the openai
// subpackage) or to the caller.
package provider

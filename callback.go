package corax

import (
	"github.com/corax-ai/corax/internal/registry"
	"github.com/corax-ai/corax/messages"
)

// StreamingCallback receives one incremental chunk of a streamed reply. It
// is invoked synchronously in chunk-arrival order; the stream is not
// consumed further until the callback returns. Returning an error aborts the
// stream and surfaces from Run.
type StreamingCallback func(chunk messages.StreamingChunk) error

// Callbacks that should survive serialization are registered under a stable
// name at process start. A persisted configuration stores only that name and
// deserialization resolves it here, never reconstructing code.
var callbacks = registry.New[StreamingCallback]()

// RegisterCallback makes a streaming callback resolvable under the given
// name. Registering the same name again replaces the previous callback.
func RegisterCallback(name string, cb StreamingCallback) {
	callbacks.Add(name, cb)
}

// LookupCallback resolves a registered callback by name.
func LookupCallback(name string) (StreamingCallback, bool) {
	return callbacks.Get(name)
}

// RemoveCallback drops a registered callback.
func RemoveCallback(name string) {
	callbacks.Del(name)
}

// CallbackNames lists the registered callback names in sorted order.
func CallbackNames() []string {
	return callbacks.Keys()
}

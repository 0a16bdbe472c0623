package corax

import (
	"fmt"
	"strings"

	"github.com/fogfish/opts"
	"github.com/rs/zerolog"

	"github.com/corax-ai/corax/pkg/jsonx"
	"github.com/corax-ai/corax/provider"
	"github.com/corax-ai/corax/tool"
)

// Option configures a Generator during construction.
type Option = opts.Option[Generator]

// WithModel sets the model identifier sent with every request.
var WithModel = opts.ForName[Generator, string]("model")

// WithAPIKey sets the API key for the default transport. Ignored when a
// custom client is supplied with WithClient.
var WithAPIKey = opts.ForName[Generator, string]("apiKey")

// WithBaseURL points the default transport at a different endpoint, e.g. a
// proxy or an API-compatible service.
var WithBaseURL = opts.ForName[Generator, string]("baseURL")

// WithOrganization sets the organization identifier for the default
// transport.
var WithOrganization = opts.ForName[Generator, string]("organization")

// WithClient replaces the transport. The supplied client must honor the
// provider.Client contract; account options are ignored when this is set.
var WithClient = opts.ForName[Generator, provider.Client]("client")

// WithLogger sets the logger used for diagnostic reports such as truncation
// warnings. The default discards everything.
var WithLogger = opts.ForName[Generator, zerolog.Logger]("log")

// WithDefaults sets the default generation options forwarded verbatim to the
// transport. The map is copied; later mutation of the argument does not leak
// into the generator.
func WithDefaults(defaults map[string]any) Option {
	return opts.Type[Generator](func(g *Generator) error {
		g.defaults = jsonx.MergeShallow(defaults, nil)
		return nil
	})
}

// WithTools declares function definitions passed through to the service for
// formatting. The module never executes them.
func WithTools(tools ...tool.Definition) Option {
	return opts.Type[Generator](func(g *Generator) error {
		g.tools = tools
		return nil
	})
}

// WithStreamingCallback enables streaming mode with the given callback. A
// generator configured this way cannot be persisted, the callback has no
// name to serialize; prefer WithRegisteredCallback when serialization
// matters.
func WithStreamingCallback(cb StreamingCallback) Option {
	return opts.Type[Generator](func(g *Generator) error {
		g.callback = cb
		g.callbackRef = ""
		return nil
	})
}

// WithRegisteredCallback enables streaming mode with a callback previously
// registered under name. The name becomes the symbolic reference stored by
// ToConfig.
func WithRegisteredCallback(name string) Option {
	return opts.Type[Generator](func(g *Generator) error {
		cb, ok := LookupCallback(name)
		if !ok {
			return fmt.Errorf("%w: %q (registered: %s)",
				ErrUnknownCallback, name, strings.Join(CallbackNames(), ", "))
		}
		g.callback = cb
		g.callbackRef = name
		return nil
	})
}

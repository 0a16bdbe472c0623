// Package tool describes callable functions a model may decide to invoke.
//
// Definitions here are pass-through only: they are formatted onto the wire so
// the remote service knows what it may call, and a resulting function call
// comes back to the caller as plain JSON content. Nothing in this module
// executes a function.
package tool

import (
	"fmt"

	"github.com/fogfish/opts"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/corax-ai/corax/pkg/stdx"
)

// Parameter declares one named argument of a function. Type is a JSON schema
// type name such as "string" or "integer".
type Parameter struct {
	Name        string
	Type        string
	Description string
	Required    bool

	_ struct{}
}

// Definition is the declarative description of a callable function.
type Definition struct {
	Name        string
	Description string
	Parameters  []Parameter

	_ struct{}
}

// ToNameAndSchema renders the definition as a function name plus a JSON
// schema for its arguments. Parameters appear in declaration order.
func (td Definition) ToNameAndSchema() (string, *jsonschema.Schema) {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: orderedmap.New[string, *jsonschema.Schema](),
	}

	var required []string
	for _, p := range td.Parameters {
		prop := &jsonschema.Schema{Type: p.Type}
		if p.Description != "" {
			prop.Description = p.Description
		}
		schema.Properties.Set(p.Name, prop)
		if p.Required {
			required = append(required, p.Name)
		}
	}
	if len(required) > 0 {
		schema.Required = required
	}

	return td.Name, schema
}

// Option configures a Definition during construction.
type Option = opts.Option[Definition]

// Description sets the human-readable purpose of the function.
var Description = opts.ForName[Definition, string]("Description")

// Parameters declares the function's arguments in order.
func Parameters(parameters ...Parameter) Option {
	return opts.Type[Definition](func(o *Definition) error {
		o.Parameters = parameters
		return nil
	})
}

// New creates a function definition with the given name.
func New(name string, options ...Option) (Definition, error) {
	if name == "" {
		return Definition{}, fmt.Errorf("function definition requires a name")
	}

	def := Definition{Name: name}
	if err := opts.Apply(&def, options); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Must is New for definitions known at compile time; it panics on error.
func Must(name string, options ...Option) Definition {
	return stdx.Must1(New(name, options...))
}

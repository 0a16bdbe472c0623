package corax

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/corax-ai/corax/pkg/jsonx"
)

var configJSON = []byte(`{"type":"generator"}`)

// Config is the persisted form of a Generator: a flat record of the model,
// the symbolic streaming-callback reference, account settings and the
// default generation options. It deliberately carries no code and no
// transport; both are reconstructed at load time.
type Config struct {
	Model             string
	StreamingCallback string
	APIBaseURL        string
	Organization      string
	GenerationKwargs  map[string]any

	_ struct{}
}

// MarshalJSON implements custom JSON marshaling for Config.
func (c Config) MarshalJSON() ([]byte, error) {
	result := configJSON

	var err error
	result, err = sjson.SetBytes(result, "model", c.Model)
	if err != nil {
		return nil, err
	}

	if c.StreamingCallback != "" {
		result, err = sjson.SetBytes(result, "streaming_callback", c.StreamingCallback)
		if err != nil {
			return nil, err
		}
	}

	if c.APIBaseURL != "" {
		result, err = sjson.SetBytes(result, "api_base_url", c.APIBaseURL)
		if err != nil {
			return nil, err
		}
	}

	if c.Organization != "" {
		result, err = sjson.SetBytes(result, "organization", c.Organization)
		if err != nil {
			return nil, err
		}
	}

	kwargs, err := json.Marshal(c.GenerationKwargs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation kwargs: %w", err)
	}
	result, err = sjson.SetRawBytes(result, "generation_kwargs", kwargs)
	return result, err
}

// UnmarshalJSON implements custom JSON unmarshaling for Config.
func (c *Config) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	msgType := gjson.GetBytes(data, "type")
	if !msgType.Exists() || msgType.String() != "generator" {
		return fmt.Errorf("missing or invalid type, expected 'generator'")
	}

	model := gjson.GetBytes(data, "model")
	if !model.Exists() {
		return fmt.Errorf("missing required field 'model'")
	}
	c.Model = model.String()

	c.StreamingCallback = gjson.GetBytes(data, "streaming_callback").String()
	c.APIBaseURL = gjson.GetBytes(data, "api_base_url").String()
	c.Organization = gjson.GetBytes(data, "organization").String()

	if kwargs := gjson.GetBytes(data, "generation_kwargs"); kwargs.Exists() {
		if err := json.Unmarshal([]byte(kwargs.Raw), &c.GenerationKwargs); err != nil {
			return fmt.Errorf("invalid generation_kwargs: %w", err)
		}
	} else {
		c.GenerationKwargs = nil
	}

	return nil
}

// ToConfig emits the persisted form of the generator. A generator whose
// callback was supplied as a bare closure cannot be persisted; only
// registered callbacks have a symbolic name to store.
func (g *Generator) ToConfig() (Config, error) {
	if g.callback != nil && g.callbackRef == "" {
		return Config{}, ErrUnnamedCallback
	}

	return Config{
		Model:             g.model,
		StreamingCallback: g.callbackRef,
		APIBaseURL:        g.baseURL,
		Organization:      g.organization,
		GenerationKwargs:  jsonx.MergeShallow(g.defaults, nil),
	}, nil
}

// FromConfig reconstructs a generator from its persisted form. A symbolic
// callback reference is resolved through the process-wide registry before
// any Generator is constructed; an unresolvable name fails with
// ErrUnknownCallback. Extra options apply on top of the persisted settings,
// which is where non-persisted concerns like WithClient or WithLogger are
// re-supplied.
func FromConfig(cfg Config, options ...Option) (*Generator, error) {
	base := []Option{
		WithDefaults(cfg.GenerationKwargs),
	}
	if cfg.Model != "" {
		base = append(base, WithModel(cfg.Model))
	}
	if cfg.APIBaseURL != "" {
		base = append(base, WithBaseURL(cfg.APIBaseURL))
	}
	if cfg.Organization != "" {
		base = append(base, WithOrganization(cfg.Organization))
	}
	if cfg.StreamingCallback != "" {
		if _, ok := LookupCallback(cfg.StreamingCallback); !ok {
			return nil, fmt.Errorf("%w: %q (registered: %v)",
				ErrUnknownCallback, cfg.StreamingCallback, CallbackNames())
		}
		base = append(base, WithRegisteredCallback(cfg.StreamingCallback))
	}

	return New(append(base, options...)...)
}

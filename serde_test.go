package corax

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/corax-ai/corax/messages"
)

func TestConfig_MarshalJSON(t *testing.T) {
	cfg := Config{
		Model:             "gpt-4o-mini",
		StreamingCallback: "console",
		Organization:      "org-123",
		GenerationKwargs:  map[string]any{"temperature": 0.2},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.Equal(t, "generator", gjson.GetBytes(data, "type").String())
	assert.Equal(t, "gpt-4o-mini", gjson.GetBytes(data, "model").String())
	assert.Equal(t, "console", gjson.GetBytes(data, "streaming_callback").String())
	assert.Equal(t, "org-123", gjson.GetBytes(data, "organization").String())
	assert.InDelta(t, 0.2, gjson.GetBytes(data, "generation_kwargs.temperature").Float(), 1e-9)
	// absent optionals are omitted, not null
	assert.False(t, gjson.GetBytes(data, "api_base_url").Exists())
}

func TestConfig_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"type": "generator",
		"model": "gpt-4o-mini",
		"api_base_url": "https://proxy.internal/v1",
		"generation_kwargs": {"max_tokens": 50}
	}`)

	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "https://proxy.internal/v1", cfg.APIBaseURL)
	assert.Empty(t, cfg.StreamingCallback)
	assert.EqualValues(t, 50, cfg.GenerationKwargs["max_tokens"])
}

func TestConfig_UnmarshalJSON_Invalid(t *testing.T) {
	var cfg Config
	assert.Error(t, json.Unmarshal([]byte(`not json`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"other","model":"m"}`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"generator"}`), &cfg))
}

func TestGenerator_ToConfig(t *testing.T) {
	RegisterCallback("serde-test", func(messages.StreamingChunk) error { return nil })
	defer RemoveCallback("serde-test")

	g := Must(
		WithModel("gpt-4o"),
		WithOrganization("org-123"),
		WithDefaults(map[string]any{"temperature": 0.2}),
		WithRegisteredCallback("serde-test"),
	)

	cfg, err := g.ToConfig()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "serde-test", cfg.StreamingCallback)
	assert.Equal(t, "org-123", cfg.Organization)
	assert.Equal(t, map[string]any{"temperature": 0.2}, cfg.GenerationKwargs)
}

func TestGenerator_ToConfig_UnnamedCallback(t *testing.T) {
	g := Must(WithStreamingCallback(func(messages.StreamingChunk) error { return nil }))

	_, err := g.ToConfig()
	require.ErrorIs(t, err, ErrUnnamedCallback)
}

func TestFromConfig_RoundTrip(t *testing.T) {
	var delivered []string
	RegisterCallback("roundtrip-test", func(c messages.StreamingChunk) error {
		delivered = append(delivered, c.Content)
		return nil
	})
	defer RemoveCallback("roundtrip-test")

	original := Must(
		WithModel("gpt-4o-mini"),
		WithDefaults(map[string]any{"max_tokens": 50}),
		WithRegisteredCallback("roundtrip-test"),
	)

	cfg, err := original.ToConfig()
	require.NoError(t, err)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	var restored Config
	require.NoError(t, json.Unmarshal(data, &restored))

	g, err := FromConfig(restored)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", g.Model())
	assert.EqualValues(t, 50, g.defaults["max_tokens"])

	// the resolved callback performs the same observable action
	require.NotNil(t, g.callback)
	require.NoError(t, g.callback(messages.StreamingChunk{Content: "sample"}))
	assert.Equal(t, []string{"sample"}, delivered)
}

func TestFromConfig_UnknownCallback(t *testing.T) {
	_, err := FromConfig(Config{Model: "gpt-4o-mini", StreamingCallback: "missing"})
	require.ErrorIs(t, err, ErrUnknownCallback)
}

func TestFromConfig_ExtraOptions(t *testing.T) {
	client := &fakeClient{}
	g, err := FromConfig(Config{Model: "gpt-4o-mini"}, WithClient(client))
	require.NoError(t, err)
	assert.Same(t, client, g.client.(*fakeClient))
}

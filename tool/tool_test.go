package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	def, err := New("get_weather",
		Description("Current weather for a city"),
		Parameters(
			Parameter{Name: "city", Type: "string", Required: true},
			Parameter{Name: "unit", Type: "string", Description: "celsius or fahrenheit"},
		),
	)
	require.NoError(t, err)
	assert.Equal(t, "get_weather", def.Name)
	assert.Equal(t, "Current weather for a city", def.Description)
	require.Len(t, def.Parameters, 2)
}

func TestNew_RequiresName(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a name")
}

func TestMust_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { Must("") })
}

func TestDefinition_ToNameAndSchema(t *testing.T) {
	def := Must("get_weather",
		Parameters(
			Parameter{Name: "city", Type: "string", Required: true},
			Parameter{Name: "unit", Type: "string", Description: "celsius or fahrenheit"},
		),
	)

	name, schema := def.ToNameAndSchema()
	assert.Equal(t, "get_weather", name)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"city"}, schema.Required)

	// declaration order is preserved
	var order []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	assert.Equal(t, []string{"city", "unit"}, order)

	unit, ok := schema.Properties.Get("unit")
	require.True(t, ok)
	assert.Equal(t, "celsius or fahrenheit", unit.Description)
}

func TestDefinition_ToNameAndSchema_NoParameters(t *testing.T) {
	_, schema := Must("ping").ToNameAndSchema()
	assert.Empty(t, schema.Required)
	assert.Equal(t, 0, schema.Properties.Len())
}

package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedMemoizesPerAccount(t *testing.T) {
	a := Shared("key-1", "", "")
	b := Shared("key-1", "", "")
	c := Shared("key-2", "", "")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestModelConstants(t *testing.T) {
	assert.Equal(t, "gpt-4o-mini", ModelGPT4oMini)
}

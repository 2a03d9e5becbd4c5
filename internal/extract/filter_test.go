package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFilter_AcceptsOrdinaryNames(t *testing.T) {
	f := NewNameFilter()

	assert.True(t, f.Accept("strlen"))
	assert.True(t, f.Accept("array_map"))
	assert.True(t, f.Accept("__construct"))
	assert.True(t, f.Accept("mb_substr"))
}

func TestNameFilter_RejectsReservedWords(t *testing.T) {
	f := NewNameFilter()

	reserved := []string{"if", "else", "while", "foreach", "return", "class",
		"function", "require_once", "yield", "match", "readonly", "enum"}
	for _, word := range reserved {
		assert.False(t, f.Accept(word), "expected %q to be rejected", word)
	}
}

func TestNameFilter_RejectsReservedWordsCaseInsensitively(t *testing.T) {
	f := NewNameFilter()

	assert.False(t, f.Accept("If"))
	assert.False(t, f.Accept("CLASS"))
	assert.False(t, f.Accept("Return"))
	assert.False(t, f.Accept("ForEach"))
}

func TestNameFilter_RejectsShortNames(t *testing.T) {
	f := NewNameFilter()

	assert.False(t, f.Accept(""))
	assert.False(t, f.Accept("a"))
	assert.False(t, f.Accept("_"))
	assert.True(t, f.Accept("ab"))
}

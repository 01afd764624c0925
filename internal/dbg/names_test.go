package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type key struct{ sector, loop int }

	a := Name(key{1, 0})
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name(key{1, 0}), "same key, same name")

	var nilPtr *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(nilPtr))
}

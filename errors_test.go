package morastr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsComparesByKind(t *testing.T) {
	a := newInvalidCharacter('x', 3)
	assert.True(t, errors.Is(a, &Error{Kind: ErrInvalidCharacter}))
	assert.False(t, errors.Is(a, &Error{Kind: ErrTooLong}))
}

func TestErrorMessageIncludesOffendingChar(t *testing.T) {
	err := newInvalidCharacter('1', 4)
	assert.Contains(t, err.Error(), "'1'")
	assert.Contains(t, err.Error(), "4")
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "MoraTooLong", ErrMoraTooLong.String())
	assert.Equal(t, "Unknown", ErrorKind(999).String())
}

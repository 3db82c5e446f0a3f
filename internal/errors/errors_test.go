package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiftErrorFormat(t *testing.T) {
	err := NewIOError("INPUT_OPEN", "failed to open word list", os.ErrNotExist).
		WithPath("6of12.txt")

	msg := err.Error()
	assert.Contains(t, msg, "[INPUT_OPEN]")
	assert.Contains(t, msg, "6of12.txt")
	assert.Contains(t, msg, "failed to open word list")
	assert.Contains(t, msg, os.ErrNotExist.Error())
}

func TestSiftErrorUnwrap(t *testing.T) {
	cause := os.ErrPermission
	err := NewIOError("OUTPUT_OPEN", "failed to create output", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestSiftErrorIs(t *testing.T) {
	a := NewValidationError("RULES_RANGE", "min length exceeds max length")
	b := NewValidationError("RULES_RANGE", "different message, same identity")
	c := NewValidationError("RULES_EMPTY", "other code")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestIsType(t *testing.T) {
	ioErr := NewIOError("INPUT_READ", "read failed", errors.New("disk gone"))
	wrapped := fmt.Errorf("filter run: %w", ioErr)

	assert.True(t, IsType(wrapped, ErrorTypeIO))
	assert.False(t, IsType(wrapped, ErrorTypeConfig))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeIO))
}

func TestWithContext(t *testing.T) {
	err := NewConfigError("CONFIG_PARSE", "bad config", nil).
		WithContext("key", "rules.min_length")

	assert.Equal(t, "rules.min_length", err.Context["key"])
}

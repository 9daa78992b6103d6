package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	wrapped := fmt.Errorf("%w: --institution is required", ErrMissingConfig)
	err := NewUserError("missing --institution", wrapped)

	assert.Equal(t, "missing --institution: missing configuration: --institution is required", err.Error())

	// Sentinels stay reachable through the wrapper.
	assert.ErrorIs(t, err, ErrMissingConfig)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "missing --institution", userErr.UserMessage)
	assert.Equal(t, wrapped, errors.Unwrap(err))
}

func TestUserErrorWithoutCause(t *testing.T) {
	err := NewUserError("nothing to import", nil)
	assert.Equal(t, "nothing to import", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

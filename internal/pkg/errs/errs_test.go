package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("vehicle", "v-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: vehicle v-1 (cause: connection reset)", err.Error())
	})

	t.Run("non string identifiers", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driver", 42)
		assert.Equal(t, "object not found: driver 42", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown"))

	assert.Equal(t, "value is invalid: status (cause: unknown)", err.Error())
	assert.Equal(t, "value is invalid: status", errs.NewValueIsInvalidError("status").Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("days", 45, 1, 30)

		assert.Equal(t, 45, err.Value)
		assert.Equal(t, "value is out of range: days is 45, min value is 1, max value is 30", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: name", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("order", 3)

	assert.Equal(t, 3, err.Expected)
	assert.Equal(t, "version is invalid: order, expected version 3", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", errs.NewObjectNotFoundError("order", "o-1"))

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "o-1", notFound.ID)
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
}

package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "2f68f3e1-9d0c-4ac5-b7a2-6c3e5a1d9f40")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "2f68f3e1-9d0c-4ac5-b7a2-6c3e5a1d9f40", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 2f68f3e1-9d0c-4ac5-b7a2-6c3e5a1d9f40", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("variationID", "v-17", cause)

		assert.Equal(t, "variationID", err.ParamName)
		assert.Equal(t, "v-17", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: variationID, ID is: v-17 (cause: connection refused)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("delivery status")

		assert.Equal(t, "delivery status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: delivery status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("\"almost there\" is not a valid delivery status")
		err := errs.NewValueIsInvalidErrorWithCause("delivery status", cause)

		assert.Equal(t, "delivery status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: delivery status (cause: \"almost there\" is not a valid delivery status)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 120, 1, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 120, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 120 is quantity, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("reservation rejected")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -3, 1, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -3, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -3 is quantity, min value is 1, max value is 100 (cause: reservation rejected)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("newlines in values are sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("description", "item arrived\ndamaged", 0, 10)

		assert.Contains(t, err.Error(), "item arrived damaged")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("courier id")

		assert.Equal(t, "courier id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: courier id", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("order has no lines")
		err := errs.NewValueIsRequiredErrorWithCause("lines", cause)

		assert.Equal(t, "lines", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: lines (cause: order has no lines)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		cause := errors.New("stale aggregate")
		err := errs.NewVersionIsInvalidError("order version", cause)

		assert.Equal(t, "order version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order version (cause: stale aggregate)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("order version")

		assert.Equal(t, "order version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: order version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t,
			errs.NewObjectNotFoundError("orderID", "o-1"), errs.ErrObjectNotFound)
		require.ErrorIs(t,
			errs.NewValueIsInvalidError("claim status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t,
			errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t,
			errs.NewValueIsRequiredError("address"), errs.ErrValueIsRequired)
		require.ErrorIs(t,
			errs.NewVersionIsInvalidError("order version", errors.New("stale")), errs.ErrVersionIsInvalid)
	})
}

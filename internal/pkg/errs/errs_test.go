package errs_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("guideID", "3f2a")

		assert.Equal(t, "guideID", err.ParamName)
		assert.Equal(t, "3f2a", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 3f2a", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("pickupID", "3f2a", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: pickupID, ID is: 3f2a (cause: record not found)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("non_string_id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("slotID", 7)
		assert.Equal(t, "object not found: %!s(int=7)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("serviceType")

		assert.Equal(t, "serviceType", err.ParamName)
		assert.Equal(t, "value is invalid: serviceType", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("unknown tier")
		err := errs.NewValueIsInvalidErrorWithCause("customerTier", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: customerTier (cause: unknown tier)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("reports_value_and_bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 95.0, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 95.0, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		assert.Equal(t, "value is invalid: 95 is latitude, min value is -90, max value is 90",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("slot bound")
		err := errs.NewValueIsOutOfRangeErrorWithCause("maxPickups", 0, 1, 50, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 0 is maxPickups, min value is 1, max value is 50 (cause: slot bound)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	// Values land in structured logs and HTTP bodies, so newlines are
	// flattened.
	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "first\nsecond", 0, 10)
		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without_cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("recipientName")

		assert.Equal(t, "value is required: recipientName", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("empty after trim")
		err := errs.NewValueIsRequiredErrorWithCause("reason", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: reason (cause: empty after trim)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	cause := errors.New("stale aggregate")
	err := errs.NewVersionIsInvalidError("version", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "version is invalid: version (cause: stale aggregate)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	bare := errs.NewVersionIsInvalidErrorWithCause("version")
	require.NoError(t, bare.Cause)
	assert.Equal(t, "version is invalid: version", bare.Error())
}

// The HTTP error mapping matches on these sentinels, so their identity and
// messages are part of the adapter contract.
func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}

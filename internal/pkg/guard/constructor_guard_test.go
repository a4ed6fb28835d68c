package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("order not constructed")
		require.NoError(t, g.Validate(customError))

		// Nil error falls back to the default sentinel.
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("Claim must be created via NewClaim")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage demonstrates how the guard enforces constructor
// usage on a value object.
func TestConstructorGuardUsage(t *testing.T) {
	type reservation struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	var errReservationNotConstructed = errors.New("reservation must be created via newReservation")

	newReservation := func(quantity int) (reservation, error) {
		if quantity <= 0 {
			return reservation{}, errors.New("quantity must be positive")
		}
		return reservation{
			quantity: quantity,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(r reservation) error {
		return r.guard.Validate(errReservationNotConstructed)
	}

	t.Run("constructed_reservation_validates", func(t *testing.T) {
		r, err := newReservation(3)

		require.NoError(t, err)
		require.NoError(t, validate(r))
		assert.Equal(t, 3, r.quantity)
	})

	t.Run("zero_value_reservation_fails_validation", func(t *testing.T) {
		var r reservation

		err := validate(r)

		require.Error(t, err)
		assert.Equal(t, errReservationNotConstructed, err)
	})

	t.Run("constructor_still_enforces_business_rules", func(t *testing.T) {
		_, err := newReservation(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be positive")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that a guard is safe to validate
// from many goroutines, matching how command objects travel between handlers.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

package guard_test

import (
	"errors"
	"testing"

	"shiptrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
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
		expectedError := errors.New("entity not constructed")

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

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a guarded value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type code struct {
		value string
		guard guard.ConstructorGuard
	}

	var errCodeNotConstructed = errors.New("code must be created via newCode")

	newCode := func(value string) (code, error) {
		if value == "" {
			return code{}, errors.New("value is required")
		}
		return code{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	validateCode := func(c code) error {
		return c.guard.Validate(errCodeNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		c, err := newCode("SM1234ABCDE")

		require.NoError(t, err)
		require.NoError(t, validateCode(c))
		assert.Equal(t, "SM1234ABCDE", c.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var c code

		err := validateCode(c)

		require.Error(t, err)
		assert.Equal(t, errCodeNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCode("")
		require.Error(t, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

package guard_test

import (
	"errors"
	"testing"

	"shiptrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errWaybillNotConstructed := errors.New("waybill must be created via newWaybill")

	type waybill struct {
		number string
		guard  guard.ConstructorGuard
	}

	newWaybill := func(number string) (waybill, error) {
		if number == "" {
			return waybill{}, errors.New("number is required")
		}
		return waybill{number: number, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		w, err := newWaybill("WB-1")

		require.NoError(t, err)
		require.NoError(t, w.guard.Validate(errWaybillNotConstructed))
		assert.Equal(t, "WB-1", w.number)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		w, err := newWaybill("")

		require.Error(t, err)
		assert.ErrorIs(t, w.guard.Validate(errWaybillNotConstructed), errWaybillNotConstructed)
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		w := waybill{number: "WB-2"}

		assert.Equal(t, errWaybillNotConstructed, w.guard.Validate(errWaybillNotConstructed))
	})
}

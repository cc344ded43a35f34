package kernel_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("trims and keeps components", func(t *testing.T) {
		a, err := kernel.NewAddress("  1 Main St ", "Springfield", "IL", "62701", "US")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "1 Main St", a.Street())
		assert.Equal(t, "Springfield", a.City())
		assert.Equal(t, "IL", a.State())
		assert.Equal(t, "62701", a.ZipCode())
		assert.Equal(t, "US", a.Country())
		assert.Equal(t, "1 Main St, Springfield, IL 62701, US", a.String())
	})

	t.Run("optional parts may be empty", func(t *testing.T) {
		a, err := kernel.NewAddress("Rua Augusta 10", "Lisbon", "", "", "")

		require.NoError(t, err)
		assert.Equal(t, "Rua Augusta 10, Lisbon", a.String())
	})

	t.Run("street and city are required", func(t *testing.T) {
		_, err := kernel.NewAddress(" ", "", "IL", "62701", "US")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var a kernel.Address
		require.ErrorIs(t, a.Validate(), kernel.ErrAddressIsNotConstructed)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, _ := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "US")
	b, _ := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "US")
	c, _ := kernel.NewAddress("2 Main St", "Springfield", "IL", "62701", "US")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestParseRole(t *testing.T) {
	tests := map[string]kernel.Role{
		"SELLER":       kernel.RoleSeller,
		"seller":       kernel.RoleSeller,
		"ROLE_BUYER":   kernel.RoleBuyer,
		"role_courier": kernel.RoleCourier,
		"ROLE_UNKNOWN": kernel.RoleUnknown,
		"ADMIN":        kernel.RoleUnknown,
		"":             kernel.RoleUnknown,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, kernel.ParseRole(input))
		})
	}
}

func TestRole_IsOneOf(t *testing.T) {
	assert.True(t, kernel.RoleCourier.IsOneOf(kernel.RoleCourier, kernel.RoleSeller))
	assert.False(t, kernel.RoleBuyer.IsOneOf(kernel.RoleCourier, kernel.RoleSeller))
	assert.False(t, kernel.RoleUnknown.IsOneOf(kernel.RoleUnknown))
	assert.Equal(t, "UNKNOWN", kernel.RoleUnknown.String())
}

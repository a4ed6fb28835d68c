package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected kernel.Role
	}{
		{"buyer", kernel.RoleBuyer},
		{"seller", kernel.RoleSeller},
		{"courier", kernel.RoleCourier},
		{"administrator", kernel.RoleAdministrator},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := kernel.RoleFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
			assert.Equal(t, tc.input, role.String())
		})
	}

	t.Run("unknown role name is rejected", func(t *testing.T) {
		_, err := kernel.RoleFromString("superuser")

		require.Error(t, err)
	})
}

func TestNewActor(t *testing.T) {
	t.Run("valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := kernel.NewActor(id, kernel.RoleBuyer)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleBuyer, actor.Role())
		assert.False(t, actor.IsAdministrator())
		require.NoError(t, actor.Validate())
	})

	t.Run("administrator is recognized", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdministrator)

		require.NoError(t, err)
		assert.True(t, actor.IsAdministrator())
	})

	t.Run("zero uuid is rejected", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, kernel.RoleBuyer)

		require.Error(t, err)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value actor fails validation", func(t *testing.T) {
		var actor kernel.Actor

		require.Error(t, actor.Validate())
	})
}

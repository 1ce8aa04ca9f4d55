package account_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("should parse all stored representations", func(t *testing.T) {
		cases := map[string]account.Role{
			"SystemAdmin":     account.RoleSystemAdmin,
			"EnterpriseAdmin": account.RoleEnterpriseAdmin,
			"Manager":         account.RoleManager,
			"Customer":        account.RoleCustomer,
			"DeliveryMan":     account.RoleDeliveryMan,
		}

		for name, want := range cases {
			got, err := account.ParseRole(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "systemadmin", "Admin"} {
			_, err := account.ParseRole(name)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestRole_IsStaff(t *testing.T) {
	assert.True(t, account.RoleSystemAdmin.IsStaff())
	assert.True(t, account.RoleEnterpriseAdmin.IsStaff())
	assert.True(t, account.RoleManager.IsStaff())
	assert.False(t, account.RoleCustomer.IsStaff())
	assert.False(t, account.RoleDeliveryMan.IsStaff())
	assert.False(t, account.RoleUnknown.IsStaff())
}

func TestRole_String_RoundTrip(t *testing.T) {
	roles := []account.Role{
		account.RoleSystemAdmin,
		account.RoleEnterpriseAdmin,
		account.RoleManager,
		account.RoleCustomer,
		account.RoleDeliveryMan,
	}

	for _, role := range roles {
		parsed, err := account.ParseRole(role.String())
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
}

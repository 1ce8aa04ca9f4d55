package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCreateUserCommand(t *testing.T) {
	cmd, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleCustomer,
		"Bob", "+1 555 123 4567", "bob@example.com", kernel.ID(42),
	)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "bob_builder", cmd.Username())
	require.Equal(t, "s3cret1", cmd.Secret())
	require.Equal(t, account.RoleCustomer, cmd.Role())
	require.Equal(t, kernel.ID(42), cmd.OrganizationID())
}

func TestNewCreateUserCommand_ShortSecret(t *testing.T) {
	_, err := commands.NewCreateUserCommand(
		"bob_builder", "12345", account.RoleCustomer, "Bob", "", "", kernel.ID(0),
	)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateUserCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewCreateUserCommand(
		"bob_builder", "s3cret1", account.RoleUnknown, "Bob", "", "", kernel.ID(0),
	)

	require.Error(t, err)
}

func TestCreateUserCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateUserCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateUserCommandIsNotConstructed)
}

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func allUsersActor(t *testing.T, role account.Role) *account.User {
	t.Helper()

	actor, err := account.RestoreUser(
		kernel.ID(1), "query_actor", "$2a$12$digest", role,
		"Query Actor", kernel.Phone{}, kernel.Email{}, kernel.ID(0),
	)
	require.NoError(t, err)
	return actor
}

// The staff gate runs before any storage access, so denial needs no database.
func TestGetAllUsersQueryHandler_Handle_NonStaffDenied(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := queries.NewGetAllUsersQueryHandler(nil, logger)

	for _, role := range []account.Role{account.RoleCustomer, account.RoleDeliveryMan} {
		_, err := handler.Handle(context.Background(), allUsersActor(t, role), queries.NewGetAllUsersQuery())
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	}
}

func TestGetAllUsersQueryHandler_Handle_NilActorDenied(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := queries.NewGetAllUsersQueryHandler(nil, logger)

	_, err := handler.Handle(context.Background(), nil, queries.NewGetAllUsersQuery())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user and assigns the store-generated ID
	// back onto the aggregate.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *account.User) error

	// UpdateCredential persists only the credential digest of a user.
	// Used by the legacy-credential migration during authentication.
	UpdateCredential(ctx context.Context, id kernel.ID, digest string) error

	// Get retrieves a user by its identifier.
	Get(ctx context.Context, id kernel.ID) (*account.User, error)

	// FindByUsername retrieves a user by case-insensitive username match.
	// The username must already be trimmed by the caller.
	FindByUsername(ctx context.Context, username string) (*account.User, error)

	// Delete removes a user by its identifier.
	Delete(ctx context.Context, id kernel.ID) error
}

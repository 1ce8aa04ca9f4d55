package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. The Entity Store
// performs each call atomically; a UnitOfWork groups the calls of one use
// case into a single transaction where the store allows it.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// EnterpriseRepository returns an EnterpriseRepository bound to the current transaction.
	EnterpriseRepository() EnterpriseRepository

	// OrganizationRepository returns an OrganizationRepository bound to the current transaction.
	OrganizationRepository() OrganizationRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// MenuItemRepository returns a MenuItemRepository bound to the current transaction.
	MenuItemRepository() MenuItemRepository

	// WorkRequestRepository returns a WorkRequestRepository bound to the current transaction.
	WorkRequestRepository() WorkRequestRepository
}

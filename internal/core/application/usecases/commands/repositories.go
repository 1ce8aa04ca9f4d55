// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, identity-based
// authorization, transaction management, and persistence.
//
// Every mutating handler takes the acting user explicitly. There is no global
// session state in the core: the transport layer resolves a request's identity
// and threads it through, which keeps the authorization policy a pure function
// of (identity, action, target).
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// EnterpriseRepoFactory provides access to the enterprise repository within a transaction.
	EnterpriseRepoFactory interface {
		EnterpriseRepository() ports.EnterpriseRepository
	}

	// OrganizationRepoFactory provides access to the organization repository within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// WorkRequestRepoFactory provides access to the work request repository within a transaction.
	WorkRequestRepoFactory interface {
		WorkRequestRepository() ports.WorkRequestRepository
	}

	// UserUoW manages transactions for user management operations.
	// The organization repository is included because authorization resolves
	// the target user's tenant through its organization.
	UserUoW interface {
		TxManager
		UserRepoFactory
		OrganizationRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// TenantUoW manages transactions for enterprise and organization operations.
	TenantUoW interface {
		TxManager
		EnterpriseRepoFactory
		OrganizationRepoFactory
	}

	// TenantUoWFactory creates new tenant unit of work instances.
	TenantUoWFactory interface {
		Create() TenantUoW
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// The menu item repository is included because placing an order snapshots
	// menu item names and prices into order lines.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuItemRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MenuUoW manages transactions for menu management operations.
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// WorkRequestUoW manages transactions for work request operations.
	// The organization repository is included because authorization resolves
	// the actor's tenant through its organization.
	WorkRequestUoW interface {
		TxManager
		WorkRequestRepoFactory
		OrganizationRepoFactory
	}

	// WorkRequestUoWFactory creates new work request unit of work instances.
	WorkRequestUoWFactory interface {
		Create() WorkRequestUoW
	}
)

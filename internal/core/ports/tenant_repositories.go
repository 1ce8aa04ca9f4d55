package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tenant"
)

// EnterpriseRepository defines the persistence contract for enterprises.
type EnterpriseRepository interface {
	// Add persists a new enterprise and assigns the store-generated ID
	// back onto the aggregate.
	Add(ctx context.Context, aggregate *tenant.Enterprise) error

	// Update persists changes to an existing enterprise.
	Update(ctx context.Context, aggregate *tenant.Enterprise) error

	// Get retrieves an enterprise by its identifier.
	Get(ctx context.Context, id kernel.ID) (*tenant.Enterprise, error)

	// Delete removes an enterprise by its identifier. Deletion does not
	// cascade to organizations or users.
	Delete(ctx context.Context, id kernel.ID) error
}

// OrganizationRepository defines the persistence contract for organizations.
// It also backs tenant-scope resolution: the authorization path follows a
// user's organization to its enterprise through Get.
type OrganizationRepository interface {
	// Add persists a new organization and assigns the store-generated ID
	// back onto the aggregate.
	Add(ctx context.Context, aggregate *tenant.Organization) error

	// Update persists changes to an existing organization.
	Update(ctx context.Context, aggregate *tenant.Organization) error

	// Get retrieves an organization by its identifier.
	Get(ctx context.Context, id kernel.ID) (*tenant.Organization, error)

	// Delete removes an organization by its identifier. Deletion does not
	// cascade to the organization's users.
	Delete(ctx context.Context, id kernel.ID) error
}

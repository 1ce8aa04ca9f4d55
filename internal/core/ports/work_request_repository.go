package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/workrequest"
)

// WorkRequestRepository defines the persistence contract for work requests.
type WorkRequestRepository interface {
	// Add persists a new work request and assigns the store-generated ID
	// back onto the aggregate.
	Add(ctx context.Context, aggregate *workrequest.WorkRequest) error

	// Update persists changes to an existing work request.
	Update(ctx context.Context, aggregate *workrequest.WorkRequest) error

	// Get retrieves a work request by its identifier.
	Get(ctx context.Context, id kernel.ID) (*workrequest.WorkRequest, error)
}

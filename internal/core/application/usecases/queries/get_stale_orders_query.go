package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrGetStaleOrdersQueryIsNotConstructed is returned when a
// GetStaleOrdersQuery was not created via NewGetStaleOrdersQuery.
var ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
)

// GetStaleOrdersQuery finds orders that have been sitting in the
// newly-placed state longer than the given threshold.
type GetStaleOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleOrdersQuery creates a query for placed orders older than the threshold.
func NewGetStaleOrdersQuery(olderThan time.Duration) (GetStaleOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStaleOrdersQuery{}, errs.NewValueIsRequiredError("olderThan")
	}

	return GetStaleOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (q GetStaleOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

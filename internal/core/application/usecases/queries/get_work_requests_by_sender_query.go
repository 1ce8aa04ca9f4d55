package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetWorkRequestsBySenderQueryIsNotConstructed = errors.New(
	"GetWorkRequestsBySenderQuery must be created via NewGetWorkRequestsBySenderQuery constructor",
)

// GetWorkRequestsBySenderQuery retrieves the requests one enterprise has
// sent, its outbox view.
type GetWorkRequestsBySenderQuery struct {
	senderEnterpriseID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetWorkRequestsBySenderQuery creates a query for one enterprise's outbox.
func NewGetWorkRequestsBySenderQuery(senderEnterpriseID kernel.ID) (GetWorkRequestsBySenderQuery, error) {
	if err := senderEnterpriseID.Validate(); err != nil {
		return GetWorkRequestsBySenderQuery{}, errs.NewValueIsRequiredErrorWithCause("senderEnterpriseId", err)
	}
	return GetWorkRequestsBySenderQuery{
		senderEnterpriseID: senderEnterpriseID,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkRequestsBySenderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkRequestsBySenderQueryIsNotConstructed)
}

// SenderEnterpriseID returns the enterprise whose outbox is requested.
func (q GetWorkRequestsBySenderQuery) SenderEnterpriseID() kernel.ID {
	return q.senderEnterpriseID
}

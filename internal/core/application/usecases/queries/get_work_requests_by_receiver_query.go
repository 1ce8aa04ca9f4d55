package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetWorkRequestsByReceiverQueryIsNotConstructed = errors.New(
	"GetWorkRequestsByReceiverQuery must be created via NewGetWorkRequestsByReceiverQuery constructor",
)

// GetWorkRequestsByReceiverQuery retrieves the requests addressed to one
// enterprise, its inbox view.
type GetWorkRequestsByReceiverQuery struct {
	receiverEnterpriseID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetWorkRequestsByReceiverQuery creates a query for one enterprise's inbox.
func NewGetWorkRequestsByReceiverQuery(receiverEnterpriseID kernel.ID) (GetWorkRequestsByReceiverQuery, error) {
	if err := receiverEnterpriseID.Validate(); err != nil {
		return GetWorkRequestsByReceiverQuery{}, errs.NewValueIsRequiredErrorWithCause("receiverEnterpriseId", err)
	}
	return GetWorkRequestsByReceiverQuery{
		receiverEnterpriseID: receiverEnterpriseID,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkRequestsByReceiverQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkRequestsByReceiverQueryIsNotConstructed)
}

// ReceiverEnterpriseID returns the enterprise whose inbox is requested.
func (q GetWorkRequestsByReceiverQuery) ReceiverEnterpriseID() kernel.ID {
	return q.receiverEnterpriseID
}

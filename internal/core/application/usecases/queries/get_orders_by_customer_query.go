package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves a customer's orders, the "my orders"
// view. No pagination: a customer's history is small.
type GetOrdersByCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for one customer's orders.
func NewGetOrdersByCustomerQuery(customerID kernel.ID) (GetOrdersByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	return GetOrdersByCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.ID { return q.customerID }

// Package workrequest models the cross-enterprise ask: one enterprise
// requesting something of another, e.g. a restaurant asking a delivery
// provider for capacity. Creation is scoped to the sending enterprise and
// status updates to the receiving one; that asymmetry is intentional.
package workrequest

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrWorkRequestIsNotConstructed is returned when a WorkRequest was not
// created through NewWorkRequest or RestoreWorkRequest.
var ErrWorkRequestIsNotConstructed = errors.New(
	"WorkRequest must be created via NewWorkRequest or RestoreWorkRequest",
)

// WorkRequest is the aggregate for an inter-enterprise request. The related
// order reference is optional: a request may concern a specific order or the
// relationship in general.
type WorkRequest struct {
	id                   kernel.ID
	kind                 string
	senderEnterpriseID   kernel.ID
	receiverEnterpriseID kernel.ID
	relatedOrderID       *kernel.ID
	status               Status
	message              string
	createdAt            time.Time

	isConstructed bool
}

// NewWorkRequest creates a not-yet-persisted WorkRequest in New status with
// the creation time defaulted to now.
func NewWorkRequest(
	kind string,
	senderEnterpriseID kernel.ID,
	receiverEnterpriseID kernel.ID,
	relatedOrderID *kernel.ID,
	message string,
) (*WorkRequest, error) {
	request := &WorkRequest{
		status:        StatusNew,
		message:       strings.TrimSpace(message),
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		request.setKind(kind),
		request.setSenderEnterpriseID(senderEnterpriseID),
		request.setReceiverEnterpriseID(receiverEnterpriseID),
		request.setRelatedOrderID(relatedOrderID),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// RestoreWorkRequest reconstructs a WorkRequest from persistence.
func RestoreWorkRequest(
	id kernel.ID,
	kind string,
	senderEnterpriseID kernel.ID,
	receiverEnterpriseID kernel.ID,
	relatedOrderID *kernel.ID,
	status Status,
	message string,
	createdAt time.Time,
) (*WorkRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	request, err := NewWorkRequest(kind, senderEnterpriseID, receiverEnterpriseID, relatedOrderID, message)
	if err != nil {
		return nil, err
	}

	request.id = id
	request.status = status
	request.createdAt = createdAt
	return request, nil
}

// Validate ensures the WorkRequest was built through a constructor.
func (w *WorkRequest) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkRequestIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after a successful create.
func (w *WorkRequest) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

// ID returns the request identifier, zero until persisted.
func (w *WorkRequest) ID() kernel.ID {
	return w.id
}

// Kind returns the request type, e.g. "DeliveryCapacity".
func (w *WorkRequest) Kind() string {
	return w.kind
}

// SenderEnterpriseID returns the requesting enterprise.
func (w *WorkRequest) SenderEnterpriseID() kernel.ID {
	return w.senderEnterpriseID
}

// ReceiverEnterpriseID returns the enterprise the request is addressed to.
func (w *WorkRequest) ReceiverEnterpriseID() kernel.ID {
	return w.receiverEnterpriseID
}

// RelatedOrderID returns the optional order this request concerns.
func (w *WorkRequest) RelatedOrderID() *kernel.ID {
	return w.relatedOrderID
}

// Status returns the current request status.
func (w *WorkRequest) Status() Status {
	return w.status
}

// Message returns the free-text message.
func (w *WorkRequest) Message() string {
	return w.message
}

// CreatedAt returns the creation timestamp.
func (w *WorkRequest) CreatedAt() time.Time {
	return w.createdAt
}

// Advance moves the request to the next status, enforcing the state graph.
func (w *WorkRequest) Advance(next Status) error {
	newStatus, err := w.status.AdvanceTo(next)
	if err != nil {
		return err
	}
	w.status = newStatus
	return nil
}

func (w *WorkRequest) setKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return errs.NewValueIsRequiredError("work request type")
	}
	w.kind = strings.TrimSpace(kind)
	return nil
}

func (w *WorkRequest) setSenderEnterpriseID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderEnterpriseId", err)
	}
	w.senderEnterpriseID = id
	return nil
}

func (w *WorkRequest) setReceiverEnterpriseID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverEnterpriseId", err)
	}
	w.receiverEnterpriseID = id
	return nil
}

func (w *WorkRequest) setRelatedOrderID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	w.relatedOrderID = id
	return nil
}

package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/workrequest"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCreateWorkRequestCommandIsNotConstructed is returned when a
// CreateWorkRequestCommand was not created via NewCreateWorkRequestCommand.
var ErrCreateWorkRequestCommandIsNotConstructed = errors.New(
	"CreateWorkRequestCommand must be created via NewCreateWorkRequestCommand constructor",
)

// CreateWorkRequestCommand carries the data for a new inter-enterprise
// request. A zero relatedOrderID means the request concerns no specific order.
type CreateWorkRequestCommand struct {
	kind                 string
	senderEnterpriseID   kernel.ID
	receiverEnterpriseID kernel.ID
	relatedOrderID       kernel.ID
	message              string

	guard guard.ConstructorGuard
}

// NewCreateWorkRequestCommand creates a command to send a work request.
func NewCreateWorkRequestCommand(
	kind string,
	senderEnterpriseID kernel.ID,
	receiverEnterpriseID kernel.ID,
	relatedOrderID kernel.ID,
	message string,
) (CreateWorkRequestCommand, error) {
	if kind == "" {
		return CreateWorkRequestCommand{}, errs.NewValueIsRequiredError("kind")
	}
	if err := senderEnterpriseID.Validate(); err != nil {
		return CreateWorkRequestCommand{}, errs.NewValueIsRequiredErrorWithCause("senderEnterpriseId", err)
	}
	if err := receiverEnterpriseID.Validate(); err != nil {
		return CreateWorkRequestCommand{}, errs.NewValueIsRequiredErrorWithCause("receiverEnterpriseId", err)
	}

	return CreateWorkRequestCommand{
		kind:                 kind,
		senderEnterpriseID:   senderEnterpriseID,
		receiverEnterpriseID: receiverEnterpriseID,
		relatedOrderID:       relatedOrderID,
		message:              message,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkRequestCommandIsNotConstructed)
}

// Kind returns the request type.
func (c CreateWorkRequestCommand) Kind() string { return c.kind }

// SenderEnterpriseID returns the requesting enterprise.
func (c CreateWorkRequestCommand) SenderEnterpriseID() kernel.ID { return c.senderEnterpriseID }

// ReceiverEnterpriseID returns the enterprise the request is addressed to.
func (c CreateWorkRequestCommand) ReceiverEnterpriseID() kernel.ID { return c.receiverEnterpriseID }

// RelatedOrderID returns the optional order reference, zero for none.
func (c CreateWorkRequestCommand) RelatedOrderID() kernel.ID { return c.relatedOrderID }

// Message returns the free-text message.
func (c CreateWorkRequestCommand) Message() string { return c.message }

// CreateWorkRequestCommandHandler sends work requests. The tenant gate
// targets the sending enterprise: only its admin (or a system administrator)
// may speak for it.
type CreateWorkRequestCommandHandler struct {
	uowFactory WorkRequestUoWFactory
	authorizer services.Authorizer
}

// NewCreateWorkRequestCommandHandler creates a handler for work request creation.
func NewCreateWorkRequestCommandHandler(
	uowFactory WorkRequestUoWFactory,
	authorizer services.Authorizer,
) CreateWorkRequestCommandHandler {
	return CreateWorkRequestCommandHandler{uowFactory: uowFactory, authorizer: authorizer}
}

// Handle processes the work request creation command and returns the stored
// request with its assigned identifier and New status.
func (h CreateWorkRequestCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd CreateWorkRequestCommand,
) (*workrequest.WorkRequest, error) {
	const action = "create work request"

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActor(actor, action); err != nil {
		return nil, err
	}

	var relatedOrderID *kernel.ID
	if !cmd.RelatedOrderID().IsZero() {
		id := cmd.RelatedOrderID()
		relatedOrderID = &id
	}

	request, err := workrequest.NewWorkRequest(
		cmd.Kind(),
		cmd.SenderEnterpriseID(),
		cmd.ReceiverEnterpriseID(),
		relatedOrderID,
		cmd.Message(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actorScope := resolveTenantScope(ctx, uow.OrganizationRepository(), actor.OrganizationID())
	if err = h.authorizer.Authorize(actor.Role(), actorScope, cmd.SenderEnterpriseID(), action); err != nil {
		return nil, err
	}

	if err = uow.WorkRequestRepository().Add(ctx, request); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}

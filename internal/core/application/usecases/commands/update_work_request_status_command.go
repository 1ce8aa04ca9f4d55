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

// ErrUpdateWorkRequestStatusCommandIsNotConstructed is returned when an
// UpdateWorkRequestStatusCommand was not created via
// NewUpdateWorkRequestStatusCommand.
var ErrUpdateWorkRequestStatusCommandIsNotConstructed = errors.New(
	"UpdateWorkRequestStatusCommand must be created via NewUpdateWorkRequestStatusCommand constructor",
)

// UpdateWorkRequestStatusCommand advances a work request's status.
type UpdateWorkRequestStatusCommand struct {
	workRequestID kernel.ID
	newStatus     workrequest.Status

	guard guard.ConstructorGuard
}

// NewUpdateWorkRequestStatusCommand creates a command to advance a work request.
func NewUpdateWorkRequestStatusCommand(
	workRequestID kernel.ID,
	newStatus workrequest.Status,
) (UpdateWorkRequestStatusCommand, error) {
	if err := workRequestID.Validate(); err != nil {
		return UpdateWorkRequestStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("workRequestId", err)
	}
	if err := newStatus.Validate(); err != nil {
		return UpdateWorkRequestStatusCommand{}, err
	}

	return UpdateWorkRequestStatusCommand{
		workRequestID: workRequestID,
		newStatus:     newStatus,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkRequestStatusCommandIsNotConstructed)
}

// WorkRequestID returns the identifier of the request to advance.
func (c UpdateWorkRequestStatusCommand) WorkRequestID() kernel.ID { return c.workRequestID }

// NewStatus returns the requested next status.
func (c UpdateWorkRequestStatusCommand) NewStatus() workrequest.Status { return c.newStatus }

// UpdateWorkRequestStatusCommandHandler advances work requests. The tenant
// gate targets the receiving enterprise, deliberately asymmetric from
// creation: the recipient decides what happens to a request, not the sender.
type UpdateWorkRequestStatusCommandHandler struct {
	uowFactory WorkRequestUoWFactory
	authorizer services.Authorizer
}

// NewUpdateWorkRequestStatusCommandHandler creates a handler for work request
// status updates.
func NewUpdateWorkRequestStatusCommandHandler(
	uowFactory WorkRequestUoWFactory,
	authorizer services.Authorizer,
) UpdateWorkRequestStatusCommandHandler {
	return UpdateWorkRequestStatusCommandHandler{uowFactory: uowFactory, authorizer: authorizer}
}

// Handle processes the status update command. Updating a request that no
// longer exists is a silent no-op.
func (h UpdateWorkRequestStatusCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd UpdateWorkRequestStatusCommand,
) error {
	const action = "update work request status"

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireActor(actor, action); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requests := uow.WorkRequestRepository()

	request, err := requests.Get(ctx, cmd.WorkRequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	actorScope := resolveTenantScope(ctx, uow.OrganizationRepository(), actor.OrganizationID())
	if err = h.authorizer.Authorize(actor.Role(), actorScope, request.ReceiverEnterpriseID(), action); err != nil {
		return err
	}

	if err = request.Advance(cmd.NewStatus()); err != nil {
		return err
	}

	if err = requests.Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

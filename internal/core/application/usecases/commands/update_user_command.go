package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrUpdateUserCommandIsNotConstructed is returned when an UpdateUserCommand
// was not created via NewUpdateUserCommand.
var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand carries a full replacement of a user's mutable fields.
// An empty secret keeps the stored credential; a non-empty one is re-hashed.
type UpdateUserCommand struct {
	userID         kernel.ID
	username       string
	secret         string
	role           account.Role
	name           string
	phone          string
	email          string
	organizationID kernel.ID

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to update an existing user.
func NewUpdateUserCommand(
	userID kernel.ID,
	username string,
	secret string,
	role account.Role,
	name string,
	phone string,
	email string,
	organizationID kernel.ID,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		username:       username,
		name:           name,
		phone:          phone,
		email:          email,
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return UpdateUserCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	cmd.userID = userID

	if err := role.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}
	cmd.role = role

	if secret != "" && len(secret) < minSecretLength {
		return UpdateUserCommand{}, errs.NewValueIsOutOfRangeError(
			"secret length", len(secret), minSecretLength, "unbounded")
	}
	cmd.secret = secret

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to update.
func (c UpdateUserCommand) UserID() kernel.ID { return c.userID }

// Username returns the new username.
func (c UpdateUserCommand) Username() string { return c.username }

// Secret returns the new raw secret, empty to keep the stored credential.
func (c UpdateUserCommand) Secret() string { return c.secret }

// Role returns the new role.
func (c UpdateUserCommand) Role() account.Role { return c.role }

// Name returns the new display name.
func (c UpdateUserCommand) Name() string { return c.name }

// Phone returns the new raw phone input.
func (c UpdateUserCommand) Phone() string { return c.phone }

// Email returns the new raw e-mail input.
func (c UpdateUserCommand) Email() string { return c.email }

// OrganizationID returns the new organization reference.
func (c UpdateUserCommand) OrganizationID() kernel.ID { return c.organizationID }

// UpdateUserCommandHandler updates users. The tenant gate resolves from the
// incoming record's organization: moving a user into an enterprise requires
// authority over that enterprise.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
	authorizer services.Authorizer
}

// NewUpdateUserCommandHandler creates a handler for user updates.
func NewUpdateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.CredentialHasher,
	authorizer services.Authorizer,
) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		authorizer: authorizer,
	}
}

// Handle processes the user update command. Updating a vanished user yields
// an explicit not-found error.
func (h UpdateUserCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd UpdateUserCommand,
) error {
	const action = "update user"

	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireActor(actor, action); err != nil {
		return err
	}

	phone, err := kernel.NewPhone(cmd.Phone())
	if err != nil {
		return err
	}
	email, err := kernel.NewEmail(cmd.Email())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	organizations := uow.OrganizationRepository()

	existing, err := users.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	actorScope := resolveTenantScope(ctx, organizations, actor.OrganizationID())
	targetScope := resolveTenantScope(ctx, organizations, cmd.OrganizationID())
	if err = h.authorizer.Authorize(actor.Role(), actorScope, targetScope, action); err != nil {
		return err
	}

	credential := existing.Credential()
	if cmd.Secret() != "" {
		credential, err = h.hasher.Hash(cmd.Secret())
		if err != nil {
			return err
		}
	}

	updated, err := account.RestoreUser(
		cmd.UserID(), cmd.Username(), credential, cmd.Role(), cmd.Name(), phone, email, cmd.OrganizationID(),
	)
	if err != nil {
		return err
	}

	if err = users.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

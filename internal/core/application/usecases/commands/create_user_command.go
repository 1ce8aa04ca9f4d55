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

const minSecretLength = 6

var (
	// ErrCreateUserCommandIsNotConstructed is returned when a CreateUserCommand
	// was not created via NewCreateUserCommand.
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)

	// ErrUsernameAlreadyExists is returned when the requested username is
	// already taken (case-insensitively).
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// CreateUserCommand carries the data for provisioning a new user.
// The secret is the raw (unhashed) value; its length policy applies to the
// raw characters, before any digest is computed.
type CreateUserCommand struct {
	username       string
	secret         string
	role           account.Role
	name           string
	phone          string
	email          string
	organizationID kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to provision a user.
// Validates the secret length and the role; the remaining fields are
// validated when the aggregate is constructed.
func NewCreateUserCommand(
	username string,
	secret string,
	role account.Role,
	name string,
	phone string,
	email string,
	organizationID kernel.ID,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		username:       username,
		name:           name,
		phone:          phone,
		email:          email,
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSecret(secret),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Username returns the requested username.
func (c CreateUserCommand) Username() string { return c.username }

// Secret returns the raw secret.
func (c CreateUserCommand) Secret() string { return c.secret }

// Role returns the requested role.
func (c CreateUserCommand) Role() account.Role { return c.role }

// Name returns the display name.
func (c CreateUserCommand) Name() string { return c.name }

// Phone returns the raw phone input.
func (c CreateUserCommand) Phone() string { return c.phone }

// Email returns the raw e-mail input.
func (c CreateUserCommand) Email() string { return c.email }

// OrganizationID returns the organization reference; zero means no tenant.
func (c CreateUserCommand) OrganizationID() kernel.ID { return c.organizationID }

func (c *CreateUserCommand) setSecret(secret string) error {
	if len(secret) < minSecretLength {
		return errs.NewValueIsOutOfRangeError("secret length", len(secret), minSecretLength, "unbounded")
	}
	c.secret = secret
	return nil
}

func (c *CreateUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

// CreateUserCommandHandler provisions users. Authorization is scoped by the
// target user's organization's enterprise: SystemAdmin may create anyone,
// an EnterpriseAdmin only users inside their own enterprise.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.CredentialHasher
	authorizer services.Authorizer
}

// NewCreateUserCommandHandler creates a handler for user provisioning.
func NewCreateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.CredentialHasher,
	authorizer services.Authorizer,
) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		authorizer: authorizer,
	}
}

// Handle processes the user creation command and returns the persisted user
// with its store-assigned identifier.
func (h CreateUserCommandHandler) Handle(
	ctx context.Context,
	actor *account.User,
	cmd CreateUserCommand,
) (*account.User, error) {
	const action = "create user"

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireActor(actor, action); err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(cmd.Phone())
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(cmd.Email())
	if err != nil {
		return nil, err
	}

	digest, err := h.hasher.Hash(cmd.Secret())
	if err != nil {
		return nil, err
	}

	user, err := account.NewUser(
		cmd.Username(), digest, cmd.Role(), cmd.Name(), phone, email, cmd.OrganizationID(),
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

	users := uow.UserRepository()
	organizations := uow.OrganizationRepository()

	actorScope := resolveTenantScope(ctx, organizations, actor.OrganizationID())
	targetScope := resolveTenantScope(ctx, organizations, user.OrganizationID())
	if err = h.authorizer.Authorize(actor.Role(), actorScope, targetScope, action); err != nil {
		return nil, err
	}

	// The uniqueness check runs after authorization so that denied actors
	// cannot learn which usernames are taken.
	existing, err := users.FindByUsername(ctx, user.Username())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	if err = users.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

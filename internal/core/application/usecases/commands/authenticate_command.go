package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrAuthenticateCommandIsNotConstructed is returned when an
// AuthenticateCommand was not created via NewAuthenticateCommand.
var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand carries raw login input. Both fields may arrive with
// incidental surrounding whitespace; normalization happens in the handler so
// that every malformed input funnels into the same failure outcome.
type AuthenticateCommand struct {
	username string
	secret   string

	guard guard.ConstructorGuard
}

// NewAuthenticateCommand creates a command from raw, untrimmed input.
func NewAuthenticateCommand(username, secret string) AuthenticateCommand {
	return AuthenticateCommand{
		username: username,
		secret:   secret,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

// Username returns the raw username input.
func (c AuthenticateCommand) Username() string {
	return c.username
}

// Secret returns the raw secret input.
func (c AuthenticateCommand) Secret() string {
	return c.secret
}

// AuthenticateCommandHandler validates credentials against the user store,
// transparently migrating legacy plaintext credentials to hashed form.
//
// Every failure path returns errs.ErrNotAuthenticated: unknown username,
// wrong secret, and empty input are indistinguishable to the caller, which
// prevents username enumeration.
type AuthenticateCommandHandler struct {
	users  ports.UserRepository
	hasher ports.CredentialHasher
	logger *slog.Logger
}

// NewAuthenticateCommandHandler creates a handler for login attempts.
func NewAuthenticateCommandHandler(
	users ports.UserRepository,
	hasher ports.CredentialHasher,
	logger *slog.Logger,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		users:  users,
		hasher: hasher,
		logger: logger.With("component", "authenticate_handler"),
	}
}

// Handle processes a login attempt and returns the authenticated user.
//
// If the stored credential is a legacy plaintext secret and it matches, a
// fresh digest is written back before returning. That write is best-effort:
// a persistence hiccup must not penalize the user, so the login still
// succeeds and the failure goes to the log instead. Two concurrent legacy
// logins may both migrate; each writes an independently salted, equally
// valid digest, so the race is benign and deliberately left unlocked.
func (h AuthenticateCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateCommand,
) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(cmd.Username())
	secret := strings.TrimSpace(cmd.Secret())
	if username == "" || secret == "" {
		return nil, errs.ErrNotAuthenticated
	}

	user, err := h.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.ErrorContext(ctx, "user lookup failed during authentication", "error", err)
		}
		return nil, errs.ErrNotAuthenticated
	}

	stored := user.Credential()
	if stored == "" {
		return nil, errs.ErrNotAuthenticated
	}

	if h.hasher.IsHashed(stored) {
		if !h.hasher.Verify(secret, stored) {
			return nil, errs.ErrNotAuthenticated
		}
		return user, nil
	}

	// Legacy plaintext credential.
	if secret != stored {
		return nil, errs.ErrNotAuthenticated
	}

	digest, err := h.hasher.Hash(secret)
	if err != nil {
		h.logger.ErrorContext(ctx, "credential migration hash failed", "error", err)
		return user, nil
	}

	if err := user.ReplaceCredential(digest); err != nil {
		h.logger.ErrorContext(ctx, "credential migration failed", "error", err)
		return user, nil
	}

	if err := h.users.UpdateCredential(ctx, user.ID(), digest); err != nil {
		h.logger.ErrorContext(ctx, "credential migration write failed",
			"userId", user.ID(), "error", err)
	}

	return user, nil
}

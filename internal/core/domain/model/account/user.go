package account

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// User is the aggregate for a person who can sign in. It carries the
// credential digest, the closed role, and the optional organization reference
// that anchors the user to a tenant.
//
// Invariants:
//   - Username is trimmed, 3 to 50 characters, letters/digits/underscores only.
//     Uniqueness (case-insensitive) is enforced at the use-case level against
//     the Entity Store.
//   - Role is one of the defined values.
//   - OrganizationID may be zero: customers and platform admins have no tenant.
//
// The credential digest is opaque to this aggregate; hashing and legacy
// plaintext detection live behind the CredentialHasher port.
type User struct {
	id             kernel.ID
	username       string
	credential     string
	role           Role
	name           string
	phone          kernel.Phone
	email          kernel.Email
	organizationID kernel.ID

	isConstructed bool
}

// NewUser creates a not-yet-persisted User. The ID stays zero until the
// Entity Store assigns one via AssignID.
func NewUser(
	username string,
	credential string,
	role Role,
	name string,
	phone kernel.Phone,
	email kernel.Email,
	organizationID kernel.ID,
) (*User, error) {
	user := &User{
		phone:          phone,
		email:          email,
		organizationID: organizationID,
		isConstructed:  true,
	}

	user.credential = credential

	if err := errors.Join(
		user.setUsername(username),
		user.setRole(role),
		user.setName(name),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(
	id kernel.ID,
	username string,
	credential string,
	role Role,
	name string,
	phone kernel.Phone,
	email kernel.Email,
	organizationID kernel.ID,
) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	user, err := NewUser(username, credential, role, name, phone, email, organizationID)
	if err != nil {
		return nil, err
	}

	user.id = id
	return user, nil
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after a successful create.
func (u *User) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// ID returns the user's identifier, zero until persisted.
func (u *User) ID() kernel.ID {
	return u.id
}

// Username returns the trimmed username.
func (u *User) Username() string {
	return u.username
}

// Credential returns the stored credential digest (or legacy plaintext
// secret). An empty credential means the user cannot authenticate.
func (u *User) Credential() string {
	return u.credential
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the phone value, possibly unset.
func (u *User) Phone() kernel.Phone {
	return u.phone
}

// Email returns the e-mail value, possibly unset.
func (u *User) Email() kernel.Email {
	return u.email
}

// OrganizationID returns the organization reference; zero means no tenant.
func (u *User) OrganizationID() kernel.ID {
	return u.organizationID
}

// ReplaceCredential swaps the stored credential for a new digest. Used by the
// authentication path when migrating a legacy plaintext secret to hashed form.
func (u *User) ReplaceCredential(digest string) error {
	if digest == "" {
		return errs.NewValueIsRequiredError("credential")
	}
	u.credential = digest
	return nil
}

func (u *User) setUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(trimmed) < 3 || len(trimmed) > 50 {
		return errs.NewValueIsOutOfRangeError("username length", len(trimmed), 3, 50)
	}
	if !usernamePattern.MatchString(trimmed) {
		return errs.NewValueIsInvalidErrorWithCause("username",
			fmt.Errorf("%q may only contain letters, numbers, and underscores", trimmed))
	}
	u.username = trimmed
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = strings.TrimSpace(name)
	return nil
}

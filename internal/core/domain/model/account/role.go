package account

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role is the closed set of user roles in the system. The original data kept
// roles as open strings; here unknown role values are rejected outright so the
// authorization policy can match exhaustively instead of denying by
// fallthrough.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleSystemAdmin administers the whole platform across all tenants.
	RoleSystemAdmin

	// RoleEnterpriseAdmin administers a single enterprise and its organizations.
	RoleEnterpriseAdmin

	// RoleManager runs a restaurant organization: accepts orders, edits menus.
	RoleManager

	// RoleCustomer places orders. Customers carry no tenant.
	RoleCustomer

	// RoleDeliveryMan picks up and delivers orders.
	RoleDeliveryMan
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "Unknown",
		RoleSystemAdmin:     "SystemAdmin",
		RoleEnterpriseAdmin: "EnterpriseAdmin",
		RoleManager:         "Manager",
		RoleCustomer:        "Customer",
		RoleDeliveryMan:     "DeliveryMan",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleSystemAdmin:     "SystemAdmin",
		RoleEnterpriseAdmin: "EnterpriseAdmin",
		RoleManager:         "Manager",
		RoleCustomer:        "Customer",
		RoleDeliveryMan:     "DeliveryMan",
	}
}

// ParseRole converts a stored role string to a Role.
// Unknown strings are an error, never a silent deny.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a known role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsStaff reports whether the role belongs to enterprise or platform staff,
// i.e. anyone allowed to maintain menus.
func (r Role) IsStaff() bool {
	return r == RoleSystemAdmin || r == RoleEnterpriseAdmin || r == RoleManager
}

// String returns the role's stored representation, or "Unknown".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

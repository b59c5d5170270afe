package domain

type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// Identity is the authenticated caller as asserted by the API gateway.
// The core never authenticates; it trusts the gateway's headers.
type Identity struct {
	UserID int
	Email  string
	Role   Role
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == 0
}

type Operation string

const (
	OpManageCatalog Operation = "catalog:manage"
	OpBookSeats     Operation = "booking:create"
	OpViewBookings  Operation = "booking:view"
	OpViewCatalog   Operation = "catalog:view"
)

// CanPerform is the single authorization decision point. Catalog writes
// need an OWNER or MANAGER role; booking operations need any
// authenticated identity; reads are open.
func CanPerform(identity Identity, op Operation) bool {
	switch op {
	case OpManageCatalog:
		return identity.Role == RoleOwner || identity.Role == RoleManager
	case OpBookSeats, OpViewBookings:
		return !identity.IsAnonymous()
	case OpViewCatalog:
		return true
	}

	return false
}

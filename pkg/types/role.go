package types

// Role is the account role carried in the auth token.
type Role string

const (
	RoleMember  Role = "Member"
	RoleTrainer Role = "Trainer"
	RoleAdmin   Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleTrainer, RoleAdmin:
		return true
	}
	return false
}

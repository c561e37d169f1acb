package user

type Role string

const (
	RoleGuest    Role = "guest"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string { return string(r) }

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleOperator, RoleAdmin:
		return true
	}
	return false
}

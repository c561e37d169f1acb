//go:build unit || e2e

package builder

import (
	"roomstay/internal/domain/user"
	reqdto "roomstay/internal/handler/dto/request"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     user.Role
	Name     string
	ImageURL string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "guest@example.com",
		Password: "password123",
		Role:     user.RoleGuest,
		Name:     "Test Guest",
		ImageURL: "",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithInactive() *UserBuilder {
	u.IsActive = false
	return u
}

// Build methods
func (u *UserBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role.String(),
		Name:     u.Name,
		ImageURL: u.ImageURL,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

package request

import (
	"hotel-booking-api/internal/domain/user"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToDomain() (user.Name, user.Credentials, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return user.Name{}, user.Credentials{}, err
	}

	credentials, err := user.NewCredentials(r.Email, r.Password)
	if err != nil {
		return user.Name{}, user.Credentials{}, err
	}

	return name, credentials, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

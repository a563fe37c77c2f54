package dto

import "github.com/RoyceAzure/lab/storefront/internal/model"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

type RegisterResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

type UsersResponse struct {
	Users []UserDTO `json:"users"`
}

func FromUser(u *model.User) UserDTO {
	return UserDTO{
		ID:       u.UserID,
		Username: u.Username,
		Role:     u.Role,
	}
}

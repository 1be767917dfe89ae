package auth

import (
	"time"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDetail struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type TokenResponse struct {
	Token string     `json:"token"`
	User  UserDetail `json:"user"`
}

func ComposeUserDetail(user kdb.User) UserDetail {
	return UserDetail{
		Id:        user.Id,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

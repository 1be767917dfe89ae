package db

import (
	"context"
	"time"
)

type User struct {
	Id           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type UserInterface interface {
	// Register creates a new user.
	//
	// Returns ErrAlreadyExists when the email is taken.
	Register(ctx context.Context, email string, passwordHash string) (User, error)

	// GetByEmail finds a user by email. Returns ErrMissing when not found.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Get finds a user by id. Returns ErrMissing when not found.
	Get(ctx context.Context, userId string) (User, error)
}

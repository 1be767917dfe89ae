package mocks

import (
	"context"
	"errors"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type UserInterface struct {
	Impl struct {
		Register   func(context.Context, string, string) (kdb.User, error)
		GetByEmail func(context.Context, string) (kdb.User, error)
		Get        func(context.Context, string) (kdb.User, error)
	}
	Calls struct {
		Register CallLog[struct {
			Email        string
			PasswordHash string
		}]
		GetByEmail CallLog[struct{ Email string }]
		Get        CallLog[struct{ UserId string }]
	}
}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

var _ kdb.UserInterface = &UserInterface{}

func (m *UserInterface) Register(ctx context.Context, email string, passwordHash string) (kdb.User, error) {
	m.Calls.Register = append(m.Calls.Register, struct {
		Email        string
		PasswordHash string
	}{Email: email, PasswordHash: passwordHash})
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, email, passwordHash)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) GetByEmail(ctx context.Context, email string) (kdb.User, error) {
	m.Calls.GetByEmail = append(m.Calls.GetByEmail, struct{ Email string }{Email: email})
	if m.Impl.GetByEmail != nil {
		return m.Impl.GetByEmail(ctx, email)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) Get(ctx context.Context, userId string) (kdb.User, error) {
	m.Calls.Get = append(m.Calls.Get, struct{ UserId string }{UserId: userId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, userId)
	}
	panic(errors.New("it should not be called"))
}

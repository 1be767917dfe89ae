package db

import (
	"context"
	"time"
)

type Project struct {
	Id          string
	UserId      string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectSpec struct {
	Name        string
	Description string
}

// ProjectInterface is ownership-scoped: every query takes the requesting
// user's id, and records of other users are reported as ErrMissing.
type ProjectInterface interface {
	Create(ctx context.Context, userId string, spec ProjectSpec) (Project, error)

	Get(ctx context.Context, userId string, projectId string) (Project, error)

	List(ctx context.Context, userId string) ([]Project, error)

	Update(ctx context.Context, userId string, projectId string, spec ProjectSpec) (Project, error)

	Delete(ctx context.Context, userId string, projectId string) error
}

package db

import (
	"context"
	"errors"
)

// Database bundles the per-entity query interfaces backed by one store.
type Database interface {
	Users() UserInterface
	Projects() ProjectInterface
	Datasets() DatasetInterface
	Annotations() AnnotationInterface
	Trainings() TrainingInterface

	Ping(ctx context.Context) error
	Close() error
}

// ErrMissing means the requested record does not exist,
// or exists but is not owned by the requesting user.
var ErrMissing = errors.New("missing")

// ErrAlreadyExists means an unique constraint is violated on insert.
var ErrAlreadyExists = errors.New("already exists")

// ErrOverflow means an int64 counter would wrap on accumulate.
var ErrOverflow = errors.New("counter overflow")

package db

import (
	"context"
	"time"
)

type Dataset struct {
	Id             string
	ProjectId      string
	Name           string
	Description    string
	ImageCount     int
	TotalSizeBytes int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DatasetSpec struct {
	Name        string
	Description string
}

// DatasetInterface is ownership-scoped via the parent project.
type DatasetInterface interface {
	Create(ctx context.Context, userId string, projectId string, spec DatasetSpec) (Dataset, error)

	Get(ctx context.Context, userId string, datasetId string) (Dataset, error)

	List(ctx context.Context, userId string, projectId string) ([]Dataset, error)

	Update(ctx context.Context, userId string, datasetId string, spec DatasetSpec) (Dataset, error)

	Delete(ctx context.Context, userId string, datasetId string) error

	// AddImages accumulates image count and byte size of uploaded files.
	//
	// Returns ErrOverflow when the byte counter would wrap.
	AddImages(ctx context.Context, userId string, datasetId string, count int, sizeBytes int64) (Dataset, error)
}

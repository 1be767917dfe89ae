package storage

import (
	"context"
	"errors"
	"io"
)

// ErrBadFilename means a file name escapes its dataset directory.
var ErrBadFilename = errors.New("bad filename")

// Storage holds uploaded image files, one namespace per dataset.
type Storage interface {
	// ListFiles returns the file names stored for a dataset,
	// in lexicographic order. A dataset without uploads lists empty.
	ListFiles(ctx context.Context, datasetId string) ([]string, error)

	// ReadFile reads one stored file.
	ReadFile(ctx context.Context, datasetId string, name string) ([]byte, error)

	// SaveFile stores content under name, returning the written size.
	SaveFile(ctx context.Context, datasetId string, name string, content io.Reader) (int64, error)

	// RemoveDataset deletes the dataset's whole namespace.
	// Missing namespace is not an error.
	RemoveDataset(ctx context.Context, datasetId string) error
}

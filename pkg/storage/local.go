package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

type localStorage struct {
	root string
}

// NewLocal returns a Storage rooted at dir, one subdirectory per dataset.
func NewLocal(dir string) Storage {
	return &localStorage{root: dir}
}

// safeName rejects names that would resolve outside the dataset directory.
func safeName(name string) (string, error) {
	base := filepath.Base(name)
	if base != name || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", ErrBadFilename
	}
	return base, nil
}

func (s *localStorage) datasetDir(datasetId string) (string, error) {
	d, err := safeName(datasetId)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, d), nil
}

func (s *localStorage) ListFiles(ctx context.Context, datasetId string) ([]string, error) {
	dir, err := s.datasetDir(datasetId)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := slices.Map(
		slices.KeepIf(entries, func(e os.DirEntry) bool { return !e.IsDir() }),
		func(e os.DirEntry) string { return e.Name() },
	)
	sort.Strings(names)
	return names, nil
}

func (s *localStorage) ReadFile(ctx context.Context, datasetId string, name string) ([]byte, error) {
	dir, err := s.datasetDir(datasetId)
	if err != nil {
		return nil, err
	}
	base, err := safeName(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(dir, base))
}

func (s *localStorage) SaveFile(ctx context.Context, datasetId string, name string, content io.Reader) (int64, error) {
	dir, err := s.datasetDir(datasetId)
	if err != nil {
		return 0, err
	}
	base, err := safeName(name)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	fp, err := os.OpenFile(
		filepath.Join(dir, base), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644,
	)
	if err != nil {
		return 0, err
	}
	defer fp.Close()

	return io.Copy(fp, content)
}

func (s *localStorage) RemoveDataset(ctx context.Context, datasetId string) error {
	dir, err := s.datasetDir(datasetId)
	if err != nil {
		return err
	}
	return os.RemoveAll(dir)
}

package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAnnotations means the dataset has no annotations at all.
// Raised before any file I/O.
var ErrNoAnnotations = errors.New("dataset has no annotations")

// ErrNoReadableImages means every matched image failed to read from
// storage. Individual read failures are tolerated; only a total loss
// aborts the export.
var ErrNoReadableImages = errors.New("no image file could be read")

// NoMatchedImagesError means reconciliation associated zero images with
// any annotation.
//
// AvailableFiles carries at most the first 10 filenames present in
// storage, and UnresolvedImageIds the full set of imageIds that matched
// nothing, so the mismatch can be debugged from the error alone.
type NoMatchedImagesError struct {
	AvailableFiles     []string
	UnresolvedImageIds []string
}

var _ error = &NoMatchedImagesError{}

func (e *NoMatchedImagesError) Error() string {
	return fmt.Sprintf(
		"no annotation references any stored image; unresolved imageIds = [%s], stored files (first %d) = [%s]",
		strings.Join(e.UnresolvedImageIds, ", "),
		len(e.AvailableFiles),
		strings.Join(e.AvailableFiles, ", "),
	)
}

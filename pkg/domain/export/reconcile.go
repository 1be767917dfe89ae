package export

import (
	"log"
	"sort"
	"strings"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

// imageAnnotationMap assigns annotations to resolved image filenames,
// remembering the order in which files first received an annotation.
type imageAnnotationMap struct {
	byFile map[string][]kdb.Annotation
	order  []string
}

func newImageAnnotationMap() *imageAnnotationMap {
	return &imageAnnotationMap{byFile: map[string][]kdb.Annotation{}}
}

func (m *imageAnnotationMap) assign(file string, annos ...kdb.Annotation) {
	if _, ok := m.byFile[file]; !ok {
		m.order = append(m.order, file)
	}
	m.byFile[file] = append(m.byFile[file], annos...)
}

// Files returns filenames with at least one annotation,
// in order of first assignment.
func (m *imageAnnotationMap) Files() []string {
	return m.order
}

func (m *imageAnnotationMap) Annotations(file string) []kdb.Annotation {
	return m.byFile[file]
}

func (m *imageAnnotationMap) Len() int {
	return len(m.byFile)
}

// uniqueImageIds lists distinct imageId values in order of first appearance.
func uniqueImageIds(annotations []kdb.Annotation) []string {
	seen := map[string]struct{}{}
	ids := []string{}
	for _, a := range annotations {
		if _, ok := seen[a.ImageId]; ok {
			continue
		}
		seen[a.ImageId] = struct{}{}
		ids = append(ids, a.ImageId)
	}
	return ids
}

// shouldExpand guesses that sparse unique-image coverage against a much
// larger file pool indicates a data-entry mismatch rather than true
// sparsity: fewer than 3 distinct imageIds while the store holds at
// least twice as many files.
func shouldExpand(uniqueIds int, fileCount int) bool {
	return uniqueIds < 3 && fileCount >= 2*uniqueIds
}

// reconcile matches annotations to stored filenames.
//
// The normal path keeps only annotations whose imageId equals a stored
// filename (exact first, then case-insensitive); unmatched ones are
// dropped and logged, not an error by themselves.
//
// The expand path is a last-resort approximate pairing used when the
// imageIds look unusable (see shouldExpand): stored files are sorted,
// the full annotation list is cut into contiguous chunks of
// ceil(total/min(total, files)) and chunk i goes to sorted file i,
// ignoring imageIds entirely.
func reconcile(annotations []kdb.Annotation, imageFiles []string, logger *log.Logger) (*imageAnnotationMap, []string) {
	assigned := newImageAnnotationMap()
	ids := uniqueImageIds(annotations)

	if shouldExpand(len(ids), len(imageFiles)) {
		logger.Printf(
			"expanding %d annotations over %d files (only %d distinct imageIds)",
			len(annotations), len(imageFiles), len(ids),
		)
		expand(assigned, annotations, imageFiles)

		if assigned.Len() == 0 {
			return assigned, ids
		}
		return assigned, nil
	}

	unresolved := []string{}
	unresolvedSeen := map[string]struct{}{}
	for _, anno := range annotations {
		file, ok := matchFile(anno.ImageId, imageFiles)
		if !ok {
			if _, dup := unresolvedSeen[anno.ImageId]; !dup {
				unresolvedSeen[anno.ImageId] = struct{}{}
				unresolved = append(unresolved, anno.ImageId)
			}
			logger.Printf("annotation %s dropped: no stored file named %q", anno.Id, anno.ImageId)
			continue
		}
		assigned.assign(file, anno)
	}

	return assigned, unresolved
}

// matchFile finds the stored filename equal to imageId. Exact equality
// wins over case-insensitive equality; no substring matching.
func matchFile(imageId string, imageFiles []string) (string, bool) {
	if f, ok := slices.First(imageFiles, func(f string) bool { return f == imageId }); ok {
		return f, true
	}
	return slices.First(imageFiles, func(f string) bool { return strings.EqualFold(f, imageId) })
}

func expand(assigned *imageAnnotationMap, annotations []kdb.Annotation, imageFiles []string) {
	if len(imageFiles) == 0 {
		return
	}

	sorted := make([]string, len(imageFiles))
	copy(sorted, imageFiles)
	sort.Strings(sorted)

	total := len(annotations)
	denom := total
	if len(sorted) < denom {
		denom = len(sorted)
	}
	chunkSize := (total + denom - 1) / denom

	for nth := 0; nth*chunkSize < total; nth++ {
		lo := nth * chunkSize
		hi := lo + chunkSize
		if total < hi {
			hi = total
		}
		assigned.assign(sorted[nth], annotations[lo:hi]...)
	}
}

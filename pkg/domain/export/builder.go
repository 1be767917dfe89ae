// Package export builds training archives from a dataset's stored
// images and its box annotations.
//
// One Build call reconciles annotation image references against the
// files actually in storage, converts box geometry to normalized
// detection labels, and assembles a tar.gz with a fixed layout:
//
//	<datasetName>_Training_<millis>/
//	    config.yaml
//	    images/<filename>
//	    labels/<filename>.txt
package export

import (
	"context"
	"fmt"
	"log"
	"time"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/storage"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

// Request carries everything one export needs. Annotations and Classes
// are in creation order; ImageFiles is the dataset's storage listing.
type Request struct {
	DatasetId   string
	DatasetName string
	Annotations []kdb.Annotation
	Classes     []kdb.AnnotationClass
	ImageFiles  []string
	Config      kdb.TrainingConfig
}

// Result is a successfully assembled archive and its bookkeeping.
type Result struct {
	// Archive is the tar.gz content.
	Archive []byte

	// ArchiveName is "<root>.tar.gz" and RootDir the top-level
	// directory inside the archive.
	ArchiveName string
	RootDir     string

	// TotalAnnotatedImages counts images included in the archive,
	// TotalAnnotations the annotations written into label files.
	TotalAnnotatedImages int
	TotalAnnotations     int

	// ClassNames in class-index order.
	ClassNames []string

	// Config echoes the request config with defaults applied.
	Config kdb.TrainingConfig
}

type Builder struct {
	store     storage.Storage
	refWidth  int
	refHeight int
	logger    *log.Logger
	clock     func() time.Time
}

type Option func(*Builder) *Builder

// WithClock overrides the timestamp source naming the archive root.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) *Builder {
		b.clock = clock
		return b
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(b *Builder) *Builder {
		b.logger = logger
		return b
	}
}

// NewBuilder returns a Builder normalizing boxes against the fixed
// reference dimensions. The reference is configuration, not the true
// size of any image.
func NewBuilder(store storage.Storage, refWidth int, refHeight int, options ...Option) *Builder {
	b := &Builder{
		store:     store,
		refWidth:  refWidth,
		refHeight: refHeight,
		logger:    log.Default(),
		clock:     time.Now,
	}
	for _, opt := range options {
		b = opt(b)
	}
	return b
}

// Build runs one export: reconcile, convert, archive.
//
// Returns ErrNoAnnotations for an empty annotation list (before any
// file I/O), *NoMatchedImagesError when reconciliation resolves zero
// images, and ErrNoReadableImages when every resolved image fails to
// read. Individual unreadable images are skipped and logged; a partial
// archive with at least one image is a success.
func (b *Builder) Build(ctx context.Context, req Request) (*Result, error) {
	if len(req.Annotations) == 0 {
		return nil, ErrNoAnnotations
	}

	assigned, unresolved := reconcile(req.Annotations, req.ImageFiles, b.logger)
	if assigned.Len() == 0 {
		available := req.ImageFiles
		if 10 < len(available) {
			available = available[:10]
		}
		return nil, &NoMatchedImagesError{
			AvailableFiles:     available,
			UnresolvedImageIds: unresolved,
		}
	}

	config := withDefaults(req.Config)
	classNames := slices.Map(
		req.Classes,
		func(c kdb.AnnotationClass) string { return c.Name },
	)
	mapping := newClassMapping(req.Classes)

	root := fmt.Sprintf("%s_Training_%d", req.DatasetName, b.clock().UnixMilli())
	archive := newArchiveWriter(root, b.clock())

	content, err := renderManifest(config, classNames, req.DatasetName)
	if err != nil {
		return nil, err
	}
	if err := archive.Add("config.yaml", content); err != nil {
		return nil, err
	}

	includedImages := 0
	includedAnnotations := 0
	for _, file := range assigned.Files() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		image, err := b.store.ReadFile(ctx, req.DatasetId, file)
		if err != nil {
			// fault isolation: one unreadable image does not spoil the export
			b.logger.Printf("image %q skipped: %s", file, err)
			continue
		}

		annos := assigned.Annotations(file)
		if err := archive.Add("images/"+file, image); err != nil {
			return nil, err
		}
		labels := labelContent(annos, mapping, b.refWidth, b.refHeight)
		if err := archive.Add("labels/"+labelFilename(file), []byte(labels)); err != nil {
			return nil, err
		}

		includedImages += 1
		includedAnnotations += len(annos)
	}

	if includedImages == 0 {
		return nil, fmt.Errorf("%w: all %d matched images failed", ErrNoReadableImages, assigned.Len())
	}

	packed, err := archive.Close()
	if err != nil {
		return nil, err
	}

	return &Result{
		Archive:              packed,
		ArchiveName:          root + ".tar.gz",
		RootDir:              root,
		TotalAnnotatedImages: includedImages,
		TotalAnnotations:     includedAnnotations,
		ClassNames:           classNames,
		Config:               config,
	}, nil
}

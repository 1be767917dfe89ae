package db

import (
	"context"
	"time"
)

// AnnotationClass names one category of objects in a dataset.
//
// The dataset's classes, ordered by creation, define the class-index
// mapping used in training exports.
type AnnotationClass struct {
	Id        string
	DatasetId string
	Name      string
	Color     string
	CreatedAt time.Time
}

type ClassSpec struct {
	Name  string
	Color string
}

// BoundingBox is absolute box geometry in pixel units.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Annotation is one labeled bounding box over one image.
//
// ImageId is a free-form reference to a filename in the dataset's storage.
// Nothing guarantees a file of that name exists.
type Annotation struct {
	Id        string
	DatasetId string
	ClassId   string
	ImageId   string
	Label     string
	Geometry  BoundingBox
	CreatedAt time.Time
}

type AnnotationSpec struct {
	ClassId  string
	ImageId  string
	Label    string
	Geometry BoundingBox
}

type AnnotationInterface interface {
	CreateClass(ctx context.Context, userId string, datasetId string, spec ClassSpec) (AnnotationClass, error)

	// ListClasses returns the dataset's classes ordered by creation time.
	ListClasses(ctx context.Context, userId string, datasetId string) ([]AnnotationClass, error)

	DeleteClass(ctx context.Context, userId string, classId string) error

	Create(ctx context.Context, userId string, datasetId string, spec AnnotationSpec) (Annotation, error)

	// List returns the dataset's annotations ordered by creation time.
	List(ctx context.Context, userId string, datasetId string) ([]Annotation, error)

	Update(ctx context.Context, userId string, annotationId string, spec AnnotationSpec) (Annotation, error)

	Delete(ctx context.Context, userId string, annotationId string) error
}

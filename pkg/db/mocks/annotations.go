package mocks

import (
	"context"
	"errors"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type AnnotationInterface struct {
	Impl struct {
		CreateClass func(context.Context, string, string, kdb.ClassSpec) (kdb.AnnotationClass, error)
		ListClasses func(context.Context, string, string) ([]kdb.AnnotationClass, error)
		DeleteClass func(context.Context, string, string) error
		Create      func(context.Context, string, string, kdb.AnnotationSpec) (kdb.Annotation, error)
		List        func(context.Context, string, string) ([]kdb.Annotation, error)
		Update      func(context.Context, string, string, kdb.AnnotationSpec) (kdb.Annotation, error)
		Delete      func(context.Context, string, string) error
	}
	Calls struct {
		CreateClass CallLog[struct {
			UserId    string
			DatasetId string
			Spec      kdb.ClassSpec
		}]
		ListClasses CallLog[struct {
			UserId    string
			DatasetId string
		}]
		DeleteClass CallLog[struct {
			UserId  string
			ClassId string
		}]
		Create CallLog[struct {
			UserId    string
			DatasetId string
			Spec      kdb.AnnotationSpec
		}]
		List CallLog[struct {
			UserId    string
			DatasetId string
		}]
		Update CallLog[struct {
			UserId       string
			AnnotationId string
			Spec         kdb.AnnotationSpec
		}]
		Delete CallLog[struct {
			UserId       string
			AnnotationId string
		}]
	}
}

func NewAnnotationInterface() *AnnotationInterface {
	return &AnnotationInterface{}
}

var _ kdb.AnnotationInterface = &AnnotationInterface{}

func (m *AnnotationInterface) CreateClass(ctx context.Context, userId string, datasetId string, spec kdb.ClassSpec) (kdb.AnnotationClass, error) {
	m.Calls.CreateClass = append(m.Calls.CreateClass, struct {
		UserId    string
		DatasetId string
		Spec      kdb.ClassSpec
	}{UserId: userId, DatasetId: datasetId, Spec: spec})
	if m.Impl.CreateClass != nil {
		return m.Impl.CreateClass(ctx, userId, datasetId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) ListClasses(ctx context.Context, userId string, datasetId string) ([]kdb.AnnotationClass, error) {
	m.Calls.ListClasses = append(m.Calls.ListClasses, struct {
		UserId    string
		DatasetId string
	}{UserId: userId, DatasetId: datasetId})
	if m.Impl.ListClasses != nil {
		return m.Impl.ListClasses(ctx, userId, datasetId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) DeleteClass(ctx context.Context, userId string, classId string) error {
	m.Calls.DeleteClass = append(m.Calls.DeleteClass, struct {
		UserId  string
		ClassId string
	}{UserId: userId, ClassId: classId})
	if m.Impl.DeleteClass != nil {
		return m.Impl.DeleteClass(ctx, userId, classId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) Create(ctx context.Context, userId string, datasetId string, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	m.Calls.Create = append(m.Calls.Create, struct {
		UserId    string
		DatasetId string
		Spec      kdb.AnnotationSpec
	}{UserId: userId, DatasetId: datasetId, Spec: spec})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, userId, datasetId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) List(ctx context.Context, userId string, datasetId string) ([]kdb.Annotation, error) {
	m.Calls.List = append(m.Calls.List, struct {
		UserId    string
		DatasetId string
	}{UserId: userId, DatasetId: datasetId})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, userId, datasetId)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) Update(ctx context.Context, userId string, annotationId string, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		UserId       string
		AnnotationId string
		Spec         kdb.AnnotationSpec
	}{UserId: userId, AnnotationId: annotationId, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, userId, annotationId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *AnnotationInterface) Delete(ctx context.Context, userId string, annotationId string) error {
	m.Calls.Delete = append(m.Calls.Delete, struct {
		UserId       string
		AnnotationId string
	}{UserId: userId, AnnotationId: annotationId})
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, userId, annotationId)
	}
	panic(errors.New("it should not be called"))
}

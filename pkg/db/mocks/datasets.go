package mocks

import (
	"context"
	"errors"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type DatasetInterface struct {
	Impl struct {
		Create    func(context.Context, string, string, kdb.DatasetSpec) (kdb.Dataset, error)
		Get       func(context.Context, string, string) (kdb.Dataset, error)
		List      func(context.Context, string, string) ([]kdb.Dataset, error)
		Update    func(context.Context, string, string, kdb.DatasetSpec) (kdb.Dataset, error)
		Delete    func(context.Context, string, string) error
		AddImages func(context.Context, string, string, int, int64) (kdb.Dataset, error)
	}
	Calls struct {
		Create CallLog[struct {
			UserId    string
			ProjectId string
			Spec      kdb.DatasetSpec
		}]
		Get CallLog[struct {
			UserId    string
			DatasetId string
		}]
		List CallLog[struct {
			UserId    string
			ProjectId string
		}]
		Update CallLog[struct {
			UserId    string
			DatasetId string
			Spec      kdb.DatasetSpec
		}]
		Delete CallLog[struct {
			UserId    string
			DatasetId string
		}]
		AddImages CallLog[struct {
			UserId    string
			DatasetId string
			Count     int
			SizeBytes int64
		}]
	}
}

func NewDatasetInterface() *DatasetInterface {
	return &DatasetInterface{}
}

var _ kdb.DatasetInterface = &DatasetInterface{}

func (m *DatasetInterface) Create(ctx context.Context, userId string, projectId string, spec kdb.DatasetSpec) (kdb.Dataset, error) {
	m.Calls.Create = append(m.Calls.Create, struct {
		UserId    string
		ProjectId string
		Spec      kdb.DatasetSpec
	}{UserId: userId, ProjectId: projectId, Spec: spec})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, userId, projectId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *DatasetInterface) Get(ctx context.Context, userId string, datasetId string) (kdb.Dataset, error) {
	m.Calls.Get = append(m.Calls.Get, struct {
		UserId    string
		DatasetId string
	}{UserId: userId, DatasetId: datasetId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, userId, datasetId)
	}
	panic(errors.New("it should not be called"))
}

func (m *DatasetInterface) List(ctx context.Context, userId string, projectId string) ([]kdb.Dataset, error) {
	m.Calls.List = append(m.Calls.List, struct {
		UserId    string
		ProjectId string
	}{UserId: userId, ProjectId: projectId})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, userId, projectId)
	}
	panic(errors.New("it should not be called"))
}

func (m *DatasetInterface) Update(ctx context.Context, userId string, datasetId string, spec kdb.DatasetSpec) (kdb.Dataset, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		UserId    string
		DatasetId string
		Spec      kdb.DatasetSpec
	}{UserId: userId, DatasetId: datasetId, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, userId, datasetId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *DatasetInterface) Delete(ctx context.Context, userId string, datasetId string) error {
	m.Calls.Delete = append(m.Calls.Delete, struct {
		UserId    string
		DatasetId string
	}{UserId: userId, DatasetId: datasetId})
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, userId, datasetId)
	}
	panic(errors.New("it should not be called"))
}

func (m *DatasetInterface) AddImages(ctx context.Context, userId string, datasetId string, count int, sizeBytes int64) (kdb.Dataset, error) {
	m.Calls.AddImages = append(m.Calls.AddImages, struct {
		UserId    string
		DatasetId string
		Count     int
		SizeBytes int64
	}{UserId: userId, DatasetId: datasetId, Count: count, SizeBytes: sizeBytes})
	if m.Impl.AddImages != nil {
		return m.Impl.AddImages(ctx, userId, datasetId, count, sizeBytes)
	}
	panic(errors.New("it should not be called"))
}

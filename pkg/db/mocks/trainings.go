package mocks

import (
	"context"
	"errors"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type TrainingInterface struct {
	Impl struct {
		Create func(context.Context, string, string, kdb.TrainingResult) (kdb.TrainingRun, error)
		Get    func(context.Context, string, string) (kdb.TrainingRun, error)
		List   func(context.Context, string, string) ([]kdb.TrainingRun, error)
	}
	Calls struct {
		Create CallLog[struct {
			UserId    string
			DatasetId string
			Result    kdb.TrainingResult
		}]
		Get CallLog[struct {
			UserId     string
			TrainingId string
		}]
		List CallLog[struct {
			UserId    string
			DatasetId string
		}]
	}
}

func NewTrainingInterface() *TrainingInterface {
	return &TrainingInterface{}
}

var _ kdb.TrainingInterface = &TrainingInterface{}

func (m *TrainingInterface) Create(ctx context.Context, userId string, datasetId string, result kdb.TrainingResult) (kdb.TrainingRun, error) {
	m.Calls.Create = append(m.Calls.Create, struct {
		UserId    string
		DatasetId string
		Result    kdb.TrainingResult
	}{UserId: userId, DatasetId: datasetId, Result: result})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, userId, datasetId, result)
	}
	panic(errors.New("it should not be called"))
}

func (m *TrainingInterface) Get(ctx context.Context, userId string, trainingId string) (kdb.TrainingRun, error) {
	m.Calls.Get = append(m.Calls.Get, struct {
		UserId     string
		TrainingId string
	}{UserId: userId, TrainingId: trainingId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, userId, trainingId)
	}
	panic(errors.New("it should not be called"))
}

func (m *TrainingInterface) List(ctx context.Context, userId string, datasetId string) ([]kdb.TrainingRun, error) {
	m.Calls.List = append(m.Calls.List, struct {
		UserId    string
		DatasetId string
	}{UserId: userId, DatasetId: datasetId})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, userId, datasetId)
	}
	panic(errors.New("it should not be called"))
}

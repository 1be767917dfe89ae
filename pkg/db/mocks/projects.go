package mocks

import (
	"context"
	"errors"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

type ProjectInterface struct {
	Impl struct {
		Create func(context.Context, string, kdb.ProjectSpec) (kdb.Project, error)
		Get    func(context.Context, string, string) (kdb.Project, error)
		List   func(context.Context, string) ([]kdb.Project, error)
		Update func(context.Context, string, string, kdb.ProjectSpec) (kdb.Project, error)
		Delete func(context.Context, string, string) error
	}
	Calls struct {
		Create CallLog[struct {
			UserId string
			Spec   kdb.ProjectSpec
		}]
		Get CallLog[struct {
			UserId    string
			ProjectId string
		}]
		List   CallLog[struct{ UserId string }]
		Update CallLog[struct {
			UserId    string
			ProjectId string
			Spec      kdb.ProjectSpec
		}]
		Delete CallLog[struct {
			UserId    string
			ProjectId string
		}]
	}
}

func NewProjectInterface() *ProjectInterface {
	return &ProjectInterface{}
}

var _ kdb.ProjectInterface = &ProjectInterface{}

func (m *ProjectInterface) Create(ctx context.Context, userId string, spec kdb.ProjectSpec) (kdb.Project, error) {
	m.Calls.Create = append(m.Calls.Create, struct {
		UserId string
		Spec   kdb.ProjectSpec
	}{UserId: userId, Spec: spec})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, userId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Get(ctx context.Context, userId string, projectId string) (kdb.Project, error) {
	m.Calls.Get = append(m.Calls.Get, struct {
		UserId    string
		ProjectId string
	}{UserId: userId, ProjectId: projectId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, userId, projectId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) List(ctx context.Context, userId string) ([]kdb.Project, error) {
	m.Calls.List = append(m.Calls.List, struct{ UserId string }{UserId: userId})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, userId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Update(ctx context.Context, userId string, projectId string, spec kdb.ProjectSpec) (kdb.Project, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		UserId    string
		ProjectId string
		Spec      kdb.ProjectSpec
	}{UserId: userId, ProjectId: projectId, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, userId, projectId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProjectInterface) Delete(ctx context.Context, userId string, projectId string) error {
	m.Calls.Delete = append(m.Calls.Delete, struct {
		UserId    string
		ProjectId string
	}{UserId: userId, ProjectId: projectId})
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, userId, projectId)
	}
	panic(errors.New("it should not be called"))
}

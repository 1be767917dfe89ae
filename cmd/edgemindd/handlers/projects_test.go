package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/AliRehmantechndev/EdgeMind-backend/cmd/edgemindd/handlers"
	httptestutil "github.com/AliRehmantechndev/EdgeMind-backend/internal/testutils/http"
	apiproj "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/projects"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/mocks"
)

func TestPostProjectHandler(t *testing.T) {
	t.Run("a project is created for the authenticated user", func(t *testing.T) {
		mProject := mocks.NewProjectInterface()
		mProject.Impl.Create = func(ctx context.Context, userId string, spec kdb.ProjectSpec) (kdb.Project, error) {
			return kdb.Project{
				Id: "proj-1", UserId: userId,
				Name: spec.Name, Description: spec.Description,
			}, nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Post(
			e, "/api/projects",
			strings.NewReader(`{"name": "street scenes", "description": "dashcam footage"}`),
			httptestutil.ContentType("application/json"),
		)
		auth.SetUserId(ctx, "user-1")

		if err := handlers.PostProjectHandler(mProject)(ctx); err != nil {
			t.Fatal(err)
		}

		if resp.Code != http.StatusCreated {
			t.Errorf("status = %d, want 201", resp.Code)
		}
		if mProject.Calls.Create.Times() != 1 {
			t.Fatalf("Create called %d times, want 1", mProject.Calls.Create.Times())
		}
		if got := mProject.Calls.Create[0].UserId; got != "user-1" {
			t.Errorf("created for user %q, want user-1", got)
		}

		payload := apiproj.Detail{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if payload.Id != "proj-1" || payload.Name != "street scenes" {
			t.Errorf("payload = %+v", payload)
		}
	})

	t.Run("a nameless project is 400", func(t *testing.T) {
		mProject := mocks.NewProjectInterface()

		e := echo.New()
		ctx, _ := httptestutil.Post(
			e, "/api/projects",
			strings.NewReader(`{"description": "no name"}`),
			httptestutil.ContentType("application/json"),
		)
		auth.SetUserId(ctx, "user-1")

		err := handlers.PostProjectHandler(mProject)(ctx)

		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Errorf("error = %v, want 400", err)
		}
		if mProject.Calls.Create.Times() != 0 {
			t.Error("a nameless project was created")
		}
	})
}

func TestGetProjectHandler(t *testing.T) {
	t.Run("queries are scoped to the authenticated user", func(t *testing.T) {
		mProject := mocks.NewProjectInterface()
		mProject.Impl.Get = func(ctx context.Context, userId string, projectId string) (kdb.Project, error) {
			return kdb.Project{Id: projectId, UserId: userId, Name: "street scenes"}, nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Get(e, "/api/projects/proj-1")
		ctx.SetPath("/api/projects/:projectId")
		ctx.SetParamNames("projectId")
		ctx.SetParamValues("proj-1")
		auth.SetUserId(ctx, "user-1")

		if err := handlers.GetProjectHandler(mProject, "projectId")(ctx); err != nil {
			t.Fatal(err)
		}

		if resp.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.Code)
		}
		if mProject.Calls.Get.Times() != 1 {
			t.Fatalf("Get called %d times, want 1", mProject.Calls.Get.Times())
		}
		call := mProject.Calls.Get[0]
		if call.UserId != "user-1" || call.ProjectId != "proj-1" {
			t.Errorf("Get called with (%s, %s)", call.UserId, call.ProjectId)
		}
	})

	t.Run("somebody else's project is 404, not 403", func(t *testing.T) {
		mProject := mocks.NewProjectInterface()
		mProject.Impl.Get = func(ctx context.Context, userId string, projectId string) (kdb.Project, error) {
			return kdb.Project{}, kdb.ErrMissing
		}

		e := echo.New()
		ctx, _ := httptestutil.Get(e, "/api/projects/proj-2")
		ctx.SetPath("/api/projects/:projectId")
		ctx.SetParamNames("projectId")
		ctx.SetParamValues("proj-2")
		auth.SetUserId(ctx, "user-1")

		err := handlers.GetProjectHandler(mProject, "projectId")(ctx)

		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusNotFound {
			t.Errorf("error = %v, want 404", err)
		}
	})
}

func TestDeleteProjectHandler(t *testing.T) {
	mProject := mocks.NewProjectInterface()
	mProject.Impl.Delete = func(ctx context.Context, userId string, projectId string) error {
		return nil
	}

	e := echo.New()
	ctx, resp := httptestutil.Delete(e, "/api/projects/proj-1")
	ctx.SetPath("/api/projects/:projectId")
	ctx.SetParamNames("projectId")
	ctx.SetParamValues("proj-1")
	auth.SetUserId(ctx, "user-1")

	if err := handlers.DeleteProjectHandler(mProject, "projectId")(ctx); err != nil {
		t.Fatal(err)
	}

	if resp.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.Code)
	}
}

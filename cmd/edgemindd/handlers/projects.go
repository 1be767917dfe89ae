package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
	apiproj "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/projects"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

func specFromBody(c echo.Context) (kdb.ProjectSpec, error) {
	spec := apiproj.Spec{}
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return kdb.ProjectSpec{}, binderr.BadRequest("request body should be a project spec", err)
	}
	if spec.Name == "" {
		return kdb.ProjectSpec{}, binderr.BadRequest(`"name" is required`, nil)
	}
	return kdb.ProjectSpec{Name: spec.Name, Description: spec.Description}, nil
}

func PostProjectHandler(dbProject kdb.ProjectInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		spec, err := specFromBody(c)
		if err != nil {
			return err
		}

		created, err := dbProject.Create(ctx, userId, spec)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusCreated, apiproj.ComposeDetail(created))
	}
}

func GetProjectsHandler(dbProject kdb.ProjectInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbProject.List(ctx, userId)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(found, apiproj.ComposeDetail))
	}
}

func GetProjectHandler(dbProject kdb.ProjectInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbProject.Get(ctx, userId, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiproj.ComposeDetail(found))
	}
}

func PutProjectHandler(dbProject kdb.ProjectInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		spec, err := specFromBody(c)
		if err != nil {
			return err
		}

		updated, err := dbProject.Update(ctx, userId, c.Param(paramKey), spec)
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiproj.ComposeDetail(updated))
	}
}

func DeleteProjectHandler(dbProject kdb.ProjectInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		if err := dbProject.Delete(ctx, userId, c.Param(paramKey)); errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
	apiann "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/annotations"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

func PostClassHandler(dbAnnotation kdb.AnnotationInterface, datasetParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		spec := apiann.ClassSpec{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return binderr.BadRequest("request body should be a class spec", err)
		}
		if spec.Name == "" {
			return binderr.BadRequest(`"name" is required`, nil)
		}

		created, err := dbAnnotation.CreateClass(
			ctx, userId, c.Param(datasetParamKey),
			kdb.ClassSpec{Name: spec.Name, Color: spec.Color},
		)
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if errors.Is(err, kdb.ErrAlreadyExists) {
			return binderr.Conflict("class name is already used in this dataset", binderr.WithError(err))
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusCreated, apiann.ComposeClassDetail(created))
	}
}

func GetClassesHandler(dbAnnotation kdb.AnnotationInterface, datasetParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbAnnotation.ListClasses(ctx, userId, c.Param(datasetParamKey))
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(found, apiann.ComposeClassDetail))
	}
}

func DeleteClassHandler(dbAnnotation kdb.AnnotationInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		if err := dbAnnotation.DeleteClass(ctx, userId, c.Param(paramKey)); errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func annotationSpecFromBody(c echo.Context) (kdb.AnnotationSpec, error) {
	spec := apiann.Spec{}
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return kdb.AnnotationSpec{}, binderr.BadRequest("request body should be an annotation spec", err)
	}
	if spec.ClassId == "" {
		return kdb.AnnotationSpec{}, binderr.BadRequest(`"classId" is required`, nil)
	}
	if spec.ImageId == "" {
		return kdb.AnnotationSpec{}, binderr.BadRequest(`"imageId" is required`, nil)
	}
	if spec.Geometry.Width <= 0 || spec.Geometry.Height <= 0 {
		return kdb.AnnotationSpec{}, binderr.BadRequest("geometry width and height should be positive", nil)
	}
	return spec.Into(), nil
}

func PostAnnotationHandler(dbAnnotation kdb.AnnotationInterface, datasetParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		spec, err := annotationSpecFromBody(c)
		if err != nil {
			return err
		}

		created, err := dbAnnotation.Create(ctx, userId, c.Param(datasetParamKey), spec)
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusCreated, apiann.ComposeDetail(created))
	}
}

func GetAnnotationsHandler(dbAnnotation kdb.AnnotationInterface, datasetParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbAnnotation.List(ctx, userId, c.Param(datasetParamKey))
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(found, apiann.ComposeDetail))
	}
}

func PutAnnotationHandler(dbAnnotation kdb.AnnotationInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		spec, err := annotationSpecFromBody(c)
		if err != nil {
			return err
		}

		updated, err := dbAnnotation.Update(ctx, userId, c.Param(paramKey), spec)
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apiann.ComposeDetail(updated))
	}
}

func DeleteAnnotationHandler(dbAnnotation kdb.AnnotationInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		if err := dbAnnotation.Delete(ctx, userId, c.Param(paramKey)); errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

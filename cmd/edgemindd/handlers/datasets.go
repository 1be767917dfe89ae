package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
	apids "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/datasets"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/storage"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

func datasetSpecFromBody(c echo.Context) (kdb.DatasetSpec, error) {
	spec := apids.Spec{}
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return kdb.DatasetSpec{}, binderr.BadRequest("request body should be a dataset spec", err)
	}
	if spec.Name == "" {
		return kdb.DatasetSpec{}, binderr.BadRequest(`"name" is required`, nil)
	}
	return kdb.DatasetSpec{Name: spec.Name, Description: spec.Description}, nil
}

func PostDatasetHandler(dbDataset kdb.DatasetInterface, projectParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		spec, err := datasetSpecFromBody(c)
		if err != nil {
			return err
		}

		created, err := dbDataset.Create(ctx, userId, c.Param(projectParamKey), spec)
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusCreated, apids.ComposeDetail(created))
	}
}

func GetDatasetsHandler(dbDataset kdb.DatasetInterface, projectParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbDataset.List(ctx, userId, c.Param(projectParamKey))
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(found, apids.ComposeDetail))
	}
}

func GetDatasetHandler(dbDataset kdb.DatasetInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbDataset.Get(ctx, userId, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apids.ComposeDetail(found))
	}
}

func PutDatasetHandler(dbDataset kdb.DatasetInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		spec, err := datasetSpecFromBody(c)
		if err != nil {
			return err
		}

		updated, err := dbDataset.Update(ctx, userId, c.Param(paramKey), spec)
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apids.ComposeDetail(updated))
	}
}

// DeleteDatasetHandler removes the dataset row first; stored files are
// cleaned up afterwards and a cleanup failure only logs, since the
// authoritative record is already gone.
func DeleteDatasetHandler(dbDataset kdb.DatasetInterface, store storage.Storage, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)
		datasetId := c.Param(paramKey)

		if err := dbDataset.Delete(ctx, userId, datasetId); errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		if err := store.RemoveDataset(ctx, datasetId); err != nil {
			c.Logger().Warnf("dataset %s deleted but storage cleanup failed: %s", datasetId, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

package handlers

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
	apids "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/datasets"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/storage"
)

// UploadImagesHandler accepts multipart form uploads under the "images"
// field and records the uploaded count and byte size on the dataset.
func UploadImagesHandler(dbDataset kdb.DatasetInterface, store storage.Storage, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)
		datasetId := c.Param(paramKey)

		// ownership check before touching storage
		if _, err := dbDataset.Get(ctx, userId, datasetId); errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return binderr.BadRequest("request body should be a multipart form", err)
		}
		files := form.File["images"]
		if len(files) == 0 {
			return binderr.BadRequest(`multipart field "images" should carry at least one file`, nil)
		}

		uploaded := 0
		var totalSize int64
		for _, fh := range files {
			src, err := fh.Open()
			if err != nil {
				return binderr.InternalServerError(err)
			}
			written, err := store.SaveFile(ctx, datasetId, fh.Filename, src)
			src.Close()
			if errors.Is(err, storage.ErrBadFilename) {
				return binderr.BadRequest("file name should not contain path separators: "+fh.Filename, err)
			} else if err != nil {
				return binderr.InternalServerError(err)
			}
			uploaded += 1
			totalSize += written
		}

		updated, err := dbDataset.AddImages(ctx, userId, datasetId, uploaded, totalSize)
		if errors.Is(err, kdb.ErrOverflow) {
			return binderr.UnprocessableEntity("dataset size counter overflow", binderr.WithError(err))
		} else if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apids.UploadResult{
			Uploaded:  uploaded,
			SizeBytes: totalSize,
			Dataset:   apids.ComposeDetail(updated),
		})
	}
}

func ListImagesHandler(dbDataset kdb.DatasetInterface, store storage.Storage, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)
		datasetId := c.Param(paramKey)

		if _, err := dbDataset.Get(ctx, userId, datasetId); errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		files, err := store.ListFiles(ctx, datasetId)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apids.FileListing{Files: files})
	}
}

func GetImageHandler(dbDataset kdb.DatasetInterface, store storage.Storage, paramKey string, nameParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)
		datasetId := c.Param(paramKey)

		if _, err := dbDataset.Get(ctx, userId, datasetId); errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		name := c.Param(nameParamKey)
		content, err := store.ReadFile(ctx, datasetId, name)
		if errors.Is(err, storage.ErrBadFilename) {
			return binderr.BadRequest("file name should not contain path separators: "+name, err)
		} else if err != nil {
			return binderr.NotFound()
		}

		return c.Blob(http.StatusOK, contentTypeOf(name), content)
	}
}

func contentTypeOf(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}
	return echo.MIMEOctetStream
}

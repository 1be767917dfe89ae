package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	binderr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/binding/errors"
	apitr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/training"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/domain/dispatch"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/domain/export"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/storage"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/slices"
)

func trainingConfigFromBody(c echo.Context) (kdb.TrainingConfig, error) {
	req := apitr.SubmitRequest{}
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		// an empty body means "all defaults"
		return kdb.TrainingConfig{}, binderr.BadRequest("request body should be a training config", err)
	}

	config := req.Config
	if config.Epochs < 0 || config.BatchSize < 0 || config.ImgSize < 0 || config.LearningRate < 0 {
		return kdb.TrainingConfig{}, binderr.BadRequest("training config values should not be negative", nil)
	}
	return config.Into(), nil
}

// SubmitTrainingHandler runs the whole export pipeline for one dataset:
// load annotations, classes and the storage listing, build the archive,
// hand it to the worker, and only then record the training run.
func SubmitTrainingHandler(
	dbDataset kdb.DatasetInterface,
	dbAnnotation kdb.AnnotationInterface,
	dbTraining kdb.TrainingInterface,
	store storage.Storage,
	builder *export.Builder,
	dispatcher *dispatch.Dispatcher,
	autoStartTraining bool,
	paramKey string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)
		datasetId := c.Param(paramKey)

		config, err := trainingConfigFromBody(c)
		if err != nil {
			return err
		}

		dataset, err := dbDataset.Get(ctx, userId, datasetId)
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}

		annotations, err := dbAnnotation.List(ctx, userId, datasetId)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		classes, err := dbAnnotation.ListClasses(ctx, userId, datasetId)
		if err != nil {
			return binderr.InternalServerError(err)
		}
		files, err := store.ListFiles(ctx, datasetId)
		if err != nil {
			return binderr.InternalServerError(err)
		}

		built, err := builder.Build(ctx, export.Request{
			DatasetId:   datasetId,
			DatasetName: dataset.Name,
			Annotations: annotations,
			Classes:     classes,
			ImageFiles:  files,
			Config:      config,
		})
		if err != nil {
			noMatch := &export.NoMatchedImagesError{}
			switch {
			case errors.Is(err, export.ErrNoAnnotations):
				return binderr.UnprocessableEntity(
					"dataset has no annotations",
					binderr.WithAdvice("annotate images before starting a training"),
					binderr.WithError(err),
				)
			case errors.As(err, &noMatch):
				return binderr.UnprocessableEntity(
					"no annotation matches a stored image",
					binderr.WithAdvice("check that annotation imageIds name uploaded files"),
					binderr.WithError(err),
				)
			case errors.Is(err, export.ErrNoReadableImages):
				return binderr.UnprocessableEntity(
					"no matched image could be read",
					binderr.WithError(err),
				)
			default:
				return binderr.InternalServerError(err)
			}
		}

		uploadPath := dispatch.UploadPath(userId, dataset.Name, time.Now())
		sent, err := dispatcher.Send(ctx, dispatch.Request{
			Archive:           built.Archive,
			ArchiveName:       built.ArchiveName,
			UploadPath:        uploadPath,
			AutoStartTraining: autoStartTraining,
			Config:            built.Config,
		})
		if err != nil {
			return binderr.BadGateway("training worker rejected the dataset", err)
		}

		// the run row exists only for dispatches the worker accepted
		run, err := dbTraining.Create(ctx, userId, datasetId, kdb.TrainingResult{
			ObjectName:  sent.FileName,
			BucketName:  sent.Bucket,
			DownloadUrl: sent.PresignedUrl,
			UploadPath:  uploadPath,
			Config:      built.Config,
		})
		if err != nil {
			return binderr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apitr.SubmitResponse{
			TrainingId:           run.Id,
			ObjectName:           sent.FileName,
			BucketName:           sent.Bucket,
			DownloadUrl:          sent.PresignedUrl,
			TotalAnnotatedImages: built.TotalAnnotatedImages,
			TotalAnnotations:     built.TotalAnnotations,
			ClassNames:           built.ClassNames,
			TrainingConfig:       apitr.ComposeConfig(built.Config),
			UploadPath:           uploadPath,
		})
	}
}

func GetTrainingsHandler(dbTraining kdb.TrainingInterface, datasetParamKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbTraining.List(ctx, userId, c.Param(datasetParamKey))
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(found, apitr.ComposeDetail))
	}
}

func GetTrainingHandler(dbTraining kdb.TrainingInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userId := auth.UserId(c)

		found, err := dbTraining.Get(ctx, userId, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return binderr.NotFound()
		} else if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, apitr.ComposeDetail(found))
	}
}

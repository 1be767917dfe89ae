package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kcb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/configs/backend"
	kpg "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/domain/dispatch"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/domain/export"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/echoutil"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/storage"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/filewatch"

	"github.com/AliRehmantechndev/EdgeMind-backend/cmd/edgemindd/handlers"
)

func main() {

	configPath := flag.String("config-path", "", "backend config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	flag.Parse()

	conf, err := kcb.LoadBackendConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configuration: %s", err)
	}

	e := echo.New()

	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// restart (via the supervisor) when the config file changes
	ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
	if err != nil {
		log.Fatalf("can not watch configuration: %s", err)
	}
	defer cancel()
	context.AfterFunc(ctx, func() {
		log.Println("config file is updated. quit to restart server.")
		graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			log.Printf("error on shutdown by config update: %s", err)
		}
	})

	db, err := kpg.New(ctx, conf.Database)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	store := storage.NewLocal(conf.Storage.Root)
	issuer := auth.NewIssuer([]byte(conf.Token.Secret), conf.Token.TTL.Std())
	builder := export.NewBuilder(
		store, conf.Export.ReferenceWidth, conf.Export.ReferenceHeight,
	)
	dispatcher := dispatch.NewDispatcher(conf.Worker.URL, conf.Worker.Timeout.Std())

	e.GET("/api/health", handlers.HealthHandler(db))
	e.POST("/api/auth/register", handlers.RegisterHandler(db.Users(), issuer))
	e.POST("/api/auth/login", handlers.LoginHandler(db.Users(), issuer))

	api := e.Group("/api", auth.Required(issuer))
	{
		api.POST("/projects", handlers.PostProjectHandler(db.Projects()))
		api.GET("/projects", handlers.GetProjectsHandler(db.Projects()))
		api.GET("/projects/:projectId", handlers.GetProjectHandler(db.Projects(), "projectId"))
		api.PUT("/projects/:projectId", handlers.PutProjectHandler(db.Projects(), "projectId"))
		api.DELETE("/projects/:projectId", handlers.DeleteProjectHandler(db.Projects(), "projectId"))
	}

	{
		api.POST("/projects/:projectId/datasets", handlers.PostDatasetHandler(db.Datasets(), "projectId"))
		api.GET("/projects/:projectId/datasets", handlers.GetDatasetsHandler(db.Datasets(), "projectId"))
		api.GET("/datasets/:datasetId", handlers.GetDatasetHandler(db.Datasets(), "datasetId"))
		api.PUT("/datasets/:datasetId", handlers.PutDatasetHandler(db.Datasets(), "datasetId"))
		api.DELETE("/datasets/:datasetId", handlers.DeleteDatasetHandler(db.Datasets(), store, "datasetId"))
	}

	{
		api.POST("/datasets/:datasetId/images", handlers.UploadImagesHandler(db.Datasets(), store, "datasetId"))
		api.GET("/datasets/:datasetId/images", handlers.ListImagesHandler(db.Datasets(), store, "datasetId"))
		api.GET("/datasets/:datasetId/images/:filename", handlers.GetImageHandler(db.Datasets(), store, "datasetId", "filename"))
	}

	{
		api.POST("/datasets/:datasetId/classes", handlers.PostClassHandler(db.Annotations(), "datasetId"))
		api.GET("/datasets/:datasetId/classes", handlers.GetClassesHandler(db.Annotations(), "datasetId"))
		api.DELETE("/classes/:classId", handlers.DeleteClassHandler(db.Annotations(), "classId"))

		api.POST("/datasets/:datasetId/annotations", handlers.PostAnnotationHandler(db.Annotations(), "datasetId"))
		api.GET("/datasets/:datasetId/annotations", handlers.GetAnnotationsHandler(db.Annotations(), "datasetId"))
		api.PUT("/annotations/:annotationId", handlers.PutAnnotationHandler(db.Annotations(), "annotationId"))
		api.DELETE("/annotations/:annotationId", handlers.DeleteAnnotationHandler(db.Annotations(), "annotationId"))
	}

	{
		api.POST("/datasets/:datasetId/training", handlers.SubmitTrainingHandler(
			db.Datasets(), db.Annotations(), db.Trainings(),
			store, builder, dispatcher,
			conf.Worker.AutoStartTraining, "datasetId",
		))
		api.GET("/datasets/:datasetId/training", handlers.GetTrainingsHandler(db.Trainings(), "datasetId"))
		api.GET("/training/:trainingId", handlers.GetTrainingHandler(db.Trainings(), "trainingId"))
	}

	log.Println("registered routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", conf.Port)))
}

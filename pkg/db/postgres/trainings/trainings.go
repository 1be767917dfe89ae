package trainings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	kpgerr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/errors"
	kpool "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/pool"
)

type pgTrainings struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.TrainingInterface {
	return &pgTrainings{pool: pool}
}

func (t *pgTrainings) Create(ctx context.Context, userId string, datasetId string, result kdb.TrainingResult) (kdb.TrainingRun, error) {
	var owned string
	if err := t.pool.QueryRow(
		ctx,
		`
		SELECT "d"."id" FROM "datasets" AS "d"
		INNER JOIN "projects" AS "p" ON "d"."project_id" = "p"."id"
		WHERE "d"."id" = $1 AND "p"."user_id" = $2
		`,
		datasetId, userId,
	).Scan(&owned); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.TrainingRun{}, kpgerr.Missing{Table: "datasets", Identity: datasetId}
		}
		return kdb.TrainingRun{}, err
	}

	config, err := json.Marshal(result.Config)
	if err != nil {
		return kdb.TrainingRun{}, err
	}

	run := kdb.TrainingRun{
		Id:          uuid.NewString(),
		DatasetId:   datasetId,
		UserId:      userId,
		Status:      kdb.TrainingSubmitted,
		ObjectName:  result.ObjectName,
		BucketName:  result.BucketName,
		DownloadUrl: result.DownloadUrl,
		UploadPath:  result.UploadPath,
		Config:      result.Config,
	}
	if err := t.pool.QueryRow(
		ctx,
		`
		INSERT INTO "training_runs"
			("id", "dataset_id", "user_id", "status",
			 "object_name", "bucket_name", "download_url", "upload_path", "config")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING "created_at", "updated_at"
		`,
		run.Id, run.DatasetId, run.UserId, string(run.Status),
		run.ObjectName, run.BucketName, run.DownloadUrl, run.UploadPath, config,
	).Scan(&run.CreatedAt, &run.UpdatedAt); err != nil {
		return kdb.TrainingRun{}, err
	}
	return run, nil
}

func (t *pgTrainings) Get(ctx context.Context, userId string, trainingId string) (kdb.TrainingRun, error) {
	row := t.pool.QueryRow(
		ctx,
		`
		SELECT "id", "dataset_id", "user_id", "status",
		       "object_name", "bucket_name", "download_url", "upload_path",
		       "config", "created_at", "updated_at"
		FROM "training_runs"
		WHERE "id" = $1 AND "user_id" = $2
		`,
		trainingId, userId,
	)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.TrainingRun{}, kpgerr.Missing{Table: "training_runs", Identity: trainingId}
		}
		return kdb.TrainingRun{}, err
	}
	return run, nil
}

func (t *pgTrainings) List(ctx context.Context, userId string, datasetId string) ([]kdb.TrainingRun, error) {
	rows, err := t.pool.Query(
		ctx,
		`
		SELECT "id", "dataset_id", "user_id", "status",
		       "object_name", "bucket_name", "download_url", "upload_path",
		       "config", "created_at", "updated_at"
		FROM "training_runs"
		WHERE "dataset_id" = $1 AND "user_id" = $2
		ORDER BY "created_at" DESC
		`,
		datasetId, userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []kdb.TrainingRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, run)
	}
	return found, rows.Err()
}

func scanRun(row pgx.Row) (kdb.TrainingRun, error) {
	run := kdb.TrainingRun{}
	status := ""
	config := pgtype.JSONB{}
	if err := row.Scan(
		&run.Id, &run.DatasetId, &run.UserId, &status,
		&run.ObjectName, &run.BucketName, &run.DownloadUrl, &run.UploadPath,
		&config, &run.CreatedAt, &run.UpdatedAt,
	); err != nil {
		return kdb.TrainingRun{}, err
	}
	run.Status = kdb.TrainingStatus(status)

	if config.Status == pgtype.Present {
		if err := json.Unmarshal(config.Bytes, &run.Config); err != nil {
			return kdb.TrainingRun{}, err
		}
	}
	return run, nil
}

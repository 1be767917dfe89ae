package datasets

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	kpgerr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/errors"
	kpool "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/pool"
)

type pgDatasets struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.DatasetInterface {
	return &pgDatasets{pool: pool}
}

// ownership scoping follows the chain dataset -> project -> user.
const ownedDataset = `
	SELECT "d"."id" FROM "datasets" AS "d"
	INNER JOIN "projects" AS "p" ON "d"."project_id" = "p"."id"
	WHERE "d"."id" = $1 AND "p"."user_id" = $2
`

func (d *pgDatasets) Create(ctx context.Context, userId string, projectId string, spec kdb.DatasetSpec) (kdb.Dataset, error) {
	// The project must be owned by the caller; otherwise the insert
	// has nothing to reference and is reported as missing.
	var owner string
	if err := d.pool.QueryRow(
		ctx,
		`SELECT "id" FROM "projects" WHERE "id" = $1 AND "user_id" = $2`,
		projectId, userId,
	).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Dataset{}, kpgerr.Missing{Table: "projects", Identity: projectId}
		}
		return kdb.Dataset{}, err
	}

	ds := kdb.Dataset{
		Id:          uuid.NewString(),
		ProjectId:   projectId,
		Name:        spec.Name,
		Description: spec.Description,
	}
	if err := d.pool.QueryRow(
		ctx,
		`
		INSERT INTO "datasets" ("id", "project_id", "name", "description")
		VALUES ($1, $2, $3, $4)
		RETURNING "created_at", "updated_at"
		`,
		ds.Id, ds.ProjectId, ds.Name, ds.Description,
	).Scan(&ds.CreatedAt, &ds.UpdatedAt); err != nil {
		return kdb.Dataset{}, err
	}
	return ds, nil
}

func (d *pgDatasets) Get(ctx context.Context, userId string, datasetId string) (kdb.Dataset, error) {
	ds := kdb.Dataset{}
	if err := d.pool.QueryRow(
		ctx,
		`
		SELECT "d"."id", "d"."project_id", "d"."name", "d"."description",
		       "d"."image_count", "d"."total_size_bytes",
		       "d"."created_at", "d"."updated_at"
		FROM "datasets" AS "d"
		INNER JOIN "projects" AS "p" ON "d"."project_id" = "p"."id"
		WHERE "d"."id" = $1 AND "p"."user_id" = $2
		`,
		datasetId, userId,
	).Scan(
		&ds.Id, &ds.ProjectId, &ds.Name, &ds.Description,
		&ds.ImageCount, &ds.TotalSizeBytes, &ds.CreatedAt, &ds.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Dataset{}, kpgerr.Missing{Table: "datasets", Identity: datasetId}
		}
		return kdb.Dataset{}, err
	}
	return ds, nil
}

func (d *pgDatasets) List(ctx context.Context, userId string, projectId string) ([]kdb.Dataset, error) {
	rows, err := d.pool.Query(
		ctx,
		`
		SELECT "d"."id", "d"."project_id", "d"."name", "d"."description",
		       "d"."image_count", "d"."total_size_bytes",
		       "d"."created_at", "d"."updated_at"
		FROM "datasets" AS "d"
		INNER JOIN "projects" AS "p" ON "d"."project_id" = "p"."id"
		WHERE "d"."project_id" = $1 AND "p"."user_id" = $2
		ORDER BY "d"."created_at"
		`,
		projectId, userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []kdb.Dataset{}
	for rows.Next() {
		ds := kdb.Dataset{}
		if err := rows.Scan(
			&ds.Id, &ds.ProjectId, &ds.Name, &ds.Description,
			&ds.ImageCount, &ds.TotalSizeBytes, &ds.CreatedAt, &ds.UpdatedAt,
		); err != nil {
			return nil, err
		}
		found = append(found, ds)
	}
	return found, rows.Err()
}

func (d *pgDatasets) Update(ctx context.Context, userId string, datasetId string, spec kdb.DatasetSpec) (kdb.Dataset, error) {
	if _, err := d.pool.Exec(
		ctx,
		`
		UPDATE "datasets" SET "name" = $3, "description" = $4, "updated_at" = now()
		WHERE "id" IN (`+ownedDataset+`)
		`,
		datasetId, userId, spec.Name, spec.Description,
	); err != nil {
		return kdb.Dataset{}, err
	}
	return d.Get(ctx, userId, datasetId)
}

func (d *pgDatasets) Delete(ctx context.Context, userId string, datasetId string) error {
	tag, err := d.pool.Exec(
		ctx,
		`DELETE FROM "datasets" WHERE "id" IN (`+ownedDataset+`)`,
		datasetId, userId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "datasets", Identity: datasetId}
	}
	return nil
}

func (d *pgDatasets) AddImages(ctx context.Context, userId string, datasetId string, count int, sizeBytes int64) (kdb.Dataset, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return kdb.Dataset{}, err
	}
	defer tx.Rollback(ctx)

	var current int64
	if err := tx.QueryRow(
		ctx,
		`
		SELECT "d"."total_size_bytes" FROM "datasets" AS "d"
		INNER JOIN "projects" AS "p" ON "d"."project_id" = "p"."id"
		WHERE "d"."id" = $1 AND "p"."user_id" = $2
		FOR UPDATE OF "d"
		`,
		datasetId, userId,
	).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Dataset{}, kpgerr.Missing{Table: "datasets", Identity: datasetId}
		}
		return kdb.Dataset{}, err
	}

	if sizeBytes > 0 && current > math.MaxInt64-sizeBytes {
		return kdb.Dataset{}, kdb.ErrOverflow
	}

	if _, err := tx.Exec(
		ctx,
		`
		UPDATE "datasets"
		SET "image_count" = "image_count" + $2,
		    "total_size_bytes" = "total_size_bytes" + $3,
		    "updated_at" = now()
		WHERE "id" = $1
		`,
		datasetId, count, sizeBytes,
	); err != nil {
		return kdb.Dataset{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return kdb.Dataset{}, err
	}
	return d.Get(ctx, userId, datasetId)
}

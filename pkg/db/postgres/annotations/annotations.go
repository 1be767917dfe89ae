package annotations

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	kpgerr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/errors"
	kpool "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/pool"
)

type pgAnnotations struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.AnnotationInterface {
	return &pgAnnotations{pool: pool}
}

func (a *pgAnnotations) datasetOwned(ctx context.Context, q kpool.Queryer, userId string, datasetId string) error {
	var id string
	if err := q.QueryRow(
		ctx,
		`
		SELECT "d"."id" FROM "datasets" AS "d"
		INNER JOIN "projects" AS "p" ON "d"."project_id" = "p"."id"
		WHERE "d"."id" = $1 AND "p"."user_id" = $2
		`,
		datasetId, userId,
	).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kpgerr.Missing{Table: "datasets", Identity: datasetId}
		}
		return err
	}
	return nil
}

func (a *pgAnnotations) CreateClass(ctx context.Context, userId string, datasetId string, spec kdb.ClassSpec) (kdb.AnnotationClass, error) {
	if err := a.datasetOwned(ctx, a.pool, userId, datasetId); err != nil {
		return kdb.AnnotationClass{}, err
	}

	class := kdb.AnnotationClass{
		Id:        uuid.NewString(),
		DatasetId: datasetId,
		Name:      spec.Name,
		Color:     spec.Color,
	}
	if err := a.pool.QueryRow(
		ctx,
		`
		INSERT INTO "annotation_classes" ("id", "dataset_id", "name", "color")
		VALUES ($1, $2, $3, $4)
		RETURNING "created_at"
		`,
		class.Id, class.DatasetId, class.Name, class.Color,
	).Scan(&class.CreatedAt); err != nil {
		return kdb.AnnotationClass{}, kpgerr.AsConflict("annotation_classes", spec.Name, err)
	}
	return class, nil
}

func (a *pgAnnotations) ListClasses(ctx context.Context, userId string, datasetId string) ([]kdb.AnnotationClass, error) {
	if err := a.datasetOwned(ctx, a.pool, userId, datasetId); err != nil {
		return nil, err
	}

	rows, err := a.pool.Query(
		ctx,
		`
		SELECT "id", "dataset_id", "name", "color", "created_at"
		FROM "annotation_classes"
		WHERE "dataset_id" = $1
		ORDER BY "created_at"
		`,
		datasetId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []kdb.AnnotationClass{}
	for rows.Next() {
		class := kdb.AnnotationClass{}
		if err := rows.Scan(
			&class.Id, &class.DatasetId, &class.Name, &class.Color, &class.CreatedAt,
		); err != nil {
			return nil, err
		}
		found = append(found, class)
	}
	return found, rows.Err()
}

func (a *pgAnnotations) DeleteClass(ctx context.Context, userId string, classId string) error {
	tag, err := a.pool.Exec(
		ctx,
		`
		DELETE FROM "annotation_classes" AS "c"
		USING "datasets" AS "d", "projects" AS "p"
		WHERE "c"."id" = $1
		  AND "c"."dataset_id" = "d"."id"
		  AND "d"."project_id" = "p"."id"
		  AND "p"."user_id" = $2
		`,
		classId, userId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "annotation_classes", Identity: classId}
	}
	return nil
}

func (a *pgAnnotations) Create(ctx context.Context, userId string, datasetId string, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	if err := a.datasetOwned(ctx, a.pool, userId, datasetId); err != nil {
		return kdb.Annotation{}, err
	}

	anno := kdb.Annotation{
		Id:        uuid.NewString(),
		DatasetId: datasetId,
		ClassId:   spec.ClassId,
		ImageId:   spec.ImageId,
		Label:     spec.Label,
		Geometry:  spec.Geometry,
	}
	if err := a.pool.QueryRow(
		ctx,
		`
		INSERT INTO "annotations"
			("id", "dataset_id", "class_id", "image_id", "label", "x", "y", "width", "height")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING "created_at"
		`,
		anno.Id, anno.DatasetId, anno.ClassId, anno.ImageId, anno.Label,
		anno.Geometry.X, anno.Geometry.Y, anno.Geometry.Width, anno.Geometry.Height,
	).Scan(&anno.CreatedAt); err != nil {
		return kdb.Annotation{}, err
	}
	return anno, nil
}

func (a *pgAnnotations) List(ctx context.Context, userId string, datasetId string) ([]kdb.Annotation, error) {
	if err := a.datasetOwned(ctx, a.pool, userId, datasetId); err != nil {
		return nil, err
	}

	rows, err := a.pool.Query(
		ctx,
		`
		SELECT "id", "dataset_id", "class_id", "image_id", "label",
		       "x", "y", "width", "height", "created_at"
		FROM "annotations"
		WHERE "dataset_id" = $1
		ORDER BY "created_at"
		`,
		datasetId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []kdb.Annotation{}
	for rows.Next() {
		anno := kdb.Annotation{}
		if err := rows.Scan(
			&anno.Id, &anno.DatasetId, &anno.ClassId, &anno.ImageId, &anno.Label,
			&anno.Geometry.X, &anno.Geometry.Y, &anno.Geometry.Width, &anno.Geometry.Height,
			&anno.CreatedAt,
		); err != nil {
			return nil, err
		}
		found = append(found, anno)
	}
	return found, rows.Err()
}

func (a *pgAnnotations) Update(ctx context.Context, userId string, annotationId string, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	anno := kdb.Annotation{
		Id:       annotationId,
		ClassId:  spec.ClassId,
		ImageId:  spec.ImageId,
		Label:    spec.Label,
		Geometry: spec.Geometry,
	}
	if err := a.pool.QueryRow(
		ctx,
		`
		UPDATE "annotations" AS "a"
		SET "class_id" = $3, "image_id" = $4, "label" = $5,
		    "x" = $6, "y" = $7, "width" = $8, "height" = $9
		FROM "datasets" AS "d", "projects" AS "p"
		WHERE "a"."id" = $1
		  AND "a"."dataset_id" = "d"."id"
		  AND "d"."project_id" = "p"."id"
		  AND "p"."user_id" = $2
		RETURNING "a"."dataset_id", "a"."created_at"
		`,
		annotationId, userId, spec.ClassId, spec.ImageId, spec.Label,
		spec.Geometry.X, spec.Geometry.Y, spec.Geometry.Width, spec.Geometry.Height,
	).Scan(&anno.DatasetId, &anno.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Annotation{}, kpgerr.Missing{Table: "annotations", Identity: annotationId}
		}
		return kdb.Annotation{}, err
	}
	return anno, nil
}

func (a *pgAnnotations) Delete(ctx context.Context, userId string, annotationId string) error {
	tag, err := a.pool.Exec(
		ctx,
		`
		DELETE FROM "annotations" AS "a"
		USING "datasets" AS "d", "projects" AS "p"
		WHERE "a"."id" = $1
		  AND "a"."dataset_id" = "d"."id"
		  AND "d"."project_id" = "p"."id"
		  AND "p"."user_id" = $2
		`,
		annotationId, userId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "annotations", Identity: annotationId}
	}
	return nil
}

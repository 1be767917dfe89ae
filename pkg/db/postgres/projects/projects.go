package projects

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	kpgerr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/errors"
	kpool "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/pool"
)

type pgProjects struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.ProjectInterface {
	return &pgProjects{pool: pool}
}

func (p *pgProjects) Create(ctx context.Context, userId string, spec kdb.ProjectSpec) (kdb.Project, error) {
	proj := kdb.Project{
		Id:          uuid.NewString(),
		UserId:      userId,
		Name:        spec.Name,
		Description: spec.Description,
	}

	if err := p.pool.QueryRow(
		ctx,
		`
		INSERT INTO "projects" ("id", "user_id", "name", "description")
		VALUES ($1, $2, $3, $4)
		RETURNING "created_at", "updated_at"
		`,
		proj.Id, proj.UserId, proj.Name, proj.Description,
	).Scan(&proj.CreatedAt, &proj.UpdatedAt); err != nil {
		return kdb.Project{}, err
	}

	return proj, nil
}

func (p *pgProjects) Get(ctx context.Context, userId string, projectId string) (kdb.Project, error) {
	proj := kdb.Project{}
	if err := p.pool.QueryRow(
		ctx,
		`
		SELECT "id", "user_id", "name", "description", "created_at", "updated_at"
		FROM "projects"
		WHERE "id" = $1 AND "user_id" = $2
		`,
		projectId, userId,
	).Scan(
		&proj.Id, &proj.UserId, &proj.Name, &proj.Description,
		&proj.CreatedAt, &proj.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Project{}, kpgerr.Missing{Table: "projects", Identity: projectId}
		}
		return kdb.Project{}, err
	}
	return proj, nil
}

func (p *pgProjects) List(ctx context.Context, userId string) ([]kdb.Project, error) {
	rows, err := p.pool.Query(
		ctx,
		`
		SELECT "id", "user_id", "name", "description", "created_at", "updated_at"
		FROM "projects"
		WHERE "user_id" = $1
		ORDER BY "created_at"
		`,
		userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []kdb.Project{}
	for rows.Next() {
		proj := kdb.Project{}
		if err := rows.Scan(
			&proj.Id, &proj.UserId, &proj.Name, &proj.Description,
			&proj.CreatedAt, &proj.UpdatedAt,
		); err != nil {
			return nil, err
		}
		found = append(found, proj)
	}
	return found, rows.Err()
}

func (p *pgProjects) Update(ctx context.Context, userId string, projectId string, spec kdb.ProjectSpec) (kdb.Project, error) {
	proj := kdb.Project{Id: projectId, UserId: userId, Name: spec.Name, Description: spec.Description}
	if err := p.pool.QueryRow(
		ctx,
		`
		UPDATE "projects" SET "name" = $3, "description" = $4, "updated_at" = now()
		WHERE "id" = $1 AND "user_id" = $2
		RETURNING "created_at", "updated_at"
		`,
		projectId, userId, spec.Name, spec.Description,
	).Scan(&proj.CreatedAt, &proj.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.Project{}, kpgerr.Missing{Table: "projects", Identity: projectId}
		}
		return kdb.Project{}, err
	}
	return proj, nil
}

func (p *pgProjects) Delete(ctx context.Context, userId string, projectId string) error {
	tag, err := p.pool.Exec(
		ctx,
		`DELETE FROM "projects" WHERE "id" = $1 AND "user_id" = $2`,
		projectId, userId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "projects", Identity: projectId}
	}
	return nil
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	kpganno "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/annotations"
	kpgds "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/datasets"
	kpool "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/pool"
	kpgproj "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/projects"
	kpgschema "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/schema"
	kpgtrain "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/trainings"
	kpgusers "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/users"
)

type pgDatabase struct {
	pool        *pgxpool.Pool
	users       kdb.UserInterface
	projects    kdb.ProjectInterface
	datasets    kdb.DatasetInterface
	annotations kdb.AnnotationInterface
	trainings   kdb.TrainingInterface
}

var _ kdb.Database = &pgDatabase{}

// New connects to postgres at url, applies pending schema migrations and
// returns the entity interfaces backed by a shared pool.
func New(ctx context.Context, url string) (kdb.Database, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, err
	}

	p := kpool.Wrap(pool)
	if err := kpgschema.New(p).Upgrade(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &pgDatabase{
		pool:        pool,
		users:       kpgusers.New(p),
		projects:    kpgproj.New(p),
		datasets:    kpgds.New(p),
		annotations: kpganno.New(p),
		trainings:   kpgtrain.New(p),
	}, nil
}

func (d *pgDatabase) Users() kdb.UserInterface             { return d.users }
func (d *pgDatabase) Projects() kdb.ProjectInterface       { return d.projects }
func (d *pgDatabase) Datasets() kdb.DatasetInterface       { return d.datasets }
func (d *pgDatabase) Annotations() kdb.AnnotationInterface { return d.annotations }
func (d *pgDatabase) Trainings() kdb.TrainingInterface     { return d.trainings }

func (d *pgDatabase) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *pgDatabase) Close() error {
	d.pool.Close()
	return nil
}

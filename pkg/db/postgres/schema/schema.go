package schema

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	kpool "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/pool"
)

//go:embed migrations
var migrations embed.FS

type pgSchema struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) *pgSchema {
	return &pgSchema{pool: pool}
}

type version struct {
	Version int
	Root    string
}

func (v version) apply(ctx context.Context, conn kpool.Queryer) error {
	return fs.WalkDir(migrations, v.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".sql") {
			return nil
		}

		query, err := migrations.ReadFile(p)
		if err != nil {
			return err
		}

		_, err = conn.Exec(ctx, string(query))
		return err
	})
}

// Version reads the applied schema version. Before the first upgrade
// (no schema_version table yet) it reports 0.
func (s *pgSchema) Version(ctx context.Context) (int, error) {
	var ver int
	if err := s.pool.QueryRow(
		ctx, `SELECT max("version") FROM "schema_version"`,
	).Scan(&ver); err != nil {
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
			if pgerr.Code == pgerrcode.UndefinedTable {
				return 0, nil
			}
		}
		return -1, err
	}

	return ver, nil
}

// Upgrade applies all embedded migration versions newer than the applied
// one, in a single transaction.
func (s *pgSchema) Upgrade(ctx context.Context) error {
	versions, err := s.versions()
	if err != nil {
		return err
	}

	current, err := s.Version(ctx)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	applied := false
	for _, v := range versions {
		if v.Version <= current {
			continue
		}
		if err := v.apply(ctx, tx); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM "schema_version"`); err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx, `INSERT INTO "schema_version" ("version") VALUES ($1)`, v.Version,
		); err != nil {
			return err
		}
		applied = true
	}

	if !applied {
		return nil
	}
	return tx.Commit(ctx)
}

// versions lists embedded migration roots (migrations/v1, migrations/v2, ...)
// sorted by version number.
func (s *pgSchema) versions() ([]version, error) {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return nil, err
	}

	found := []version{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		num, err := strconv.Atoi(strings.TrimPrefix(e.Name(), "v"))
		if err != nil {
			continue
		}
		found = append(found, version{
			Version: num,
			Root:    path.Join("migrations", e.Name()),
		})
	}

	slices.SortFunc(found, func(a, b version) int { return a.Version - b.Version })
	return found, nil
}

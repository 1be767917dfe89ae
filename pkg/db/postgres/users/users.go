package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	kpgerr "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/errors"
	kpool "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/postgres/pool"
)

type pgUsers struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.UserInterface {
	return &pgUsers{pool: pool}
}

func (u *pgUsers) Register(ctx context.Context, email string, passwordHash string) (kdb.User, error) {
	user := kdb.User{Id: uuid.NewString(), Email: email, PasswordHash: passwordHash}

	if err := u.pool.QueryRow(
		ctx,
		`
		INSERT INTO "users" ("id", "email", "password_hash")
		VALUES ($1, $2, $3)
		RETURNING "created_at"
		`,
		user.Id, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt); err != nil {
		return kdb.User{}, kpgerr.AsConflict("users", email, err)
	}

	return user, nil
}

func (u *pgUsers) GetByEmail(ctx context.Context, email string) (kdb.User, error) {
	return u.get(
		ctx, email,
		`
		SELECT "id", "email", "password_hash", "created_at" FROM "users"
		WHERE "email" = $1
		`,
	)
}

func (u *pgUsers) Get(ctx context.Context, userId string) (kdb.User, error) {
	return u.get(
		ctx, userId,
		`
		SELECT "id", "email", "password_hash", "created_at" FROM "users"
		WHERE "id" = $1
		`,
	)
}

func (u *pgUsers) get(ctx context.Context, identity string, query string) (kdb.User, error) {
	user := kdb.User{}
	if err := u.pool.QueryRow(ctx, query, identity).Scan(
		&user.Id, &user.Email, &user.PasswordHash, &user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return kdb.User{}, kpgerr.Missing{Table: "users", Identity: identity}
		}
		return kdb.User{}, err
	}
	return user, nil
}

package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
)

// Missing reports that a requested record is not found.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}

func (m Missing) Unwrap() error {
	return kdb.ErrMissing
}

// Duplicated reports an unique-constraint violation.
type Duplicated struct {
	Table    string
	Identity string
	Cause    error
}

var _ error = Duplicated{}

func (d Duplicated) Error() string {
	return fmt.Sprintf("%s already exists in %s: %s", d.Identity, d.Table, d.Cause)
}

func (d Duplicated) Unwrap() error {
	return kdb.ErrAlreadyExists
}

// AsConflict maps a postgres unique-violation onto Duplicated.
// Other errors pass through unchanged.
func AsConflict(table string, identity string, err error) error {
	if err == nil {
		return nil
	}

	pgErr := new(pgconn.PgError)
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return Duplicated{Table: table, Identity: identity, Cause: err}
	}
	return err
}

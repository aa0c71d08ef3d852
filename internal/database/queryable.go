package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
)

const EventsTable = "calendar_events"

// PSQL builds queries with $n placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Queryable is what repositories need from the database.
type Queryable interface {
	Exec(ctx context.Context, sqlizer Sqlizer) (pgconn.CommandTag, error)
	Get(ctx context.Context, dst interface{}, sqlizer Sqlizer) error
	Select(ctx context.Context, dst interface{}, sqlizer Sqlizer) error
	ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// Sqlizer is implemented by squirrel builders.
type Sqlizer interface {
	ToSql() (sql string, args []interface{}, err error)
}

package table

import (
	"context"
	"database/sql"

	"github.com/jacentio/lath/internal/sqlgen"
)

// DB is the borrowed connection contract. Every operation takes one per
// call; the package never opens, closes, or pools connections. *sql.DB,
// *sql.Tx, and *sql.Conn all satisfy it.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Table is a named, long-lived handle mapping the record type T onto one
// SQLite table. It is immutable after construction; construct one per record
// type at startup and share the handle wherever it is needed.
type Table[T any] struct {
	name   string
	def    string
	config Config
}

// New creates a Table handle for the named table. def is the raw
// column-definition fragment placed verbatim inside CREATE TABLE (...);
// it is trusted, unvalidated text and must not contain untrusted input.
func New[T any](name, def string) *Table[T] {
	return NewWithConfig[T](name, def, DefaultConfig())
}

// NewWithConfig creates a Table handle with explicit configuration.
func NewWithConfig[T any](name, def string, config Config) *Table[T] {
	config.validate()
	return &Table[T]{
		name:   name,
		def:    def,
		config: config,
	}
}

// Name returns the table name.
func (t *Table[T]) Name() string { return t.name }

// Def returns the raw column-definition fragment.
func (t *Table[T]) Def() string { return t.def }

// Create materializes the table if needed.
//
// With force, the table is dropped (DROP TABLE IF EXISTS, destroying any
// existing data) and unconditionally re-created. Without force, Create is a
// no-op when the name is already present in schema, which makes repeated
// setup calls idempotent and cheap; otherwise the table is created from the
// definition fragment. A malformed fragment surfaces as ErrStorage at
// execution time.
func (t *Table[T]) Create(ctx context.Context, db DB, schema Schema, force bool) error {
	if force {
		t.config.Logger.InfoContext(ctx, "dropping table", "table", t.name)
		if _, err := db.ExecContext(ctx, sqlgen.DropTable(t.name)); err != nil {
			return storageError(err)
		}
	} else if schema.Has(t.name) {
		return nil
	}

	t.config.Logger.InfoContext(ctx, "creating table", "table", t.name)
	if _, err := db.ExecContext(ctx, sqlgen.CreateTable(t.name, t.def)); err != nil {
		return storageError(err)
	}
	return nil
}

// Insert serializes rec into one bound value per entry in columns and
// executes a single INSERT under the given conflict policy. It returns the
// number of rows affected: 1 on success, 0 when ConflictIgnore skipped an
// existing row.
//
// Values are bound positionally in column order; each named column must
// resolve to a field of T (ErrSerialize otherwise). Agreement between
// columns and the DDL-declared column set is the caller's responsibility
// and is left to the engine to reject.
func (t *Table[T]) Insert(ctx context.Context, db DB, rec T, columns []string, onConflict Conflict) (int64, error) {
	values, err := marshalRecord(rec, columns)
	if err != nil {
		return 0, err
	}

	query := sqlgen.Insert(onConflict.verb(), t.name, columns, onConflict.suffix())
	t.config.Logger.DebugContext(ctx, "insert", "table", t.name, "sql", query)

	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v.driverArg()
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageError(err)
	}
	return n, nil
}

// Query executes SELECT * against the table with an optional trailing WHERE
// fragment (trusted text, e.g. "WHERE acct = ?") and positional args, and
// hydrates every returned row into a T. Results are eagerly materialized in
// the engine's natural row order; without an ORDER BY in the fragment that
// order is unspecified.
//
// Hydration matches columns to fields by name, the mirror image of Insert's
// positional binding: inserts name an explicit column subset, while SELECT *
// returns all columns in schema order.
func (t *Table[T]) Query(ctx context.Context, db DB, where string, args ...any) ([]T, error) {
	query := sqlgen.Select(t.name, where)
	t.config.Logger.DebugContext(ctx, "query", "table", t.name, "sql", query)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, storageError(err)
	}

	raw := make([]any, len(columns))
	scan := make([]any, len(columns))
	for i := range raw {
		scan[i] = &raw[i]
	}

	var records []T
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, storageError(err)
		}
		var rec T
		if err := unmarshalRow(columns, raw, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err)
	}
	return records, nil
}

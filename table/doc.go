// Package table maps typed Go records onto SQLite tables.
//
// A [Table] is a named, long-lived handle pairing a record type with a raw
// column-definition fragment. It synthesizes the SQL for idempotent table
// creation, conflict-aware insertion, and parameterized querying, and
// converts between record fields and bound column values in both directions.
//
// # Usage
//
// Construct one Table per record type at startup and share the handle:
//
//	type Account struct {
//	    Acct        string    `db:"acct"`
//	    ID          *string   `db:"id"`
//	    Name        string    `db:"name"`
//	    DisplayName string    `db:"display_name"`
//	    Fetched     time.Time `db:"fetched"`
//	}
//
//	accounts := table.New[Account]("accounts",
//	    `acct TEXT PRIMARY KEY,
//	     id TEXT,
//	     name TEXT NOT NULL,
//	     display_name TEXT NOT NULL,
//	     fetched TEXT NOT NULL`)
//
//	schema, err := table.Snapshot(ctx, db)
//	// ...
//	err = accounts.Create(ctx, db, schema, false)
//	n, err := accounts.Insert(ctx, db, acct,
//	    []string{"acct", "id", "name", "display_name", "fetched"},
//	    table.ConflictIgnore)
//	rows, err := accounts.Query(ctx, db, "WHERE acct = ?", "a1")
//
// # Connections
//
// The package never opens, closes, or pools database connections. Every
// operation borrows a caller-supplied [DB] handle (satisfied by *sql.DB,
// *sql.Tx, and *sql.Conn) and executes synchronously against it. SQLite's
// own locking governs concurrent access; no locking is added here.
//
// # Trusted SQL fragments
//
// The column-definition fragment given to [New] and the WHERE fragment given
// to [Table.Query] are concatenated into statements verbatim, without
// sanitization. They trade safety for flexibility and must never contain
// untrusted external input. Query parameters, by contrast, are always bound.
//
// # Field mapping
//
// Record fields map to columns via the `db:"name"` struct tag, falling back
// to the lowercased field name; a tag of "-" excludes a field. Insertion is
// positional: values are bound in the order of the caller's column list.
// Hydration is name-matched: SELECT * returns columns in schema order, which
// are mapped back onto fields by column name.
//
// # Errors
//
// All failures wrap one of three sentinels, matchable with errors.Is:
//
//   - [ErrStorage] - the engine rejected or failed a statement
//   - [ErrSerialize] - a record field has no scalar column mapping
//   - [ErrDeserialize] - a row cannot be mapped back onto the record type
//
// Nothing is retried or recovered internally; engine errors propagate
// wrapped but otherwise untouched.
package table

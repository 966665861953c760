package table

import (
	"context"
	"sort"
)

// Schema is a snapshot of the table names present in a database at the time
// of introspection. It goes stale the moment the database's table set
// changes outside this package's knowledge; that staleness window is
// accepted, not a bug. Callers may retain a snapshot across Create calls on
// the same connection or take a fresh one per call.
type Schema map[string]struct{}

// Has reports whether a table name was present at snapshot time.
func (s Schema) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the snapshot's table names in sorted order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot introspects the database catalog and returns the set of tables
// it currently holds. The query is read-only; a catalog failure surfaces
// as ErrStorage.
func Snapshot(ctx context.Context, db DB) (Schema, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return nil, storageError(err)
	}
	defer rows.Close()

	schema := make(Schema)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageError(err)
		}
		schema[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err)
	}
	return schema, nil
}

// Package sqlgen synthesizes the SQL statement text used by the table layer.
package sqlgen

import (
	"fmt"
	"strings"
)

// CreateTable builds the CREATE TABLE statement for a name and a raw
// column-definition fragment. The fragment is inserted verbatim.
func CreateTable(name, def string) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", name, def)
}

// DropTable builds the DROP TABLE IF EXISTS statement for a name.
func DropTable(name string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", name)
}

// Insert builds an INSERT statement with positional placeholders.
// verb is the full insert keyword sequence (e.g. "INSERT OR IGNORE") and
// suffix is an optional trailing clause (e.g. "ON CONFLICT ... DO UPDATE ...").
func Insert(verb, table string, columns []string, suffix string) string {
	var b strings.Builder
	b.WriteString(verb)
	b.WriteString(" INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(Placeholders(len(columns)))
	b.WriteString(")")
	if suffix != "" {
		b.WriteString(" ")
		b.WriteString(suffix)
	}
	return b.String()
}

// Select builds a SELECT * statement with an optional trailing WHERE fragment.
// The fragment is inserted verbatim and may be empty.
func Select(table, where string) string {
	if where == "" {
		return fmt.Sprintf("SELECT * FROM %s", table)
	}
	return fmt.Sprintf("SELECT * FROM %s %s", table, where)
}

// Placeholders returns n comma-separated positional placeholders.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

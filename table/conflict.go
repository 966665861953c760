package table

type conflictKind int

const (
	conflictNone conflictKind = iota
	conflictIgnore
	conflictAbort
	conflictReplace
	conflictUpsert
)

// Conflict selects what happens when an insert collides with a uniqueness
// constraint. The policy applies per Insert call, not per Table, so one
// handle can serve both insert-or-skip and insert-or-update call sites.
//
// Resolution is delegated to the engine's native INSERT OR ... clause; no
// error is ever caught and discarded after the fact.
type Conflict struct {
	kind   conflictKind
	clause string
}

var (
	// ConflictNone surfaces a uniqueness collision as a storage error.
	// It is the zero Conflict.
	ConflictNone = Conflict{}

	// ConflictIgnore silently skips the colliding row. The affected-row
	// count is 0 when the row already existed.
	ConflictIgnore = Conflict{kind: conflictIgnore}

	// ConflictAbort aborts the statement on collision, backing out any
	// changes it made while keeping the surrounding transaction.
	ConflictAbort = Conflict{kind: conflictAbort}

	// ConflictReplace overwrites the existing row.
	ConflictReplace = Conflict{kind: conflictReplace}
)

// ConflictUpsert appends a raw ON CONFLICT clause to the insert. Like all
// SQL fragments in this package, the clause is trusted text and inserted
// verbatim.
func ConflictUpsert(clause string) Conflict {
	return Conflict{kind: conflictUpsert, clause: clause}
}

// verb returns the insert keyword sequence for the policy.
func (c Conflict) verb() string {
	switch c.kind {
	case conflictIgnore:
		return "INSERT OR IGNORE"
	case conflictAbort:
		return "INSERT OR ABORT"
	case conflictReplace:
		return "INSERT OR REPLACE"
	default:
		return "INSERT"
	}
}

// suffix returns the trailing clause for upsert policies, or "".
func (c Conflict) suffix() string {
	if c.kind == conflictUpsert {
		return c.clause
	}
	return ""
}

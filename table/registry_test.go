package table_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jacentio/lath/table"
)

type widget struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func TestNewRegistry(t *testing.T) {
	r := table.NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil Registry")
	}
	if len(r.Handles()) != 0 {
		t.Errorf("expected empty registry, got %d handles", len(r.Handles()))
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := table.NewRegistry()
	widgets := table.New[widget]("widgets", "id TEXT PRIMARY KEY, name TEXT NOT NULL")

	r.Register(widgets)

	h, ok := r.Lookup("widgets")
	if !ok {
		t.Fatal("expected widgets to be registered")
	}
	if h.Name() != "widgets" {
		t.Errorf("expected name 'widgets', got %q", h.Name())
	}
	if h.Def() != "id TEXT PRIMARY KEY, name TEXT NOT NULL" {
		t.Errorf("unexpected def %q", h.Def())
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("expected lookup miss for unregistered name")
	}
}

func TestRegistry_NamesInRegistrationOrder(t *testing.T) {
	r := table.NewRegistry()
	r.Register(table.New[widget]("zebra", "id TEXT"))
	r.Register(table.New[widget]("apple", "id TEXT"))
	r.Register(table.New[widget]("mango", "id TEXT"))

	names := r.Names()
	want := []string{"zebra", "apple", "mango"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	r := table.NewRegistry()
	r.Register(table.New[widget]("widgets", "id TEXT"))
	r.Register(table.New[widget]("widgets", "id TEXT, name TEXT"))

	if len(r.Handles()) != 1 {
		t.Fatalf("expected 1 handle after re-registration, got %d", len(r.Handles()))
	}
	h, _ := r.Lookup("widgets")
	if h.Def() != "id TEXT, name TEXT" {
		t.Errorf("expected replacement handle, got def %q", h.Def())
	}
}

func TestRegistry_CreateAll(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	r := table.NewRegistry()
	accounts := table.New[Account]("accounts", accountDef)
	widgets := table.New[widget]("widgets", "id TEXT PRIMARY KEY, name TEXT NOT NULL")
	r.Register(accounts)
	r.Register(widgets)

	if err := r.CreateAll(ctx, db, false); err != nil {
		t.Fatalf("CreateAll: %v", err)
	}

	schema, err := table.Snapshot(ctx, db)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !schema.Has("accounts") || !schema.Has("widgets") {
		t.Errorf("expected both tables created, got %v", schema.Names())
	}

	// Second walk is idempotent.
	if err := r.CreateAll(ctx, db, false); err != nil {
		t.Fatalf("second CreateAll: %v", err)
	}
}

func TestRegistry_CreateAll_Force(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	r := table.NewRegistry()
	accounts := table.New[Account]("accounts", accountDef)
	r.Register(accounts)

	if err := r.CreateAll(ctx, db, false); err != nil {
		t.Fatalf("CreateAll: %v", err)
	}

	rec := Account{Acct: "a1", Name: "Alice", DisplayName: "Alice A", URL: "http://x", Fetched: time.Now().UTC()}
	if _, err := accounts.Insert(ctx, db, rec, accountColumns, table.ConflictNone); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := r.CreateAll(ctx, db, true); err != nil {
		t.Fatalf("forced CreateAll: %v", err)
	}

	rows, err := accounts.Query(ctx, db, "")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected force to destroy rows, got %d", len(rows))
	}
}

func TestRegistry_CreateAll_StopsOnFailure(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	r := table.NewRegistry()
	r.Register(table.New[widget]("broken", "this is not valid DDL (("))
	r.Register(table.New[widget]("widgets", "id TEXT PRIMARY KEY"))

	err := r.CreateAll(ctx, db, false)
	if !errors.Is(err, table.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	schema, snapErr := table.Snapshot(ctx, db)
	if snapErr != nil {
		t.Fatalf("snapshot: %v", snapErr)
	}
	if schema.Has("widgets") {
		t.Error("expected walk to stop before creating widgets")
	}
}

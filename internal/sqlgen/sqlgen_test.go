package sqlgen

import "testing"

func TestCreateTable(t *testing.T) {
	got := CreateTable("accounts", "acct TEXT PRIMARY KEY, name TEXT NOT NULL")
	want := "CREATE TABLE accounts (acct TEXT PRIMARY KEY, name TEXT NOT NULL)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDropTable(t *testing.T) {
	got := DropTable("accounts")
	if got != "DROP TABLE IF EXISTS accounts" {
		t.Errorf("unexpected statement %q", got)
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		verb    string
		columns []string
		suffix  string
		want    string
	}{
		{
			name:    "plain",
			verb:    "INSERT",
			columns: []string{"acct", "name"},
			want:    "INSERT INTO accounts (acct, name) VALUES (?, ?)",
		},
		{
			name:    "or ignore",
			verb:    "INSERT OR IGNORE",
			columns: []string{"acct"},
			want:    "INSERT OR IGNORE INTO accounts (acct) VALUES (?)",
		},
		{
			name:    "upsert suffix",
			verb:    "INSERT",
			columns: []string{"acct", "name"},
			suffix:  "ON CONFLICT (acct) DO UPDATE SET name = excluded.name",
			want:    "INSERT INTO accounts (acct, name) VALUES (?, ?) ON CONFLICT (acct) DO UPDATE SET name = excluded.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insert(tt.verb, "accounts", tt.columns, tt.suffix)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	if got := Select("accounts", ""); got != "SELECT * FROM accounts" {
		t.Errorf("unexpected statement %q", got)
	}
	if got := Select("accounts", "WHERE acct = ?"); got != "SELECT * FROM accounts WHERE acct = ?" {
		t.Errorf("unexpected statement %q", got)
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "?"},
		{2, "?, ?"},
		{5, "?, ?, ?, ?, ?"},
	}

	for _, tt := range tests {
		if got := Placeholders(tt.n); got != tt.want {
			t.Errorf("Placeholders(%d): expected %q, got %q", tt.n, tt.want, got)
		}
	}
}

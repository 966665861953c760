package table_test

import (
	"testing"

	"github.com/jacentio/lath/table"
)

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    table.Value
		kind table.Kind
	}{
		{"null", table.NullValue(), table.KindNull},
		{"zero value", table.Value{}, table.KindNull},
		{"integer", table.IntegerValue(42), table.KindInteger},
		{"real", table.RealValue(0.5), table.KindReal},
		{"text", table.TextValue("hi"), table.KindText},
		{"blob", table.BlobValue([]byte{1, 2}), table.KindBlob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, tt.v.Kind())
			}
			if tt.v.IsNull() != (tt.kind == table.KindNull) {
				t.Errorf("IsNull mismatch for kind %v", tt.kind)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	if got := table.IntegerValue(42).Int64(); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := table.RealValue(0.5).Float64(); got != 0.5 {
		t.Errorf("expected 0.5, got %g", got)
	}
	if got := table.TextValue("hi").Text(); got != "hi" {
		t.Errorf("expected 'hi', got %q", got)
	}
	if got := table.BlobValue([]byte{1, 2}).Blob(); len(got) != 2 {
		t.Errorf("expected 2 bytes, got %v", got)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    table.Value
		want string
	}{
		{table.NullValue(), "NULL"},
		{table.IntegerValue(42), "42"},
		{table.RealValue(0.5), "0.5"},
		{table.TextValue("hi"), `"hi"`},
		{table.BlobValue([]byte{0xde, 0xad}), "x'dead'"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind table.Kind
		want string
	}{
		{table.KindNull, "NULL"},
		{table.KindInteger, "INTEGER"},
		{table.KindReal, "REAL"},
		{table.KindText, "TEXT"},
		{table.KindBlob, "BLOB"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

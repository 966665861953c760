package table

import (
	"fmt"
	"time"
)

// Kind identifies the storage class of a Value, mirroring SQLite's type model.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindReal
	KindText
	KindBlob
)

// String returns the SQLite storage class name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInteger:
		return "INTEGER"
	case KindReal:
		return "REAL"
	case KindText:
		return "TEXT"
	case KindBlob:
		return "BLOB"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a tagged scalar in SQLite's type model. It is the single currency
// for both parameter binding and row hydration, decoupling the table layer
// from any particular driver's type handling.
type Value struct {
	kind Kind
	num  int64
	real float64
	text string
	blob []byte
}

// NullValue returns the NULL Value. It is also the zero Value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// IntegerValue returns a Value holding a 64-bit integer.
func IntegerValue(v int64) Value {
	return Value{kind: KindInteger, num: v}
}

// RealValue returns a Value holding a 64-bit float.
func RealValue(v float64) Value {
	return Value{kind: KindReal, real: v}
}

// TextValue returns a Value holding a string.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// BlobValue returns a Value holding raw bytes.
func BlobValue(b []byte) Value {
	return Value{kind: KindBlob, blob: b}
}

// Kind returns the storage class of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int64 returns the integer payload. Zero unless Kind is KindInteger.
func (v Value) Int64() int64 { return v.num }

// Float64 returns the real payload. Zero unless Kind is KindReal.
func (v Value) Float64() float64 { return v.real }

// Text returns the text payload. Empty unless Kind is KindText.
func (v Value) Text() string { return v.text }

// Blob returns the blob payload. Nil unless Kind is KindBlob.
func (v Value) Blob() []byte { return v.blob }

// String returns a debug representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindInteger:
		return fmt.Sprintf("%d", v.num)
	case KindReal:
		return fmt.Sprintf("%g", v.real)
	case KindText:
		return fmt.Sprintf("%q", v.text)
	case KindBlob:
		return fmt.Sprintf("x'%x'", v.blob)
	default:
		return fmt.Sprintf("Value(kind=%d)", int(v.kind))
	}
}

// driverArg converts the value to the form database/sql binds natively.
func (v Value) driverArg() any {
	switch v.kind {
	case KindInteger:
		return v.num
	case KindReal:
		return v.real
	case KindText:
		return v.text
	case KindBlob:
		return v.blob
	default:
		return nil
	}
}

// valueOf converts a scanned driver value into a Value. Drivers differ in
// the concrete types they hand back (modernc returns string for TEXT, mattn
// returns []byte), so both forms are accepted.
func valueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return NullValue(), nil
	case int64:
		return IntegerValue(v), nil
	case float64:
		return RealValue(v), nil
	case string:
		return TextValue(v), nil
	case []byte:
		return BlobValue(v), nil
	case bool:
		if v {
			return IntegerValue(1), nil
		}
		return IntegerValue(0), nil
	case time.Time:
		return TextValue(v.UTC().Format(time.RFC3339Nano)), nil
	default:
		return Value{}, deserializeError("unsupported driver value of type %T", raw)
	}
}

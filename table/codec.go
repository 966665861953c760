package table

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Field mapping: the `db:"name"` struct tag names a field's column, a tag of
// "-" excludes the field, and untagged exported fields default to the
// lowercased field name.

var timeType = reflect.TypeOf(time.Time{})

// timeLayouts are the textual timestamp forms accepted during hydration,
// tried in order. RFC3339Nano is what marshaling emits; the remaining
// layouts cover SQLite's datetime() output and driver round-trips.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// columnName resolves the column name for a struct field, or "" if the
// field does not participate in mapping.
func columnName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	tag, ok := f.Tag.Lookup("db")
	if !ok {
		return strings.ToLower(f.Name)
	}
	if tag == "-" {
		return ""
	}
	// Allow sqlx-style tag options after a comma.
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// fieldsByColumn maps column names to field indices for a struct type.
func fieldsByColumn(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := columnName(t.Field(i)); name != "" {
			fields[name] = i
		}
	}
	return fields
}

// marshalRecord serializes one record field per named column, in column
// order. Every column must resolve to a field; the field values must have a
// scalar mapping.
func marshalRecord(rec any, columns []string) ([]Value, error) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, serializeError("record is a nil pointer")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, serializeError("record must be a struct, got %s", v.Kind())
	}

	fields := fieldsByColumn(v.Type())
	values := make([]Value, len(columns))
	for i, col := range columns {
		idx, ok := fields[col]
		if !ok {
			return nil, serializeError("record type %s has no field for column %q", v.Type(), col)
		}
		val, err := marshalField(v.Field(idx))
		if err != nil {
			return nil, serializeError("column %q: %v", col, err)
		}
		values[i] = val
	}
	return values, nil
}

// marshalField converts a single field value to its scalar form.
func marshalField(f reflect.Value) (Value, error) {
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return NullValue(), nil
		}
		f = f.Elem()
	}

	if f.Type() == timeType {
		t := f.Interface().(time.Time)
		return TextValue(t.UTC().Format(time.RFC3339Nano)), nil
	}

	switch f.Kind() {
	case reflect.String:
		return TextValue(f.String()), nil
	case reflect.Bool:
		if f.Bool() {
			return IntegerValue(1), nil
		}
		return IntegerValue(0), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntegerValue(f.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := f.Uint()
		if u > 1<<63-1 {
			return Value{}, fmt.Errorf("unsigned value %d overflows INTEGER", u)
		}
		return IntegerValue(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return RealValue(f.Float()), nil
	case reflect.Slice:
		if f.Type().Elem().Kind() == reflect.Uint8 {
			return BlobValue(f.Bytes()), nil
		}
	}
	return Value{}, fmt.Errorf("type %s has no scalar mapping", f.Type())
}

// unmarshalRow hydrates one result row into dest, matching columns to fields
// by name. Columns without a matching field are ignored. Non-pointer fields
// left uncovered by any column are an error; pointer fields stay nil.
func unmarshalRow(columns []string, raw []any, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return deserializeError("destination must be a non-nil pointer to struct")
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return deserializeError("destination must be a struct, got %s", v.Kind())
	}

	fields := fieldsByColumn(v.Type())
	seen := make(map[string]bool, len(fields))
	for i, col := range columns {
		idx, ok := fields[col]
		if !ok {
			continue
		}
		val, err := valueOf(raw[i])
		if err != nil {
			return err
		}
		if err := unmarshalField(v.Field(idx), val); err != nil {
			return deserializeError("column %q: %v", col, err)
		}
		seen[col] = true
	}

	for col, idx := range fields {
		if seen[col] {
			continue
		}
		if v.Field(idx).Kind() != reflect.Pointer {
			return deserializeError("no column for required field %q of %s", col, v.Type())
		}
	}
	return nil
}

// unmarshalField assigns a scalar value to a single field.
func unmarshalField(f reflect.Value, val Value) error {
	if f.Kind() == reflect.Pointer {
		if val.IsNull() {
			f.Set(reflect.Zero(f.Type()))
			return nil
		}
		p := reflect.New(f.Type().Elem())
		if err := unmarshalField(p.Elem(), val); err != nil {
			return err
		}
		f.Set(p)
		return nil
	}
	if val.IsNull() {
		if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.Uint8 {
			f.SetBytes(nil)
			return nil
		}
		return fmt.Errorf("NULL into non-nilable field of type %s", f.Type())
	}

	if f.Type() == timeType {
		if val.Kind() != KindText {
			return fmt.Errorf("%s value into time.Time field", val.Kind())
		}
		t, err := parseTime(val.Text())
		if err != nil {
			return err
		}
		f.Set(reflect.ValueOf(t))
		return nil
	}

	switch f.Kind() {
	case reflect.String:
		switch val.Kind() {
		case KindText:
			f.SetString(val.Text())
		case KindBlob:
			f.SetString(string(val.Blob()))
		default:
			return fmt.Errorf("%s value into string field", val.Kind())
		}
	case reflect.Bool:
		if val.Kind() != KindInteger {
			return fmt.Errorf("%s value into bool field", val.Kind())
		}
		f.SetBool(val.Int64() != 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if val.Kind() != KindInteger {
			return fmt.Errorf("%s value into %s field", val.Kind(), f.Type())
		}
		if f.OverflowInt(val.Int64()) {
			return fmt.Errorf("value %d overflows %s", val.Int64(), f.Type())
		}
		f.SetInt(val.Int64())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if val.Kind() != KindInteger {
			return fmt.Errorf("%s value into %s field", val.Kind(), f.Type())
		}
		if val.Int64() < 0 || f.OverflowUint(uint64(val.Int64())) {
			return fmt.Errorf("value %d overflows %s", val.Int64(), f.Type())
		}
		f.SetUint(uint64(val.Int64()))
	case reflect.Float32, reflect.Float64:
		switch val.Kind() {
		case KindReal:
			f.SetFloat(val.Float64())
		case KindInteger:
			f.SetFloat(float64(val.Int64()))
		default:
			return fmt.Errorf("%s value into %s field", val.Kind(), f.Type())
		}
	case reflect.Slice:
		if f.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("type %s has no scalar mapping", f.Type())
		}
		switch val.Kind() {
		case KindBlob:
			f.SetBytes(append([]byte(nil), val.Blob()...))
		case KindText:
			f.SetBytes([]byte(val.Text()))
		default:
			return fmt.Errorf("%s value into %s field", val.Kind(), f.Type())
		}
	default:
		return fmt.Errorf("type %s has no scalar mapping", f.Type())
	}
	return nil
}

// parseTime tries each accepted timestamp layout in turn.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
